package segstring

import "io"

// substringSegment is a lazy view over [span.Start, span.End) of parent,
// or -- once parent has been torn down -- a self-contained code-point
// buffer. The two states share one struct with a materialized flag
// gating which fields are live, rather than a separate type per state.
type substringSegment struct {
	segBase
	parent       Segment // nil once materialized
	span         Span
	materialized bool
	buf          []CodePoint // non-nil once materialized
}

func newSubstringSegment(parent Segment, a, b int) *substringSegment {
	s := &substringSegment{parent: parent, span: NewSpan(a, b)}
	s.segBase.refs = 1
	parent.base().addDependent(s)
	return s
}

func (s *substringSegment) Length() int {
	if s.materialized {
		return len(s.buf)
	}
	return s.span.Len()
}

func (s *substringSegment) CodeUnitAt(i int) (CodePoint, error) {
	if i < 0 || i >= s.Length() {
		return 0, newIndexError(RangeError, i, "substring: index out of range")
	}
	if s.materialized {
		return s.buf[i], nil
	}
	return s.parent.CodeUnitAt(s.span.Start + i)
}

func (s *substringSegment) Substring(a, b int) (Segment, error) {
	if a < 0 || b < a || b > s.Length() {
		return nil, newIndexError(RangeError, b, "substring out of range [%d,%d) of length %d", a, b, s.Length())
	}
	if s.materialized {
		// self now behaves like a leaf-like code-point buffer.
		return newSubstringSegment(s, a, b), nil
	}
	// Flatten: point directly at parent instead of chaining through s.
	return newSubstringSegment(s.parent, s.span.Start+a, s.span.Start+b), nil
}

func (s *substringSegment) Print(w io.Writer, start, end int) (bool, error) {
	if start < 0 || end > s.Length() || start > end {
		return false, nil
	}
	if s.materialized {
		return printCodePoints(w, s.buf[start:end])
	}
	return s.parent.Print(w, s.span.Start+start, s.span.Start+end)
}

func (s *substringSegment) keepingCost(p *Policy) int {
	if s.materialized {
		return p.SegmentDescriptorBytes() + len(s.buf)*p.CodePointBytes()
	}
	return p.SegmentDescriptorBytes() + s.parent.keepingCost(p)
}

// reconstructionCost charges sizeof(self) plus the span length in code
// points.
func (s *substringSegment) reconstructionCost(_ Segment, p *Policy) int {
	return p.SegmentDescriptorBytes() + s.span.Len()*p.CodePointBytes()
}

func (s *substringSegment) notifyDying(dying Segment) {
	if s.materialized || s.parent != dying {
		return
	}
	s.reconstruct()
}

// reconstruct materializes s by reading every code point of its span from
// parent, then severs the parent pointer. It is called from notifyDying.
func (s *substringSegment) reconstruct() {
	n := s.span.Len()
	buf := make([]CodePoint, n)
	for i := 0; i < n; i++ {
		cp, err := s.parent.CodeUnitAt(s.span.Start + i)
		if err != nil {
			// parent is guaranteed alive and valid at notification time;
			// a failure here means the input was never well-formed.
			panic(err)
		}
		buf[i] = cp
	}
	s.buf = buf
	s.materialized = true
	s.parent = nil
}

func (s *substringSegment) inputs() []Segment {
	if s.parent == nil {
		return nil
	}
	return []Segment{s.parent}
}

func (s *substringSegment) freeStorage() {
	s.buf = nil
}

// printCodePoints UTF-8-encodes and writes each code point in buf.
func printCodePoints(w io.Writer, buf []CodePoint) (bool, error) {
	u8 := codecForEncoding(UTF8).(utf8Codec)
	for _, cp := range buf {
		if _, err := w.Write(u8.Encode(cp)); err != nil {
			return false, err
		}
	}
	return true, nil
}
