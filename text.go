package segstring

import "io"

// Text is the logical-string handle: a single reference to a segment, or
// no segment at all (the empty string). All of its operations are
// read-only; composing two Text values allocates a new reference segment
// and returns a new Text, leaving both operands untouched.
//
// Go has no copy constructors, so an ordinary `:=` copy of a Text does NOT
// retain its segment -- the segment stays reachable because Go's garbage
// collector sees the copied pointer, but the outer-handle refcount the
// materialization policy reads is not incremented. Call Clone when you
// need that: typically when you intend to Release two independent
// handles to the same segment at different times and want the adaptive
// materialization policy to see both of them.
type Text struct {
	seg Segment
}

// Empty returns the empty logical string: no segment, length 0, every
// index read fails with RangeError.
func Empty() Text { return Text{} }

// Length reports the logical code-point length.
func (t Text) Length() int {
	if t.seg == nil {
		return 0
	}
	return t.seg.Length()
}

// IsEmpty reports whether Length() == 0.
func (t Text) IsEmpty() bool { return t.Length() == 0 }

// CodeUnitAt returns the code point at logical index i.
func (t Text) CodeUnitAt(i int) (CodePoint, error) {
	if t.seg == nil {
		return 0, newIndexError(RangeError, i, "code_unit_at on empty string")
	}
	return t.seg.CodeUnitAt(i)
}

// Substring returns the logical string over [a,b). It never panics or
// surfaces an unrecoverable failure -- a bad range is reported through the
// returned error.
func (t Text) Substring(a, b int) (Text, error) {
	if a < 0 || b < a || b > t.Length() {
		return Text{}, newIndexError(RangeError, b, "substring out of range [%d,%d) of length %d", a, b, t.Length())
	}
	if a == b {
		return Text{}, nil
	}
	seg, err := t.seg.Substring(a, b)
	if err != nil {
		return Text{}, err
	}
	return Text{seg: seg}, nil
}

// Substr and SubstrLen are the convenience one/two-argument shims. Unlike
// Substring, they surface a RangeError as an unrecoverable failure to the
// caller: they panic instead of returning an error.
func (t Text) Substr(pos int) Text {
	r, err := t.Substring(pos, t.Length())
	if err != nil {
		panic(err)
	}
	return r
}

// SubstrLen returns the len-code-point substring starting at pos.
func (t Text) SubstrLen(pos, length int) Text {
	r, err := t.Substring(pos, pos+length)
	if err != nil {
		panic(err)
	}
	return r
}

// Concat returns a new logical string that is t followed by other. Both
// operands remain independently usable afterward.
func (t Text) Concat(other Text) Text {
	if t.seg == nil {
		return other
	}
	if other.seg == nil {
		return t
	}
	return Text{seg: newConcatSegment(t.seg, other.seg)}
}

// Repeat returns t repeated times times. times == 0 yields the empty
// string; times == 1 still allocates a repetition node over t rather
// than returning t itself.
func (t Text) Repeat(times int) Text {
	if times <= 0 || t.seg == nil {
		return Text{}
	}
	return Text{seg: newRepeatSegment(t.seg, times)}
}

// Print writes the code points in [start,end) to w as UTF-8, reporting
// whether the whole range was written.
func (t Text) Print(w io.Writer, start, end int) (bool, error) {
	if start < 0 || end > t.Length() || start > end {
		return false, nil
	}
	if start == end {
		return true, nil
	}
	return t.seg.Print(w, start, end)
}

// PrintAll writes the whole logical string.
func (t Text) PrintAll(w io.Writer) (bool, error) {
	return t.Print(w, 0, t.Length())
}

// Clone returns a Text sharing t's segment and increments its outer-handle
// refcount, so the materialization policy sees both handles.
func (t Text) Clone() Text {
	if t.seg != nil {
		retain(t.seg)
	}
	return t
}

// Release decrements t's segment's outer-handle refcount, possibly
// triggering destruction of t's segment (and adaptive materialization of
// its dependents) per the Policy supplied. Safe to call on an empty Text.
func (t Text) Release(p *Policy) {
	if t.seg != nil {
		release(t.seg, p)
	}
}

// Segment exposes the underlying segment, chiefly for debug/test code that
// needs to inspect refcounts or force a reconstruction.
func (t Text) Segment() Segment { return t.seg }
