package segstring

import "io"

// leaf adapts a raw byte buffer to the segment contract for any of the
// four encodings. A single generic leaf type -- parameterized by a Codec
// strategy plus an ownership flag -- covers the spec's 4-encoding x
// {borrowed, owned} matrix instead of eight hand-written classes: the
// behavior only ever differs by which Codec is plugged in and by whether
// the buffer is released on teardown.
type leaf struct {
	segBase
	enc   Encoding
	codec Codec
	bytes []byte
	owned bool

	lengthKnown bool
	length      int
	memKnown    bool
	memBytes    int
}

// newLeaf builds a leaf; owned leaves pay the length scan eagerly (they
// already walked the buffer once to size the allocation), borrowed leaves
// defer it to the first query and cache the result.
func newLeaf(bytes []byte, enc Encoding, owned bool) *leaf {
	l := &leaf{enc: enc, codec: codecForEncoding(enc), bytes: bytes, owned: owned}
	l.segBase.refs = 1
	if owned {
		l.length, l.memBytes = l.codec.LengthAndByteSize(bytes)
		l.lengthKnown = true
		l.memKnown = true
	}
	return l
}

// Const builds a borrowed (zero-copy) leaf over bytes. bytes must be
// NUL-terminated per enc's convention and must outlive every Text reachable
// from the returned handle -- segstring never copies a borrowed buffer.
func Const(bytes []byte, enc Encoding) Text {
	return Text{seg: newLeaf(bytes, enc, false)}
}

// Copy builds an owned leaf by copying bytes; the copy's lifetime is
// entirely managed by the returned Text.
func Copy(bytes []byte, enc Encoding) Text {
	buf := make([]byte, len(bytes))
	copy(buf, bytes)
	return Text{seg: newLeaf(buf, enc, true)}
}

func (l *leaf) Length() int {
	if !l.lengthKnown {
		l.length = l.codec.Length(l.bytes)
		l.lengthKnown = true
	}
	return l.length
}

// MemoryBytes reports the byte footprint of the buffer including its
// terminator, lazily cached like Length for borrowed UTF-8/UTF-16BE
// leaves -- needed to size an eventual owned copy of one.
func (l *leaf) MemoryBytes() int {
	if !l.memKnown {
		_, l.memBytes = l.codec.LengthAndByteSize(l.bytes)
		l.memKnown = true
	}
	return l.memBytes
}

func (l *leaf) CodeUnitAt(i int) (CodePoint, error) {
	return l.codec.CodeUnitAt(l.bytes, i)
}

func (l *leaf) Substring(a, b int) (Segment, error) {
	if a < 0 || b < a || b > l.Length() {
		return nil, newIndexError(RangeError, b, "substring out of range [%d,%d) of length %d", a, b, l.Length())
	}
	return newSubstringSegment(l, a, b), nil
}

func (l *leaf) Print(w io.Writer, start, end int) (bool, error) {
	return l.codec.Print(w, l.bytes, start, end)
}

func (l *leaf) keepingCost(p *Policy) int {
	cost := p.SegmentDescriptorBytes()
	if l.owned {
		cost += l.MemoryBytes()
	}
	return cost
}

// reconstructionCost is never called on a leaf: leaves have no inputs, so
// they are never registered as anyone's dependent.
func (l *leaf) reconstructionCost(Segment, *Policy) int { return 0 }

// notifyDying is never called on a leaf for the same reason.
func (l *leaf) notifyDying(Segment) {}

func (l *leaf) inputs() []Segment { return nil }

func (l *leaf) freeStorage() {
	if l.owned {
		l.bytes = nil
	}
}
