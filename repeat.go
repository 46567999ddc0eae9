package segstring

import "io"

// repeatSegment is the lazy view of inner repeated times times. Once inner
// is torn down, the single unit is materialized and times keeps working as
// a pure index multiplier -- materializing never pays for times copies,
// only one.
type repeatSegment struct {
	segBase
	inner    Segment // nil once materialized
	unit     []CodePoint
	unitLen  int
	times    int
}

func newRepeatSegment(inner Segment, times int) *repeatSegment {
	r := &repeatSegment{inner: inner, unitLen: inner.Length(), times: times}
	r.segBase.refs = 1
	inner.base().addDependent(r)
	return r
}

func (r *repeatSegment) Length() int { return r.unitLen * r.times }

func (r *repeatSegment) unitAt(idx int) (CodePoint, error) {
	if r.inner != nil {
		return r.inner.CodeUnitAt(idx)
	}
	return r.unit[idx], nil
}

func (r *repeatSegment) CodeUnitAt(i int) (CodePoint, error) {
	if i < 0 || i >= r.Length() || r.unitLen == 0 {
		return 0, newIndexError(RangeError, i, "repeat: index out of range")
	}
	return r.unitAt(i % r.unitLen)
}

func (r *repeatSegment) Substring(a, b int) (Segment, error) {
	if a < 0 || b < a || b > r.Length() {
		return nil, newIndexError(RangeError, b, "substring out of range [%d,%d) of length %d", a, b, r.Length())
	}
	return newSubstringSegment(r, a, b), nil
}

func (r *repeatSegment) Print(w io.Writer, start, end int) (bool, error) {
	if start < 0 || end > r.Length() || start > end {
		return false, nil
	}
	if r.unitLen == 0 {
		return true, nil
	}
	pos := start
	for pos < end {
		unitIdx := pos / r.unitLen
		windowStart := unitIdx * r.unitLen
		lo := pos - windowStart
		hi := end - windowStart
		if hi > r.unitLen {
			hi = r.unitLen
		}
		var ok bool
		var err error
		if r.inner != nil {
			ok, err = r.inner.Print(w, lo, hi)
		} else {
			ok, err = printCodePoints(w, r.unit[lo:hi])
		}
		if err != nil || !ok {
			return ok, err
		}
		pos = windowStart + hi
	}
	return true, nil
}

func (r *repeatSegment) keepingCost(p *Policy) int {
	cost := p.SegmentDescriptorBytes()
	if r.inner != nil {
		return cost + r.inner.keepingCost(p)
	}
	return cost + r.unitLen*p.CodePointBytes()
}

// reconstructionCost materializes the unit once, regardless of times.
func (r *repeatSegment) reconstructionCost(dying Segment, p *Policy) int {
	if dying != r.inner {
		return 0
	}
	return r.unitLen * p.CodePointBytes()
}

func (r *repeatSegment) notifyDying(dying Segment) {
	if r.inner != dying {
		return
	}
	r.unit = materializeSegment(r.inner, r.unitLen)
	r.inner = nil
}

func (r *repeatSegment) inputs() []Segment {
	if r.inner == nil {
		return nil
	}
	return []Segment{r.inner}
}

func (r *repeatSegment) freeStorage() {
	r.unit = nil
}
