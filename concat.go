package segstring

import "io"

// concatSegment is the lazy view over two inputs joined end to end. It has
// four states: both sides lazy, only the left materialized, only the
// right materialized, or both combined into one buffer. All four
// share one struct: a nil `left`/`right` field marks that side as gone,
// with its materialized buffer (or, once both are gone, the combined buf)
// standing in for it.
type concatSegment struct {
	segBase
	left, right         Segment // nil once that side has materialized
	leftBuf, rightBuf   []CodePoint
	buf                 []CodePoint // non-nil only once both sides are gone
	leftLen, rightLen   int
}

func newConcatSegment(left, right Segment) *concatSegment {
	c := &concatSegment{left: left, right: right, leftLen: left.Length(), rightLen: right.Length()}
	c.segBase.refs = 1
	left.base().addDependent(c)
	right.base().addDependent(c)
	return c
}

func (c *concatSegment) Length() int { return c.leftLen + c.rightLen }

func (c *concatSegment) CodeUnitAt(i int) (CodePoint, error) {
	if i < 0 || i >= c.Length() {
		return 0, newIndexError(RangeError, i, "concat: index out of range")
	}
	if i < c.leftLen {
		if c.left != nil {
			return c.left.CodeUnitAt(i)
		}
		if c.buf != nil {
			return c.buf[i], nil
		}
		return c.leftBuf[i], nil
	}
	j := i - c.leftLen
	if c.right != nil {
		return c.right.CodeUnitAt(j)
	}
	if c.buf != nil {
		return c.buf[i], nil
	}
	return c.rightBuf[j], nil
}

func (c *concatSegment) Substring(a, b int) (Segment, error) {
	if a < 0 || b < a || b > c.Length() {
		return nil, newIndexError(RangeError, b, "substring out of range [%d,%d) of length %d", a, b, c.Length())
	}
	return newSubstringSegment(c, a, b), nil
}

func (c *concatSegment) Print(w io.Writer, start, end int) (bool, error) {
	if start < 0 || end > c.Length() || start > end {
		return false, nil
	}
	if c.buf != nil {
		return printCodePoints(w, c.buf[start:end])
	}
	// Split the range at the left/right boundary.
	lo, hi := start, end
	if lo < c.leftLen {
		leftEnd := hi
		if leftEnd > c.leftLen {
			leftEnd = c.leftLen
		}
		var ok bool
		var err error
		if c.left != nil {
			ok, err = c.left.Print(w, lo, leftEnd)
		} else {
			ok, err = printCodePoints(w, c.leftBuf[lo:leftEnd])
		}
		if err != nil || !ok {
			return ok, err
		}
		lo = leftEnd
	}
	if lo < hi {
		rlo, rhi := lo-c.leftLen, hi-c.leftLen
		if c.right != nil {
			return c.right.Print(w, rlo, rhi)
		}
		return printCodePoints(w, c.rightBuf[rlo:rhi])
	}
	return true, nil
}

func (c *concatSegment) keepingCost(p *Policy) int {
	cost := p.SegmentDescriptorBytes()
	if c.buf != nil {
		return cost + len(c.buf)*p.CodePointBytes()
	}
	if c.left != nil {
		cost += c.left.keepingCost(p)
	} else {
		cost += len(c.leftBuf) * p.CodePointBytes()
	}
	if c.right != nil {
		cost += c.right.keepingCost(p)
	} else {
		cost += len(c.rightBuf) * p.CodePointBytes()
	}
	return cost
}

// reconstructionCost only charges for the side being lost (dying): the
// length of that side times sizeof(code point), not the whole string.
func (c *concatSegment) reconstructionCost(dying Segment, p *Policy) int {
	if dying == c.left {
		return c.leftLen * p.CodePointBytes()
	}
	if dying == c.right {
		return c.rightLen * p.CodePointBytes()
	}
	return 0
}

func (c *concatSegment) notifyDying(dying Segment) {
	switch {
	case dying == c.left:
		c.leftBuf = materializeSegment(c.left, c.leftLen)
		c.left = nil
	case dying == c.right:
		c.rightBuf = materializeSegment(c.right, c.rightLen)
		c.right = nil
	default:
		return
	}
	if c.left == nil && c.right == nil {
		c.buf = append(append([]CodePoint{}, c.leftBuf...), c.rightBuf...)
		c.leftBuf, c.rightBuf = nil, nil
	}
}

func materializeSegment(s Segment, length int) []CodePoint {
	buf := make([]CodePoint, length)
	for i := 0; i < length; i++ {
		cp, err := s.CodeUnitAt(i)
		if err != nil {
			panic(err)
		}
		buf[i] = cp
	}
	return buf
}

func (c *concatSegment) inputs() []Segment {
	var in []Segment
	if c.left != nil {
		in = append(in, c.left)
	}
	if c.right != nil {
		in = append(in, c.right)
	}
	return in
}

func (c *concatSegment) freeStorage() {
	c.leftBuf, c.rightBuf, c.buf = nil, nil, nil
}
