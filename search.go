package segstring

// IndexOf returns the logical index of the first occurrence of needle in t
// at or after from, or (0, NotFound) if it does not occur. An empty needle
// matches at from (clamped into [0, t.Length()]); a needle longer than
// what remains of t never matches.
func (t Text) IndexOf(needle Text, from int) (int, error) {
	n := t.Length()
	m := needle.Length()
	if from < 0 {
		from = 0
	}
	if m == 0 {
		if from > n {
			from = n
		}
		return from, nil
	}
	for start := from; start+m <= n; start++ {
		ok, err := rangesEqual(t, start, needle, m)
		if err != nil {
			return 0, err
		}
		if ok {
			return start, nil
		}
	}
	return 0, newError(NotFound, "%q not found in %q from %d", previewText(needle), previewText(t), from)
}

// LastIndexOf returns the logical index of the last occurrence of needle
// in t at or before from, or NotFound. An empty needle matches at the
// clamped from.
func (t Text) LastIndexOf(needle Text, from int) (int, error) {
	n := t.Length()
	m := needle.Length()
	if m == 0 {
		if from > n {
			from = n
		}
		if from < 0 {
			from = 0
		}
		return from, nil
	}
	last := from
	if last > n-m {
		last = n - m
	}
	for start := last; start >= 0; start-- {
		ok, err := rangesEqual(t, start, needle, m)
		if err != nil {
			return 0, err
		}
		if ok {
			return start, nil
		}
	}
	return 0, newError(NotFound, "%q not found in %q up to %d", previewText(needle), previewText(t), from)
}

func rangesEqual(t Text, start int, needle Text, m int) (bool, error) {
	for i := 0; i < m; i++ {
		a, err := t.CodeUnitAt(start + i)
		if err != nil {
			return false, err
		}
		b, err := needle.CodeUnitAt(i)
		if err != nil {
			return false, err
		}
		if a != b {
			return false, nil
		}
	}
	return true, nil
}

// CompareTo implements a total order: lexicographic by code point,
// shorter-is-less on a common prefix.
func (t Text) CompareTo(other Text) (int, error) {
	n, m := t.Length(), other.Length()
	limit := n
	if m < limit {
		limit = m
	}
	for i := 0; i < limit; i++ {
		a, err := t.CodeUnitAt(i)
		if err != nil {
			return 0, err
		}
		b, err := other.CodeUnitAt(i)
		if err != nil {
			return 0, err
		}
		if a != b {
			if a < b {
				return -1, nil
			}
			return 1, nil
		}
	}
	switch {
	case n < m:
		return -1, nil
	case n > m:
		return 1, nil
	default:
		return 0, nil
	}
}

// Equals is CompareTo == 0, short-circuited on length.
func (t Text) Equals(other Text) (bool, error) {
	if t.Length() != other.Length() {
		return false, nil
	}
	c, err := t.CompareTo(other)
	return c == 0, err
}

// Trim, TrimLeft and TrimRight strip leading/trailing whitespace code
// points (isWhitespace) by narrowing to a substring -- no bytes are ever
// copied by trimming alone. A Text that is directly a leaf over ASCII or
// UTF-32 bytes takes trimASCII/trimUTF32's fast path, scanning raw memory
// by code-point index instead of decoding through CodeUnitAt.
func (t Text) Trim() (Text, error) {
	if left, right, ok := leafFastTrim(t.seg); ok {
		return t.Substring(left, right)
	}
	start, err := firstNonWhitespace(t, 0, t.Length())
	if err != nil {
		return Text{}, err
	}
	if start == t.Length() {
		return Text{}, nil
	}
	end, err := lastNonWhitespace(t, start, t.Length())
	if err != nil {
		return Text{}, err
	}
	return t.Substring(start, end+1)
}

// TrimLeft strips leading whitespace code points only.
func (t Text) TrimLeft() (Text, error) {
	if left, _, ok := leafFastTrim(t.seg); ok {
		return t.Substring(left, t.Length())
	}
	start, err := firstNonWhitespace(t, 0, t.Length())
	if err != nil {
		return Text{}, err
	}
	return t.Substring(start, t.Length())
}

// TrimRight strips trailing whitespace code points only.
func (t Text) TrimRight() (Text, error) {
	if _, right, ok := leafFastTrim(t.seg); ok {
		return t.Substring(0, right)
	}
	if t.Length() == 0 {
		return t, nil
	}
	end, err := lastNonWhitespace(t, 0, t.Length())
	if err != nil {
		return Text{}, err
	}
	if end < 0 {
		return Text{}, nil
	}
	return t.Substring(0, end+1)
}

// leafFastTrim reports whether seg is a leaf over ASCII or UTF-32 bytes,
// and if so returns the [left,right) code-point span its dedicated
// fast-path trim helper computes.
func leafFastTrim(seg Segment) (left, right int, ok bool) {
	l, isLeaf := seg.(*leaf)
	if !isLeaf {
		return 0, 0, false
	}
	switch l.enc {
	case ASCII:
		left, right = trimASCII(l.bytes, l.Length())
		return left, right, true
	case UTF32:
		left, right = trimUTF32(l.bytes, l.Length())
		return left, right, true
	default:
		return 0, 0, false
	}
}

// firstNonWhitespace returns the index, in [from,upto), of the first code
// point that is not whitespace, or upto if none.
func firstNonWhitespace(t Text, from, upto int) (int, error) {
	for i := from; i < upto; i++ {
		cp, err := t.CodeUnitAt(i)
		if err != nil {
			return 0, err
		}
		if !isWhitespace(cp) {
			return i, nil
		}
	}
	return upto, nil
}

// lastNonWhitespace returns the index, in [from,upto), of the last code
// point that is not whitespace, or from-1 if none.
func lastNonWhitespace(t Text, from, upto int) (int, error) {
	for i := upto - 1; i >= from; i-- {
		cp, err := t.CodeUnitAt(i)
		if err != nil {
			return 0, err
		}
		if !isWhitespace(cp) {
			return i, nil
		}
	}
	return from - 1, nil
}

// previewText renders up to 32 code points of t for error messages; it
// never fails even over a broken range, falling back to a placeholder.
func previewText(t Text) string {
	n := t.Length()
	limit := n
	if limit > 32 {
		limit = 32
	}
	buf := make([]rune, 0, limit)
	for i := 0; i < limit; i++ {
		cp, err := t.CodeUnitAt(i)
		if err != nil {
			return "<unreadable>"
		}
		buf = append(buf, rune(cp))
	}
	if n > limit {
		return string(buf) + "..."
	}
	return string(buf)
}
