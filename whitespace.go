package segstring

// isWhitespace is the whitespace predicate trim uses: the ASCII space,
// the C0 control range 0x09..0x0D, NEL (0x85), and NBSP (0xA0). No other
// predicate (Unicode White_Space, locale-aware) applies.
func isWhitespace(cp CodePoint) bool {
	if cp == 0x20 || cp == 0x85 || cp == 0xA0 {
		return true
	}
	return cp >= 0x09 && cp <= 0x0D
}
