package segstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexOf(t *testing.T) {
	haystack := asciiText("the quick brown fox")

	idx, err := haystack.IndexOf(asciiText("quick"), 0)
	require.NoError(t, err)
	assert.Equal(t, 4, idx)

	idx, err = haystack.IndexOf(asciiText("the"), 1)
	assert.Error(t, err)
	assert.True(t, Is(err, NotFound))
	_ = idx

	idx, err = haystack.IndexOf(Empty(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, idx)
}

func TestIndexOf_NeedleLongerThanHaystack(t *testing.T) {
	_, err := asciiText("hi").IndexOf(asciiText("hello there"), 0)
	require.Error(t, err)
	assert.True(t, Is(err, NotFound))
}

func TestLastIndexOf(t *testing.T) {
	haystack := asciiText("abcabcabc")

	idx, err := haystack.LastIndexOf(asciiText("abc"), 8)
	require.NoError(t, err)
	assert.Equal(t, 6, idx)

	idx, err = haystack.LastIndexOf(asciiText("abc"), 5)
	require.NoError(t, err)
	assert.Equal(t, 3, idx)

	idx, err = haystack.LastIndexOf(Empty(), 100)
	require.NoError(t, err)
	assert.Equal(t, 9, idx)
}

func TestCompareTo(t *testing.T) {
	a := asciiText("apple")
	b := asciiText("banana")
	c := asciiText("apple")
	d := asciiText("app")

	cmp, err := a.CompareTo(b)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)

	cmp, err = b.CompareTo(a)
	require.NoError(t, err)
	assert.Equal(t, 1, cmp)

	cmp, err = a.CompareTo(c)
	require.NoError(t, err)
	assert.Equal(t, 0, cmp)

	// "app" is a strict prefix of "apple": shorter sorts first.
	cmp, err = d.CompareTo(a)
	require.NoError(t, err)
	assert.Equal(t, -1, cmp)
}

func TestEquals(t *testing.T) {
	a := asciiText("hello")
	b := asciiText("hello")
	c := asciiText("hellothere")

	eq, err := a.Equals(b)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a.Equals(c)
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestTrim(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no whitespace", "hello", "hello"},
		{"leading and trailing", "  hello  ", "hello"},
		{"only whitespace", "   ", ""},
		{"tabs and newlines", "\t\nhello\r\n", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := asciiText(tt.in).Trim()
			require.NoError(t, err)
			assert.Equal(t, tt.want, printed(t, got))
		})
	}
}

func TestTrimLeftAndRight(t *testing.T) {
	s := asciiText("  hello  ")

	left, err := s.TrimLeft()
	require.NoError(t, err)
	assert.Equal(t, "hello  ", printed(t, left))

	right, err := s.TrimRight()
	require.NoError(t, err)
	assert.Equal(t, "  hello", printed(t, right))
}

func TestTrim_UTF32FastPath(t *testing.T) {
	b := le32Words(0x20, 'h', 'i', 0x20, 0)
	text := Const(b, UTF32)

	got, err := text.Trim()
	require.NoError(t, err)
	assert.Equal(t, 2, got.Length())
	assert.Equal(t, "hi", printed(t, got))
}

func TestTrim_NonLeafSegmentUsesGenericPath(t *testing.T) {
	// A concat is never a *leaf, so Trim must fall back to the generic
	// code-point scan rather than the ASCII/UTF-32 fast path.
	joined := asciiText("  hello ").Concat(asciiText(" world  "))
	got, err := joined.Trim()
	require.NoError(t, err)
	assert.Equal(t, "hello  world", printed(t, got))
}
