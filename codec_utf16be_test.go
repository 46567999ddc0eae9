package segstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func be16(cp uint16) []byte { return []byte{byte(cp >> 8), byte(cp)} }

func TestUTF16BECodec_BMPCodePoints(t *testing.T) {
	var b []byte
	b = append(b, be16('h')...)
	b = append(b, be16('i')...)
	b = append(b, be16(0x00)...)

	c := utf16beCodec{}
	assert.Equal(t, 2, c.Length(b))

	cp, err := c.CodeUnitAt(b, 0)
	require.NoError(t, err)
	assert.Equal(t, CodePoint('h'), cp)
}

// U+1F600 GRINNING FACE encodes as the standard surrogate pair
// 0xD83D 0xDE00. This pins the standard Unicode surrogate formula (see
// DESIGN.md for why it was chosen over a non-standard alternative).
func TestUTF16BECodec_SurrogatePair_StandardFormula(t *testing.T) {
	var b []byte
	b = append(b, be16(0xD83D)...)
	b = append(b, be16(0xDE00)...)
	b = append(b, be16(0x00)...)

	cp, size, err := utf16beDecodeAt(b, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, size)
	assert.Equal(t, CodePoint(0x1F600), cp)
}

func TestUTF16BECodec_UnpairedHighSurrogate(t *testing.T) {
	var b []byte
	b = append(b, be16(0xD83D)...)
	b = append(b, be16('x')...)
	b = append(b, be16(0x00)...)

	_, _, err := utf16beDecodeAt(b, 0)
	require.Error(t, err)
	assert.True(t, Is(err, InvalidByteSequence))
}

func TestUTF16BECodec_Length_MixedBMPAndSurrogate(t *testing.T) {
	var b []byte
	b = append(b, be16('a')...)
	b = append(b, be16(0xD83D)...)
	b = append(b, be16(0xDE00)...)
	b = append(b, be16('b')...)
	b = append(b, be16(0x00)...)

	c := utf16beCodec{}
	assert.Equal(t, 3, c.Length(b))

	cp1, err := c.CodeUnitAt(b, 1)
	require.NoError(t, err)
	assert.Equal(t, CodePoint(0x1F600), cp1)

	cp2, err := c.CodeUnitAt(b, 2)
	require.NoError(t, err)
	assert.Equal(t, CodePoint('b'), cp2)
}
