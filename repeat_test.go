package segstring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepeatSegment_LazyReadsThroughInner(t *testing.T) {
	r := asciiText("ab").Repeat(3)
	rs := r.Segment().(*repeatSegment)

	assert.NotNil(t, rs.inner)
	assert.Equal(t, 6, r.Length())
	assert.Equal(t, "ababab", printed(t, r))
}

func TestRepeatSegment_MaterializesUnitOnceRegardlessOfTimes(t *testing.T) {
	p := DefaultPolicy()
	inner := asciiText("ab")
	r := inner.Repeat(1000)
	rs := r.Segment().(*repeatSegment)

	destroy(inner.Segment(), p)

	assert.Nil(t, rs.inner)
	assert.Equal(t, []CodePoint{'a', 'b'}, rs.unit)
	assert.Equal(t, 2000, r.Length())
}

func TestRepeatSegment_SubstringWithinAndAcrossUnitBoundaries(t *testing.T) {
	r := asciiText("ab").Repeat(3)

	sub, err := r.Substring(1, 4)
	require.NoError(t, err)
	assert.Equal(t, "bab", printed(t, sub))
}

func TestRepeatSegment_PrintAfterMaterialization(t *testing.T) {
	p := DefaultPolicy()
	inner := asciiText("xy")
	r := inner.Repeat(4)
	destroy(inner.Segment(), p)

	assert.Equal(t, "xyxyxyxy", printed(t, r))
}

func TestRepeatSegment_TimesOneStillAllocatesNode(t *testing.T) {
	inner := asciiText("solo")
	r := inner.Repeat(1)

	_, ok := r.Segment().(*repeatSegment)
	assert.True(t, ok)
	assert.Equal(t, "solo", printed(t, r))
}
