package mdctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsent(t *testing.T) {
	v := Absent()

	assert.False(t, v.Exists())
	assert.False(t, v.IsNull())
	assert.Nil(t, v.Ptr())
}

func TestOf_EmptyStringIsPresent(t *testing.T) {
	v := Of("")

	assert.True(t, v.Exists())
	assert.False(t, v.IsNull())
	assert.NotNil(t, v.Ptr())
	assert.Equal(t, "", *v.Ptr())
}

func TestOfPtr_NilIsPresentNull(t *testing.T) {
	v := OfPtr(nil)

	assert.True(t, v.Exists())
	assert.True(t, v.IsNull())
	assert.Nil(t, v.Ptr())
}

func TestValue_ThreeStatesAreDistinct(t *testing.T) {
	absent := Absent()
	null := OfPtr(nil)
	empty := Of("")

	assert.False(t, absent.Equal(null))
	assert.False(t, absent.Equal(empty))
	assert.False(t, null.Equal(empty))
}

func TestEqual_Structural(t *testing.T) {
	assert.True(t, Absent().Equal(Absent()))
	assert.True(t, OfPtr(nil).Equal(OfPtr(nil)))
	assert.True(t, Of("x").Equal(Of("x")))
	assert.False(t, Of("x").Equal(Of("y")))

	s := "x"
	assert.True(t, Of("x").Equal(OfPtr(&s)))
}

func TestPtr_ReturnsCopy(t *testing.T) {
	v := Of("original")

	p := v.Ptr()
	*p = "mutated"

	assert.Equal(t, "original", *v.Ptr())
}

func TestString_RendersThreeStates(t *testing.T) {
	assert.Equal(t, "<absent>", Absent().String())
	assert.Equal(t, "<null>", OfPtr(nil).String())
	assert.Equal(t, "hello", Of("hello").String())
	assert.Equal(t, "", Of("").String())
}

func TestLogValue(t *testing.T) {
	assert.Equal(t, "<absent>", Absent().LogValue().String())
	assert.Equal(t, "bar", Of("bar").LogValue().String())
}
