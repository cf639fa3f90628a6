package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors_Kind(t *testing.T) {
	assert.Equal(t, KindAny, Any().Kind())
	assert.Equal(t, KindNumber, NumberType().Kind())
	assert.Equal(t, KindBoolean, BooleanType().Kind())
	assert.Equal(t, KindText, TextType().Kind())
	assert.Equal(t, KindNull, NullType().Kind())
	assert.Equal(t, KindError, ErrorType().Kind())
	assert.Equal(t, KindArray, ArrayOf(NumberType()).Kind())
	assert.Equal(t, KindGeneric, GenericOf(1).Kind())
	assert.Equal(t, KindFailable, FailableOf(NumberType()).Kind())
}

func TestFailableOf_FlattensNested(t *testing.T) {
	once := FailableOf(NumberType())
	twice := FailableOf(once)

	elem, ok := twice.Elem()
	assert.True(t, ok)
	assert.True(t, elem.Equal(NumberType()))
	assert.Equal(t, once, twice)
}

func TestArrayOf_Elem(t *testing.T) {
	arr := ArrayOf(TextType())
	elem, ok := arr.Elem()
	assert.True(t, ok)
	assert.True(t, elem.Equal(TextType()))
}

func TestElem_NotArrayOrFailable(t *testing.T) {
	_, ok := NumberType().Elem()
	assert.False(t, ok)
}

func TestGenericID(t *testing.T) {
	id, ok := GenericOf(42).GenericID()
	assert.True(t, ok)
	assert.Equal(t, Id(42), id)

	_, ok = NumberType().GenericID()
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	assert.True(t, NumberType().Equal(NumberType()))
	assert.False(t, NumberType().Equal(TextType()))
	assert.True(t, ArrayOf(NumberType()).Equal(ArrayOf(NumberType())))
	assert.False(t, ArrayOf(NumberType()).Equal(ArrayOf(TextType())))
	assert.True(t, GenericOf(1).Equal(GenericOf(1)))
	assert.False(t, GenericOf(1).Equal(GenericOf(2)))
}

func TestString(t *testing.T) {
	assert.Equal(t, "Number", NumberType().String())
	assert.Equal(t, "[Text]", ArrayOf(TextType()).String())
	assert.Equal(t, "Number?", FailableOf(NumberType()).String())
	assert.Equal(t, "Number|Text", MakeUnion([]Type{NumberType(), TextType()}).String())
}

func TestReferencesGeneric(t *testing.T) {
	assert.True(t, referencesGeneric(GenericOf(5), 5))
	assert.True(t, referencesGeneric(ArrayOf(GenericOf(5)), 5))
	assert.True(t, referencesGeneric(MakeUnion([]Type{NumberType(), GenericOf(5)}), 5))
	assert.False(t, referencesGeneric(NumberType(), 5))
	assert.False(t, referencesGeneric(GenericOf(6), 5))
}
