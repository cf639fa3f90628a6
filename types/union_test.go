package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMakeUnion_Empty(t *testing.T) {
	assert.Equal(t, Any(), MakeUnion(nil))
}

func TestMakeUnion_SingleElementCollapses(t *testing.T) {
	got := MakeUnion([]Type{NumberType()})
	assert.True(t, got.Equal(NumberType()))
	_, isUnion := got.Members()
	assert.False(t, isUnion)
}

func TestMakeUnion_DeduplicatesPreservingOrder(t *testing.T) {
	got := MakeUnion([]Type{NumberType(), TextType(), NumberType()})
	members, ok := got.Members()
	assert.True(t, ok)
	assert.Len(t, members, 2)
	assert.True(t, members[0].Equal(NumberType()))
	assert.True(t, members[1].Equal(TextType()))
}

func TestMakeUnion_FlattensNestedUnions(t *testing.T) {
	inner := MakeUnion([]Type{NumberType(), TextType()})
	got := MakeUnion([]Type{inner, BooleanType()})
	members, ok := got.Members()
	assert.True(t, ok)
	assert.Len(t, members, 3)
}

func TestMakeUnion_Idempotent(t *testing.T) {
	xs := []Type{NumberType(), TextType(), BooleanType()}
	once := MakeUnion(xs)
	twice := MakeUnion([]Type{once})
	assert.True(t, once.Equal(twice))
}
