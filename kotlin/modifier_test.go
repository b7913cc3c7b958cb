package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortModifiers(t *testing.T) {
	got := SortModifiers([]Modifier{ModifierFinal, ModifierOverride, ModifierPublic})
	assert.Equal(t, []Modifier{ModifierPublic, ModifierFinal, ModifierOverride}, got)
}

func TestSortModifiersDeduplicates(t *testing.T) {
	got := SortModifiers([]Modifier{ModifierPublic, ModifierPublic, ModifierFinal, ModifierFinal})
	assert.Equal(t, []Modifier{ModifierPublic, ModifierFinal}, got)
}

func TestSortModifiersKeepsUnknownLast(t *testing.T) {
	got := SortModifiers([]Modifier{Modifier("reified"), ModifierPrivate})
	assert.Equal(t, []Modifier{ModifierPrivate, Modifier("reified")}, got)
}

func TestSortModifiersDoesNotMutateInput(t *testing.T) {
	input := []Modifier{ModifierFinal, ModifierPublic}
	SortModifiers(input)
	assert.Equal(t, []Modifier{ModifierFinal, ModifierPublic}, input)
}

func TestHasModifier(t *testing.T) {
	mods := []Modifier{ModifierPublic, ModifierFinal}
	assert.True(t, HasModifier(mods, ModifierFinal))
	assert.False(t, HasModifier(mods, ModifierPrivate))
}
