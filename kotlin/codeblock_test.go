package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeRelativeArguments(t *testing.T) {
	block, err := Code("val %N: %T = %S", "name", StringClass, "taco")
	require.NoError(t, err)
	assert.Equal(t, []string{"val ", "%N", ": ", "%T", " = ", "%S"}, block.Parts)
	assert.Equal(t, []any{"name", StringClass, "taco"}, block.Args)
}

func TestCodeIndexedArguments(t *testing.T) {
	block, err := Code("%2L then %1L then %2L", "first", "second")
	require.NoError(t, err)
	assert.Equal(t, []string{"%L", " then ", "%L", " then ", "%L"}, block.Parts)
	assert.Equal(t, []any{"second", "first", "second"}, block.Args)
}

func TestCodeMixedIndexedAndRelative(t *testing.T) {
	// relative references keep their own cursor, untouched by indexed ones
	block, err := Code("%2L %L %L", "first", "second")
	require.NoError(t, err)
	assert.Equal(t, []any{"second", "first", "second"}, block.Args)
}

func TestCodeEscapedPercent(t *testing.T) {
	block, err := Code("100%% done")
	require.NoError(t, err)
	assert.Equal(t, []string{"100% done"}, block.Parts)
	assert.Empty(t, block.Args)
}

func TestCodeUnusedArguments(t *testing.T) {
	_, err := Code("%1L %2L", "a", "b", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unused argument: %3")
}

func TestCodeMultipleUnusedArguments(t *testing.T) {
	_, err := Code("%1L", "a", "b", "c")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unused arguments: %2, %3")
}

func TestCodeIndexOutOfRange(t *testing.T) {
	_, err := Code("%5L", "only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 5")
}

func TestCodeNotEnoughArguments(t *testing.T) {
	_, err := Code("%L %L", "only")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not enough arguments")
}

func TestCodeDanglingPercent(t *testing.T) {
	_, err := Code("broken %")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling")
}

func TestCodeUnknownDirective(t *testing.T) {
	_, err := Code("%Q", "arg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown directive %Q")
}

func TestCodeIndexOnNoArgDirective(t *testing.T) {
	for _, format := range []string{"%1W", "%2>", "%3<", "%4[", "%5]", "%6%"} {
		_, err := Code(format)
		require.Error(t, err, format)
		assert.Contains(t, err.Error(), "may not have an index")
	}
}

func TestCodeArgumentKinds(t *testing.T) {
	_, err := Code("%T", "not a type")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "%T argument is not a type")

	_, err = Code("%N", 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "%N argument is not a named element")

	_, err = Code("%S", 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "%S argument is not a string")

	_, err = Code("%L", struct{ x int }{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "%L argument cannot be rendered")
}

func TestCodeNilArguments(t *testing.T) {
	_, err := Code("%S and %L", nil, nil)
	require.NoError(t, err)
}

func TestNameOf(t *testing.T) {
	prop, err := NewPropertySpecBuilder("count", NewClassName("kotlin", "Int")).Build()
	require.NoError(t, err)
	fn, err := NewFunctionSpecBuilder("run").Build()
	require.NoError(t, err)

	for _, tc := range []struct {
		arg  any
		want string
	}{
		{"literal", "literal"},
		{prop, "count"},
		{Parameter("arg", StringClass), "arg"},
		{fn, "run"},
	} {
		name, err := NameOf(tc.arg)
		require.NoError(t, err)
		assert.Equal(t, tc.want, name)
	}
}

func TestCodeBlockBuilderStickyError(t *testing.T) {
	b := NewCodeBlockBuilder()
	b.Add("%Q")
	b.Add("fine")
	_, err := b.Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown directive")
}

func TestCodeBlockControlFlowParts(t *testing.T) {
	block, err := NewCodeBlockBuilder().
		BeginControlFlow("if (%N > 0)", "count").
		AddStatement("eat()").
		NextControlFlow("else").
		AddStatement("starve()").
		EndControlFlow().
		Build()
	require.NoError(t, err)
	assert.Contains(t, block.Parts, "%>")
	assert.Contains(t, block.Parts, "%<")
	assert.Contains(t, block.Parts, "%[")
	assert.Contains(t, block.Parts, "%]")
}

func TestCodeBlockToBuilderIndependence(t *testing.T) {
	original, err := Code("a = %L", 1)
	require.NoError(t, err)

	derived, err := original.ToBuilder().Add(" + %L", 2).Build()
	require.NoError(t, err)

	assert.Len(t, original.Args, 1)
	assert.Len(t, derived.Args, 2)
}

func TestCodeBlockIsEmpty(t *testing.T) {
	assert.True(t, CodeBlock{}.IsEmpty())
	block, err := Code("x")
	require.NoError(t, err)
	assert.False(t, block.IsEmpty())
}
