package kotlin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRequiresConstants(t *testing.T) {
	_, err := NewEnumBuilder("Empty").Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one constant")
}

func TestEnumConstantsOnlyOnEnums(t *testing.T) {
	_, err := NewClassBuilder("Taco").
		AddEnumConstant(EnumConstant{Name: "CRUNCHY"}).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have enum constants")
}

func TestSuperClassOnlyOnClasses(t *testing.T) {
	_, err := NewInterfaceBuilder("Edible").
		SuperClass(NewClassName("com.example", "Food")).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have a superclass")
}

func TestSuperClassSetOnce(t *testing.T) {
	_, err := NewClassBuilder("Taco").
		SuperClass(NewClassName("com.example", "Food")).
		SuperClass(NewClassName("com.example", "Snack")).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already set")
}

func TestDefaultValueOnlyInAnnotationClasses(t *testing.T) {
	member, err := NewFunctionSpecBuilder("count").
		Returns(NewClassName("kotlin", "Int")).
		DefaultValue("%L", 1).
		Build()
	require.NoError(t, err)

	_, err = NewClassBuilder("Taco").AddFunction(member).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an annotation class")

	_, err = NewAnnotationClassBuilder("Toppings").AddFunction(member).Build()
	require.NoError(t, err)
}

func TestDefaultValueSetOnce(t *testing.T) {
	_, err := NewFunctionSpecBuilder("count").
		DefaultValue("%L", 1).
		DefaultValue("%L", 2).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already set")
}

func TestInitializerBlocksOnlyOnClassesAndEnums(t *testing.T) {
	code, err := Code("ready = true\n")
	require.NoError(t, err)

	_, err = NewInterfaceBuilder("Edible").AddInitializerBlock(code).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot have initializer blocks")

	_, err = NewClassBuilder("Taco").AddStaticBlock(code).Build()
	require.NoError(t, err)
}

func TestConstructorCannotDeclareReturnType(t *testing.T) {
	_, err := NewConstructorBuilder().Returns(StringClass).Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot declare a return type")
}

func TestVarargsNeedsArrayShapedLastParameter(t *testing.T) {
	_, err := NewFunctionSpecBuilder("eat").Varargs().Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no parameters")

	_, err = NewFunctionSpecBuilder("eat").
		AddParameter(Parameter("toppings", StringClass)).
		Varargs().
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "array-shaped")

	for _, typ := range []TypeName{
		ArrayOf(StringClass),
		NewClassName("kotlin", "IntArray"),
		Parameterized(NewClassName("kotlin", "Array"), StringClass),
	} {
		_, err = NewFunctionSpecBuilder("eat").
			AddParameter(Parameter("toppings", typ)).
			Varargs().
			Build()
		require.NoError(t, err, typ.String())
	}
}

func TestAddFunctionRoutesConstructors(t *testing.T) {
	ctor, err := NewConstructorBuilder().Build()
	require.NoError(t, err)
	fn, err := NewFunctionSpecBuilder("run").Build()
	require.NoError(t, err)

	spec, err := NewClassBuilder("Taco").AddFunction(ctor).AddFunction(fn).Build()
	require.NoError(t, err)
	assert.Len(t, spec.Constructors, 1)
	assert.Len(t, spec.Functions, 1)
	assert.Equal(t, "run", spec.Functions[0].Name)
}

func TestPropertyInitializerSetOnce(t *testing.T) {
	_, err := NewPropertySpecBuilder("count", NewClassName("kotlin", "Int")).
		Initializer("%L", 1).
		Initializer("%L", 2).
		Build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `initializer for property "count" was already set`)
}

func TestClassNameRequired(t *testing.T) {
	_, err := NewClassBuilder("").Build()
	require.Error(t, err)

	_, err = NewAnonymousClassBuilder().Build()
	require.NoError(t, err)
}

func TestBuildFreezesMemberSlices(t *testing.T) {
	b := NewClassBuilder("Taco")
	fn, err := NewFunctionSpecBuilder("first").Build()
	require.NoError(t, err)
	b.AddFunction(fn)

	first, err := b.Build()
	require.NoError(t, err)

	second, err := NewFunctionSpecBuilder("second").Build()
	require.NoError(t, err)
	b.AddFunction(second)
	_, err = b.Build()
	require.NoError(t, err)

	assert.Len(t, first.Functions, 1)
}

func TestToBuilderIndependence(t *testing.T) {
	spec, err := NewClassBuilder("Taco").Build()
	require.NoError(t, err)

	fn, err := NewFunctionSpecBuilder("extra").Build()
	require.NoError(t, err)
	derived, err := spec.ToBuilder().AddFunction(fn).Build()
	require.NoError(t, err)

	assert.Empty(t, spec.Functions)
	assert.Len(t, derived.Functions, 1)
}

func TestFileSpecRequiresNamedType(t *testing.T) {
	anon, err := NewAnonymousClassBuilder().Build()
	require.NoError(t, err)

	_, err = NewFileSpec("com.example", anon)
	require.Error(t, err)

	named, err := NewClassBuilder("Taco").Build()
	require.NoError(t, err)
	file, err := NewFileSpec("com.example", named)
	require.NoError(t, err)
	assert.Equal(t, "Taco.kt", file.FileName())
}

func TestOriginatingElementsAggregate(t *testing.T) {
	inner, err := NewClassBuilder("Inner").AddOriginatingElement("b").Build()
	require.NoError(t, err)
	outer, err := NewClassBuilder("Outer").
		AddOriginatingElement("a").
		AddType(inner).
		Build()
	require.NoError(t, err)

	file, err := NewFileSpec("com.example", outer)
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, file.OriginatingElements())
}
