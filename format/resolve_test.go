package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/kotpoet/kotlin"
)

func fileFor(t *testing.T, pkg string, class kotlin.ClassSpec) *kotlin.FileSpec {
	t.Helper()
	file, err := kotlin.NewFileSpec(pkg, class)
	if err != nil {
		t.Fatalf("NewFileSpec: %v", err)
	}
	return &file
}

func TestFirstClaimWinsSimpleName(t *testing.T) {
	helper, err := kotlin.NewPropertySpecBuilder("helper", kotlin.NewClassName("com.a", "Util")).Build()
	if err != nil {
		t.Fatalf("build property: %v", err)
	}
	make_, err := kotlin.NewFunctionSpecBuilder("make").
		Returns(kotlin.NewClassName("com.b", "Util")).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}

	// properties are collected before functions, so com.a.Util claims "Util"
	class, err := kotlin.NewClassBuilder("Factory").
		AddFunction(make_).
		AddProperty(helper).
		Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	file := fileFor(t, "com.example", class)
	if diff := cmp.Diff([]string{"com.a.Util"}, Imports(file)); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}

	got := RenderFile(file)
	if !strings.Contains(got, "val helper: Util") {
		t.Errorf("claim winner not abbreviated:\n%s", got)
	}
	if !strings.Contains(got, "fun make(): com.b.Util") {
		t.Errorf("claim loser not fully qualified:\n%s", got)
	}
}

func TestLocalDeclarationsWinTheirNames(t *testing.T) {
	param, err := kotlin.NewFunctionSpecBuilder("log").
		AddParameter(kotlin.Parameter("entry", kotlin.NewClassName("com.x", "Entry"))).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	nested, err := kotlin.NewClassBuilder("Entry").Build()
	if err != nil {
		t.Fatalf("build nested class: %v", err)
	}
	class, err := kotlin.NewClassBuilder("Journal").
		AddFunction(param).
		AddType(nested).
		Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	file := fileFor(t, "com.example", class)
	if imports := Imports(file); len(imports) != 0 {
		t.Errorf("shadowed foreign class was imported: %v", imports)
	}
	got := RenderFile(file)
	if !strings.Contains(got, "fun log(entry: com.x.Entry)") {
		t.Errorf("foreign Entry not fully qualified:\n%s", got)
	}
}

func TestScopeRelativeShortening(t *testing.T) {
	pkg := "com.example"
	topping := kotlin.NewClassName(pkg, "Taco", "Topping")

	back, err := kotlin.NewFunctionSpecBuilder("taco").
		Returns(kotlin.NewClassName(pkg, "Taco")).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	nested, err := kotlin.NewClassBuilder("Topping").AddFunction(back).Build()
	if err != nil {
		t.Fatalf("build nested class: %v", err)
	}
	pick, err := kotlin.NewFunctionSpecBuilder("pick").Returns(topping).Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	taco, err := kotlin.NewClassBuilder("Taco").
		AddFunction(pick).
		AddType(nested).
		Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	got := RenderFile(fileFor(t, pkg, taco))
	if !strings.Contains(got, "fun pick(): Topping") {
		t.Errorf("nested reference not shortened against scope:\n%s", got)
	}
	if !strings.Contains(got, "fun taco(): Taco") {
		t.Errorf("enclosing reference not shortened:\n%s", got)
	}
}

func TestSamePackageReferencesNeedNoImport(t *testing.T) {
	prop, err := kotlin.NewPropertySpecBuilder("helper", kotlin.NewClassName("com.example", "Helper")).Build()
	if err != nil {
		t.Fatalf("build property: %v", err)
	}
	class, err := kotlin.NewClassBuilder("User").AddProperty(prop).Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	file := fileFor(t, "com.example", class)
	if imports := Imports(file); len(imports) != 0 {
		t.Errorf("same-package reference was imported: %v", imports)
	}
	if got := RenderFile(file); !strings.Contains(got, "val helper: Helper") {
		t.Errorf("same-package reference not abbreviated:\n%s", got)
	}
}

func TestDefaultPackageReferencesNeedNoImport(t *testing.T) {
	prop, err := kotlin.NewPropertySpecBuilder("bare", kotlin.NewClassName("", "Bare")).Build()
	if err != nil {
		t.Fatalf("build property: %v", err)
	}
	class, err := kotlin.NewClassBuilder("User").AddProperty(prop).Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	file := fileFor(t, "com.example", class)
	if imports := Imports(file); len(imports) != 0 {
		t.Errorf("default-package reference was imported: %v", imports)
	}
}

func TestImportListSorted(t *testing.T) {
	fn, err := kotlin.NewFunctionSpecBuilder("mix").
		AddParameter(kotlin.Parameter("b", kotlin.NewClassName("z.pkg", "Beta"))).
		AddParameter(kotlin.Parameter("a", kotlin.NewClassName("a.pkg", "Alpha"))).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	class, err := kotlin.NewClassBuilder("Mixer").AddFunction(fn).Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	got := Imports(fileFor(t, "com.example", class))
	want := []string{"a.pkg.Alpha", "z.pkg.Beta"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("import order mismatch (-want +got):\n%s", diff)
	}
}

func TestEachClassImportedAtMostOnce(t *testing.T) {
	str := kotlin.StringClass
	fn, err := kotlin.NewFunctionSpecBuilder("concat").
		AddParameter(kotlin.Parameter("a", str)).
		AddParameter(kotlin.Parameter("b", str)).
		Returns(str).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	class, err := kotlin.NewClassBuilder("Glue").AddFunction(fn).Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	got := Imports(fileFor(t, "com.example", class))
	if diff := cmp.Diff([]string{"java.lang.String"}, got); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeBlockTypeArgumentsJoinResolution(t *testing.T) {
	fn, err := kotlin.NewFunctionSpecBuilder("fresh").
		AddStatement("val list = %T()", kotlin.NewClassName("java.util", "ArrayList")).
		Build()
	if err != nil {
		t.Fatalf("build function: %v", err)
	}
	class, err := kotlin.NewClassBuilder("Maker").AddFunction(fn).Build()
	if err != nil {
		t.Fatalf("build class: %v", err)
	}

	file := fileFor(t, "com.example", class)
	if diff := cmp.Diff([]string{"java.util.ArrayList"}, Imports(file)); diff != "" {
		t.Errorf("imports mismatch (-want +got):\n%s", diff)
	}
	if got := RenderFile(file); !strings.Contains(got, "val list = ArrayList()") {
		t.Errorf("%%T in body not abbreviated:\n%s", got)
	}
}
