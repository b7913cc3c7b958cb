package format

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/kotpoet/kotlin"
)

// Rendering reads frozen specs only, so rendering the same file twice must
// produce byte-identical output.
func TestRenderFileIsDeterministic(t *testing.T) {
	file, err := kotlin.NewFileSpec("com.squareup.tacos", buildTaco(t))
	if err != nil {
		t.Fatalf("NewFileSpec: %v", err)
	}

	first := RenderFile(&file)
	second := RenderFile(&file)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second rendering differs (-first +second):\n%s", diff)
	}
}

func TestEncoderMatchesRenderFile(t *testing.T) {
	file, err := kotlin.NewFileSpec("com.squareup.tacos", buildTaco(t))
	if err != nil {
		t.Fatalf("NewFileSpec: %v", err)
	}

	var buf bytes.Buffer
	if err := NewFileEncoder(&buf).Encode(&file); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if diff := cmp.Diff(RenderFile(&file), buf.String()); diff != "" {
		t.Errorf("encoder output differs from RenderFile (-render +encode):\n%s", diff)
	}
}

func TestRenderDoesNotMutateSpecs(t *testing.T) {
	taco := buildTaco(t)
	file, err := kotlin.NewFileSpec("com.squareup.tacos", taco)
	if err != nil {
		t.Fatalf("NewFileSpec: %v", err)
	}

	before := len(taco.Functions[0].Body.Args)
	RenderFile(&file)
	after := len(taco.Functions[0].Body.Args)
	if before != after {
		t.Errorf("rendering changed body args from %d to %d", before, after)
	}
}
