package registry

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

func TestBuiltinTypes(t *testing.T) {
	ResetBuiltins()

	if diff := cmp.Diff([]string{"file", "stdin"}, ListInputTypes()); diff != "" {
		t.Errorf("ListInputTypes() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"file", "stdout"}, ListOutputTypes()); diff != "" {
		t.Errorf("ListOutputTypes() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegisterInput(t *testing.T) {
	ClearRegistries()
	defer ResetBuiltins()

	called := false
	RegisterInput("memory", func(cfg *wordlist.SourceConfig) (input.Module, error) {
		called = true
		return input.NewReaderModule(cfg.Type, strings.NewReader("cat\n")), nil
	})

	constructor := GetInputConstructor("memory")
	if constructor == nil {
		t.Fatal("expected constructor, got nil")
	}
	m, err := constructor(&wordlist.SourceConfig{Type: "memory"})
	if err != nil || !called {
		t.Fatalf("constructor() = %v, called = %v", err, called)
	}
	lines, err := m.Fetch(context.Background())
	if err != nil || len(lines) != 1 {
		t.Errorf("Fetch() = %v, %v", lines, err)
	}
	if GetInputConstructor("file") != nil {
		t.Error("ClearRegistries should remove built-ins")
	}
}

func TestRegisterOutput(t *testing.T) {
	ClearRegistries()
	defer ResetBuiltins()

	RegisterOutput("discard", func(_ *wordlist.SinkConfig) (output.Module, error) {
		return output.NewWriterModule("discard", &strings.Builder{}), nil
	})
	if GetOutputConstructor("discard") == nil {
		t.Fatal("expected constructor, got nil")
	}
	if GetOutputConstructor("unknown") != nil {
		t.Error("unknown type should have no constructor")
	}
}

func TestBuiltinFileRequiresPath(t *testing.T) {
	ResetBuiltins()

	if _, err := GetInputConstructor("file")(&wordlist.SourceConfig{Type: "file"}); err == nil {
		t.Error("file input without path should fail")
	}
	if _, err := GetOutputConstructor("file")(&wordlist.SinkConfig{Type: "file"}); err == nil {
		t.Error("file output without path should fail")
	}
}
