package factory

import (
	"testing"

	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

func TestCreateModules_Default(t *testing.T) {
	mods, err := CreateModules(wordlist.DefaultJob())
	if err != nil {
		t.Fatalf("CreateModules() error = %v", err)
	}

	in, ok := mods.Input.(*input.FileModule)
	if !ok {
		t.Fatalf("Input = %T, want *input.FileModule", mods.Input)
	}
	if in.Path() != wordlist.DefaultInputPath {
		t.Errorf("input path = %q", in.Path())
	}
	out, ok := mods.Output.(*output.FileModule)
	if !ok {
		t.Fatalf("Output = %T, want *output.FileModule", mods.Output)
	}
	if out.Path() != wordlist.DefaultOutputPath {
		t.Errorf("output path = %q", out.Path())
	}
	if len(mods.Filters()) != 1 || mods.Word == nil {
		t.Errorf("expected exactly the word filter, got %d filters", len(mods.Filters()))
	}
}

func TestCreateModules_DryRunSkipsOutput(t *testing.T) {
	job := wordlist.DefaultJob()
	job.DryRun = true
	job.Output = &wordlist.SinkConfig{Type: "nonsense"}

	mods, err := CreateModules(job)
	if err != nil {
		t.Fatalf("CreateModules() error = %v", err)
	}
	if mods.Output != nil {
		t.Errorf("Output = %T, want nil in dry-run", mods.Output)
	}
}

func TestCreateModules_Errors(t *testing.T) {
	tests := []struct {
		name string
		job  *wordlist.Job
	}{
		{"nil job", nil},
		{"missing input", &wordlist.Job{Output: &wordlist.SinkConfig{Type: "stdout"}}},
		{"unknown input", &wordlist.Job{
			Input:  &wordlist.SourceConfig{Type: "ftp"},
			Output: &wordlist.SinkConfig{Type: "stdout"},
		}},
		{"unknown output", &wordlist.Job{
			Input:  &wordlist.SourceConfig{Type: "stdin"},
			Output: &wordlist.SinkConfig{Type: "s3"},
		}},
		{"missing output", &wordlist.Job{Input: &wordlist.SourceConfig{Type: "stdin"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := CreateModules(tt.job)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errhandling.GetErrorCategory(err); got != errhandling.CategoryConfig {
				t.Errorf("category = %v, want config", got)
			}
		})
	}
}
