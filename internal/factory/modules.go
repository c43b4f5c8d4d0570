// Package factory creates the modules of a job from its configuration.
// Input and output modules are resolved through the registry; the word
// filter is always the single filter stage.
package factory

import (
	"fmt"
	"strings"

	"github.com/textris/wordtrim/internal/errhandling"
	"github.com/textris/wordtrim/internal/modules/filter"
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/internal/registry"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// Modules holds the instantiated stages of a job.
type Modules struct {
	Input  input.Module
	Word   *filter.WordModule
	Output output.Module
}

// Filters returns the filter stages in execution order.
func (m *Modules) Filters() []filter.Module {
	return []filter.Module{m.Word}
}

// CreateInputModule creates an input module from configuration.
func CreateInputModule(cfg *wordlist.SourceConfig) (input.Module, error) {
	if cfg == nil {
		return nil, errhandling.NewConfigError("input is not configured")
	}
	constructor := registry.GetInputConstructor(cfg.Type)
	if constructor == nil {
		return nil, errhandling.NewConfigError(fmt.Sprintf("unknown input type %q (available: %s)",
			cfg.Type, strings.Join(registry.ListInputTypes(), ", ")))
	}
	return constructor(cfg)
}

// CreateOutputModule creates an output module from configuration.
func CreateOutputModule(cfg *wordlist.SinkConfig) (output.Module, error) {
	if cfg == nil {
		return nil, errhandling.NewConfigError("output is not configured")
	}
	constructor := registry.GetOutputConstructor(cfg.Type)
	if constructor == nil {
		return nil, errhandling.NewConfigError(fmt.Sprintf("unknown output type %q (available: %s)",
			cfg.Type, strings.Join(registry.ListOutputTypes(), ", ")))
	}
	return constructor(cfg)
}

// CreateModules instantiates every stage of job. In dry-run mode no output
// module is created.
func CreateModules(job *wordlist.Job) (*Modules, error) {
	if job == nil {
		return nil, errhandling.NewConfigError("job is nil")
	}

	in, err := CreateInputModule(job.Input)
	if err != nil {
		return nil, fmt.Errorf("creating input module: %w", err)
	}

	mods := &Modules{Input: in, Word: filter.NewWordModule()}
	if job.DryRun {
		return mods, nil
	}

	out, err := CreateOutputModule(job.Output)
	if err != nil {
		_ = in.Close()
		return nil, fmt.Errorf("creating output module: %w", err)
	}
	mods.Output = out
	return mods, nil
}
