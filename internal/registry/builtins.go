package registry

import (
	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

func init() {
	registerBuiltinInputModules()
	registerBuiltinOutputModules()
}

func registerBuiltinInputModules() {
	RegisterInput(input.ModuleTypeFile, func(cfg *wordlist.SourceConfig) (input.Module, error) {
		return input.NewFileModule(cfg.Path)
	})
	RegisterInput(input.ModuleTypeStdin, func(_ *wordlist.SourceConfig) (input.Module, error) {
		return input.NewStdinModule(), nil
	})
}

func registerBuiltinOutputModules() {
	RegisterOutput(output.ModuleTypeFile, func(cfg *wordlist.SinkConfig) (output.Module, error) {
		return output.NewFileModule(cfg.Path)
	})
	RegisterOutput(output.ModuleTypeStdout, func(_ *wordlist.SinkConfig) (output.Module, error) {
		return output.NewStdoutModule(), nil
	})
}
