// Package registry provides module registries for input and output modules.
//
// Modules register their constructors by type string instead of being
// selected by a hard-coded switch, so a new source or sink (for example an
// HTTP word feed) only needs a constructor and a Register call:
//
//	func init() {
//	    registry.RegisterInput("http", NewHTTPModule)
//	}
//
// The word filter itself is not registered: its rules are fixed.
package registry

import (
	"slices"
	"sync"

	"github.com/textris/wordtrim/internal/modules/input"
	"github.com/textris/wordtrim/internal/modules/output"
	"github.com/textris/wordtrim/pkg/wordlist"
)

// InputConstructor creates an input module from configuration.
type InputConstructor func(cfg *wordlist.SourceConfig) (input.Module, error)

// OutputConstructor creates an output module from configuration.
type OutputConstructor func(cfg *wordlist.SinkConfig) (output.Module, error)

var (
	inputMu       sync.RWMutex
	inputRegistry = make(map[string]InputConstructor)
)

var (
	outputMu       sync.RWMutex
	outputRegistry = make(map[string]OutputConstructor)
)

// RegisterInput registers an input module constructor by type string.
// Registering an existing type overwrites the previous constructor.
func RegisterInput(moduleType string, constructor InputConstructor) {
	inputMu.Lock()
	defer inputMu.Unlock()
	inputRegistry[moduleType] = constructor
}

// RegisterOutput registers an output module constructor by type string.
// Registering an existing type overwrites the previous constructor.
func RegisterOutput(moduleType string, constructor OutputConstructor) {
	outputMu.Lock()
	defer outputMu.Unlock()
	outputRegistry[moduleType] = constructor
}

// GetInputConstructor returns the registered constructor for an input module type,
// or nil.
func GetInputConstructor(moduleType string) InputConstructor {
	inputMu.RLock()
	defer inputMu.RUnlock()
	return inputRegistry[moduleType]
}

// GetOutputConstructor returns the registered constructor for an output module type,
// or nil.
func GetOutputConstructor(moduleType string) OutputConstructor {
	outputMu.RLock()
	defer outputMu.RUnlock()
	return outputRegistry[moduleType]
}

// ListInputTypes returns all registered input module type names, sorted.
func ListInputTypes() []string {
	inputMu.RLock()
	defer inputMu.RUnlock()
	types := make([]string, 0, len(inputRegistry))
	for t := range inputRegistry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// ListOutputTypes returns all registered output module type names, sorted.
func ListOutputTypes() []string {
	outputMu.RLock()
	defer outputMu.RUnlock()
	types := make([]string, 0, len(outputRegistry))
	for t := range outputRegistry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// ClearRegistries removes all registered constructors.
// This is intended for testing purposes only.
func ClearRegistries() {
	inputMu.Lock()
	inputRegistry = make(map[string]InputConstructor)
	inputMu.Unlock()

	outputMu.Lock()
	outputRegistry = make(map[string]OutputConstructor)
	outputMu.Unlock()
}

// ResetBuiltins clears the registries and registers the built-in modules again.
// This is intended for testing purposes only.
func ResetBuiltins() {
	ClearRegistries()
	registerBuiltinInputModules()
	registerBuiltinOutputModules()
}
