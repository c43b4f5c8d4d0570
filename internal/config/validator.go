package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema/job-schema.json
var embeddedSchema []byte

const schemaURL = "https://textris.dev/schemas/wordtrim/v1/job-schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaInitErr  error
)

// printer renders validation messages.
var printer = message.NewPrinter(language.English)

// GetEmbeddedSchema returns the JSON schema job files are validated against.
func GetEmbeddedSchema() []byte {
	return embeddedSchema
}

// getCompiledSchema returns the compiled JSON schema, compiling it on first use.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var schemaDoc interface{}
		if err := json.Unmarshal(embeddedSchema, &schemaDoc); err != nil {
			schemaInitErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, schemaDoc); err != nil {
			schemaInitErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		var err error
		compiledSchema, err = compiler.Compile(schemaURL)
		if err != nil {
			schemaInitErr = fmt.Errorf("failed to compile schema: %w", err)
		}
	})

	if schemaInitErr != nil {
		return nil, schemaInitErr
	}
	return compiledSchema, nil
}

// ValidateConfig validates a parsed job file against the job schema and
// returns the violations found. An empty map is valid: every key is optional.
func ValidateConfig(data map[string]interface{}) []ValidationError {
	if data == nil {
		return []ValidationError{{
			Path:    "/",
			Type:    "required",
			Message: "configuration data is nil",
		}}
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return []ValidationError{{
			Path:    "/",
			Type:    "schema",
			Message: fmt.Sprintf("failed to load schema: %v", err),
		}}
	}

	validationErr := schema.Validate(data)
	if validationErr == nil {
		return nil
	}

	var errs []ValidationError
	if detailedErr, ok := validationErr.(*jsonschema.ValidationError); ok {
		errs = convertValidationErrors(detailedErr)
	}
	if len(errs) == 0 {
		errs = append(errs, ValidationError{
			Path:    "/",
			Type:    "validation",
			Message: validationErr.Error(),
		})
	}
	return errs
}

// convertValidationErrors flattens the jsonschema error tree into its leaves.
func convertValidationErrors(err *jsonschema.ValidationError) []ValidationError {
	if len(err.Causes) == 0 {
		if err.ErrorKind == nil {
			return nil
		}
		return []ValidationError{{
			Path:    formatInstanceLocation(err.InstanceLocation),
			Type:    errorType(err.ErrorKind),
			Message: err.ErrorKind.LocalizedString(printer),
		}}
	}

	var errs []ValidationError
	for _, cause := range err.Causes {
		errs = append(errs, convertValidationErrors(cause)...)
	}
	return errs
}

// formatInstanceLocation formats the instance location as a JSON pointer.
func formatInstanceLocation(loc []string) string {
	if len(loc) == 0 {
		return "/"
	}
	return "/" + strings.Join(loc, "/")
}

// errorType maps a jsonschema error kind to a short name.
func errorType(k jsonschema.ErrorKind) string {
	switch k.(type) {
	case *kind.Required:
		return "required"
	case *kind.Type:
		return "type"
	case *kind.Pattern:
		return "pattern"
	case *kind.Enum, *kind.Const:
		return "enum"
	case *kind.MinLength, *kind.MaxLength:
		return "length"
	case *kind.AdditionalProperties:
		return "additionalProperties"
	default:
		return "validation"
	}
}
