// Package config parses and validates wordtrim job files (JSON/YAML) and
// converts them into wordlist.Job values.
//
// A job file only chooses where words come from, where the curated list
// goes, and how the run logs. It cannot change the filter rules.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseJSONFile parses a JSON job file from the given path.
func ParseJSONFile(filepath string) *ParseResult {
	return parseFile(filepath, FormatJSON, ParseJSONString)
}

// ParseYAMLFile parses a YAML job file from the given path.
func ParseYAMLFile(filepath string) *ParseResult {
	return parseFile(filepath, FormatYAML, ParseYAMLString)
}

func parseFile(filepath, format string, parse func(string) *ParseResult) *ParseResult {
	result := &ParseResult{Format: format}

	content, err := os.ReadFile(filepath)
	if err != nil {
		result.Errors = append(result.Errors, ParseError{
			Path:    filepath,
			Message: fmt.Sprintf("failed to read file: %v", err),
			Type:    ErrorTypeIO,
		})
		return result
	}

	parsed := parse(string(content))
	result.Data = parsed.Data
	result.Errors = parsed.Errors
	for i := range result.Errors {
		if result.Errors[i].Path == "" {
			result.Errors[i].Path = filepath
		}
	}
	return result
}

// ParseJSONString parses JSON content from a string.
func ParseJSONString(content string) *ParseResult {
	result := &ParseResult{Format: FormatJSON}

	content = strings.TrimSpace(content)
	if content == "" {
		result.Errors = append(result.Errors, ParseError{
			Message: "empty content: expected JSON object",
			Type:    ErrorTypeSyntax,
		})
		return result
	}

	var data interface{}
	if err := json.Unmarshal([]byte(content), &data); err != nil {
		result.Errors = append(result.Errors, parseJSONError(err, content))
		return result
	}

	if data == nil {
		result.Data = map[string]interface{}{}
		return result
	}

	dataMap, ok := data.(map[string]interface{})
	if !ok {
		result.Errors = append(result.Errors, ParseError{
			Message: fmt.Sprintf("invalid configuration: expected JSON object, got %T", data),
			Type:    ErrorTypeFormat,
		})
		return result
	}

	result.Data = dataMap
	return result
}

// parseJSONError extracts line and column from a JSON decoding error.
func parseJSONError(err error, content string) ParseError {
	parseErr := ParseError{
		Message: err.Error(),
		Type:    ErrorTypeSyntax,
	}

	if syntaxErr, ok := err.(*json.SyntaxError); ok {
		parseErr.Line, parseErr.Column = offsetToLineColumn(content, syntaxErr.Offset)
		parseErr.Message = fmt.Sprintf("JSON syntax error at offset %d: %s", syntaxErr.Offset, syntaxErr.Error())
	}
	return parseErr
}

// offsetToLineColumn converts a byte offset to line and column numbers (1-based).
func offsetToLineColumn(content string, offset int64) (line, column int) {
	line, column = 1, 1
	for i := int64(0); i < offset && i < int64(len(content)); i++ {
		if content[i] == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}
	return line, column
}

// ParseYAMLString parses YAML content from a string.
func ParseYAMLString(content string) *ParseResult {
	result := &ParseResult{Format: FormatYAML}

	if strings.TrimSpace(content) == "" {
		result.Errors = append(result.Errors, ParseError{
			Message: "empty content: expected YAML document",
			Type:    ErrorTypeSyntax,
		})
		return result
	}

	var data interface{}
	if err := yaml.Unmarshal([]byte(content), &data); err != nil {
		result.Errors = append(result.Errors, parseYAMLError(err))
		return result
	}

	// A document with only comments decodes to nil; it selects every default.
	if data == nil {
		result.Data = map[string]interface{}{}
		return result
	}

	dataMap, ok := data.(map[string]interface{})
	if !ok {
		result.Errors = append(result.Errors, ParseError{
			Message: fmt.Sprintf("invalid configuration: expected YAML mapping, got %T", data),
			Type:    ErrorTypeFormat,
		})
		return result
	}

	result.Data = dataMap
	return result
}

// parseYAMLError extracts the line number yaml.v3 embeds in its messages
// ("yaml: line X: ...").
func parseYAMLError(err error) ParseError {
	parseErr := ParseError{
		Message: err.Error(),
		Type:    ErrorTypeSyntax,
	}

	if typeErr, ok := err.(*yaml.TypeError); ok {
		parseErr.Message = fmt.Sprintf("YAML type error: %s", strings.Join(typeErr.Errors, "; "))
	}

	var line int
	if _, scanErr := fmt.Sscanf(err.Error(), "yaml: line %d:", &line); scanErr == nil {
		parseErr.Line = line
	}
	return parseErr
}

// ParseConfig parses and validates a job file. The format is taken from the
// extension (.json, .yaml, .yml) or detected from content.
func ParseConfig(filepath string) *Result {
	result := &Result{FilePath: filepath}

	var parsed *ParseResult
	switch DetectFormat(filepath) {
	case FormatJSON:
		parsed = ParseJSONFile(filepath)
	case FormatYAML:
		parsed = ParseYAMLFile(filepath)
	default:
		content, err := os.ReadFile(filepath)
		if err != nil {
			result.ParseErrors = append(result.ParseErrors, ParseError{
				Path:    filepath,
				Message: fmt.Sprintf("failed to read file: %v", err),
				Type:    ErrorTypeIO,
			})
			return result
		}
		parsed = parseDetected(string(content))
		if parsed == nil {
			result.ParseErrors = append(result.ParseErrors, ParseError{
				Path:    filepath,
				Message: "unable to detect configuration format: not valid JSON or YAML",
				Type:    ErrorTypeFormat,
			})
			return result
		}
		for i := range parsed.Errors {
			if parsed.Errors[i].Path == "" {
				parsed.Errors[i].Path = filepath
			}
		}
	}

	return finishResult(result, parsed)
}

// ParseConfigString parses and validates job content from a string.
// If format is empty, it is detected from content.
func ParseConfigString(content string, format string) *Result {
	result := &Result{Format: format}

	var parsed *ParseResult
	switch format {
	case "":
		parsed = parseDetected(content)
		if parsed == nil {
			result.ParseErrors = append(result.ParseErrors, ParseError{
				Message: "unable to detect configuration format: not valid JSON or YAML",
				Type:    ErrorTypeFormat,
			})
			return result
		}
	case FormatJSON:
		parsed = ParseJSONString(content)
	case FormatYAML:
		parsed = ParseYAMLString(content)
	default:
		result.ParseErrors = append(result.ParseErrors, ParseError{
			Message: fmt.Sprintf("unsupported format: %s", format),
			Type:    ErrorTypeFormat,
		})
		return result
	}

	return finishResult(result, parsed)
}

func parseDetected(content string) *ParseResult {
	switch {
	case IsJSON(content):
		return ParseJSONString(content)
	case IsYAML(content):
		return ParseYAMLString(content)
	default:
		return nil
	}
}

// finishResult copies parse output into result and validates it when
// parsing succeeded.
func finishResult(result *Result, parsed *ParseResult) *Result {
	result.Data = parsed.Data
	result.ParseErrors = parsed.Errors
	result.Format = parsed.Format

	if !parsed.IsValid() {
		return result
	}

	result.ValidationErrors = ValidateConfig(parsed.Data)
	return result
}

// DetectFormat detects the format from the file extension.
// Returns "json", "yaml", or "" when the extension is not recognized.
func DetectFormat(filepath string) string {
	switch strings.ToLower(path.Ext(filepath)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return ""
	}
}

// IsJSON checks if the content appears to be JSON format.
func IsJSON(content string) bool {
	content = strings.TrimSpace(content)
	return strings.HasPrefix(content, "{") || strings.HasPrefix(content, "[")
}

// IsYAML checks if non-blank content parses as YAML.
// JSON is also valid YAML, so this may return true for JSON content.
func IsYAML(content string) bool {
	if strings.TrimSpace(content) == "" {
		return false
	}
	var data interface{}
	return yaml.Unmarshal([]byte(content), &data) == nil
}
