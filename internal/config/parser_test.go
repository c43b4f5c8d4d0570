package config

import (
	"strings"
	"testing"
)

func TestParseYAMLFile_Valid(t *testing.T) {
	result := ParseYAMLFile("testdata/valid-job.yaml")

	if !result.IsValid() {
		t.Fatalf("expected valid result, got errors: %v", result.Errors)
	}
	if result.Format != FormatYAML {
		t.Errorf("expected format 'yaml', got '%s'", result.Format)
	}
	if name := result.Data["name"]; name != "textris" {
		t.Errorf("expected name 'textris', got '%v'", name)
	}
	input, ok := result.Data["input"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected input to be a map, got %T", result.Data["input"])
	}
	if input["path"] != "wordsRaw.txt" {
		t.Errorf("expected input.path 'wordsRaw.txt', got '%v'", input["path"])
	}
}

func TestParseJSONFile_Valid(t *testing.T) {
	result := ParseJSONFile("testdata/valid-job.json")

	if !result.IsValid() {
		t.Fatalf("expected valid result, got errors: %v", result.Errors)
	}
	if result.Format != FormatJSON {
		t.Errorf("expected format 'json', got '%s'", result.Format)
	}
	if result.Data["dryRun"] != true {
		t.Errorf("expected dryRun true, got %v", result.Data["dryRun"])
	}
}

func TestParseJSONFile_InvalidSyntax(t *testing.T) {
	result := ParseJSONFile("testdata/invalid-syntax.json")

	if result.IsValid() {
		t.Fatal("expected parsing to fail for invalid JSON")
	}
	err := result.Errors[0]
	if err.Type != ErrorTypeSyntax {
		t.Errorf("expected error type '%s', got '%s'", ErrorTypeSyntax, err.Type)
	}
	if err.Line != 3 {
		t.Errorf("expected error on line 3, got %d", err.Line)
	}
	if err.Path != "testdata/invalid-syntax.json" {
		t.Errorf("expected path to be set, got '%s'", err.Path)
	}
}

func TestParseYAMLFile_InvalidSyntax(t *testing.T) {
	result := ParseYAMLFile("testdata/invalid-syntax.yaml")

	if result.IsValid() {
		t.Fatal("expected parsing to fail for invalid YAML")
	}
	if result.Errors[0].Line == 0 {
		t.Errorf("expected a line number in %+v", result.Errors[0])
	}
}

func TestParseJSONFile_Empty(t *testing.T) {
	result := ParseJSONFile("testdata/empty.json")

	if result.IsValid() {
		t.Fatal("expected parsing to fail for empty file")
	}
	if !strings.Contains(result.Errors[0].Message, "empty") {
		t.Errorf("unexpected message: %s", result.Errors[0].Message)
	}
}

func TestParseFile_Missing(t *testing.T) {
	result := ParseYAMLFile("testdata/does-not-exist.yaml")

	if result.IsValid() {
		t.Fatal("expected error for missing file")
	}
	if result.Errors[0].Type != ErrorTypeIO {
		t.Errorf("expected error type '%s', got '%s'", ErrorTypeIO, result.Errors[0].Type)
	}
}

func TestParseYAMLString_CommentsOnly(t *testing.T) {
	result := ParseYAMLString("# nothing here\n")

	if !result.IsValid() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if result.Data == nil || len(result.Data) != 0 {
		t.Errorf("expected empty map, got %v", result.Data)
	}
}

func TestParseString_NotAnObject(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) *ParseResult
		input string
	}{
		{"json array", ParseJSONString, `["a", "b"]`},
		{"yaml scalar", ParseYAMLString, "just a word"},
		{"yaml list", ParseYAMLString, "- a\n- b\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.parse(tt.input)
			if result.IsValid() {
				t.Fatal("expected a format error")
			}
			if result.Errors[0].Type != ErrorTypeFormat {
				t.Errorf("expected type '%s', got '%s'", ErrorTypeFormat, result.Errors[0].Type)
			}
		})
	}
}

func TestOffsetToLineColumn(t *testing.T) {
	content := "ab\ncd\nef"
	tests := []struct {
		offset    int64
		line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{3, 2, 1},
		{7, 3, 2},
		{100, 3, 3},
	}
	for _, tt := range tests {
		line, col := offsetToLineColumn(content, tt.offset)
		if line != tt.line || col != tt.col {
			t.Errorf("offsetToLineColumn(%d) = %d:%d, want %d:%d", tt.offset, line, col, tt.line, tt.col)
		}
	}
}

func TestDetectFormat(t *testing.T) {
	tests := map[string]string{
		"job.json":     FormatJSON,
		"job.JSON":     FormatJSON,
		"job.yaml":     FormatYAML,
		"dir/job.yml":  FormatYAML,
		"job.conf":     "",
		"no-extension": "",
	}
	for path, want := range tests {
		if got := DetectFormat(path); got != want {
			t.Errorf("DetectFormat(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestParseConfig_DetectsContentFormat(t *testing.T) {
	result := ParseConfig("testdata/detected.conf")

	if !result.IsValid() {
		t.Fatalf("unexpected errors: %v %v", result.ParseErrors, result.ValidationErrors)
	}
	if result.Format != FormatYAML {
		t.Errorf("expected detected format 'yaml', got '%s'", result.Format)
	}
	if result.FilePath != "testdata/detected.conf" {
		t.Errorf("FilePath = %q", result.FilePath)
	}
}

func TestParseConfig_SkipsValidationOnParseError(t *testing.T) {
	result := ParseConfig("testdata/invalid-syntax.yaml")

	if len(result.ParseErrors) == 0 {
		t.Fatal("expected parse errors")
	}
	if len(result.ValidationErrors) != 0 {
		t.Errorf("validation should not run, got %v", result.ValidationErrors)
	}
}

func TestParseConfigString(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		format      string
		wantParse   bool
		wantInvalid bool
	}{
		{"detected json", `{"name": "a"}`, "", false, false},
		{"detected yaml", "name: a\n", "", false, false},
		{"explicit yaml", "name: a\n", FormatYAML, false, false},
		{"unknown key", "colour: red\n", FormatYAML, false, true},
		{"unsupported format", "name = a", "toml", true, false},
		{"blank", "   ", "", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ParseConfigString(tt.content, tt.format)
			if got := len(result.ParseErrors) > 0; got != tt.wantParse {
				t.Errorf("parse errors = %v, want present=%v", result.ParseErrors, tt.wantParse)
			}
			if got := len(result.ValidationErrors) > 0; got != tt.wantInvalid {
				t.Errorf("validation errors = %v, want present=%v", result.ValidationErrors, tt.wantInvalid)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	err := ParseError{Path: "job.json", Line: 3, Column: 7, Message: "unexpected ','"}
	if got, want := err.Error(), "job.json: line 3, column 7: unexpected ','"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := (ParseError{Message: "boom"}).Error(); got != "boom" {
		t.Errorf("Error() = %q", got)
	}
}
