package config

import (
	"fmt"

	"github.com/textris/wordtrim/pkg/wordlist"
)

// ConvertToJob converts parsed, validated job file data into a JobFile.
// Keys that are absent keep the values of wordlist.DefaultJob.
//
// The expected structure is:
//
//	{
//	  "name": "...",
//	  "input":   {"type": "file", "path": "wordsRaw.txt"},
//	  "output":  {"type": "file", "path": "Twordlist.txt"},
//	  "dryRun":  false,
//	  "logging": {"level": "info", "format": "human", "file": ""}
//	}
func ConvertToJob(data map[string]interface{}) (*JobFile, error) {
	if data == nil {
		return nil, fmt.Errorf("configuration data is nil")
	}

	job := wordlist.DefaultJob()

	if name, ok := data["name"].(string); ok && name != "" {
		job.Name = name
	}

	if raw, present := data["input"]; present {
		inputData, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid 'input' section: expected object, got %T", raw)
		}
		typ, path, err := convertModuleConfig(inputData)
		if err != nil {
			return nil, fmt.Errorf("invalid input config: %w", err)
		}
		job.Input = &wordlist.SourceConfig{Type: typ, Path: path}
	}

	if raw, present := data["output"]; present {
		outputData, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid 'output' section: expected object, got %T", raw)
		}
		typ, path, err := convertModuleConfig(outputData)
		if err != nil {
			return nil, fmt.Errorf("invalid output config: %w", err)
		}
		job.Output = &wordlist.SinkConfig{Type: typ, Path: path}
	}

	if dryRun, ok := data["dryRun"].(bool); ok {
		job.DryRun = dryRun
	}

	jf := &JobFile{Job: job}
	if loggingData, ok := data["logging"].(map[string]interface{}); ok {
		jf.Logging = convertLogging(loggingData)
	}
	return jf, nil
}

// convertModuleConfig extracts the type and path of a module section.
func convertModuleConfig(data map[string]interface{}) (string, string, error) {
	typ, ok := data["type"].(string)
	if !ok || typ == "" {
		return "", "", fmt.Errorf("missing required field 'type'")
	}
	path, _ := data["path"].(string)
	return typ, path, nil
}

func convertLogging(data map[string]interface{}) Logging {
	var l Logging
	l.Level, _ = data["level"].(string)
	l.Format, _ = data["format"].(string)
	l.File, _ = data["file"].(string)
	return l
}
