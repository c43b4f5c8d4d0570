package config

import (
	"errors"
	"fmt"
)

// ErrInvalidJobFile is returned by Load when the job file has parse or
// validation errors. The Result passed back alongside it lists them.
var ErrInvalidJobFile = errors.New("invalid job file")

// Load parses, validates and converts the job file at path.
// The returned Result is never nil.
func Load(path string) (*JobFile, *Result, error) {
	result := ParseConfig(path)
	if !result.IsValid() {
		return nil, result, fmt.Errorf("%w: %s", ErrInvalidJobFile, path)
	}

	jf, err := ConvertToJob(result.Data)
	if err != nil {
		return nil, result, fmt.Errorf("converting %s: %w", path, err)
	}
	return jf, result, nil
}
