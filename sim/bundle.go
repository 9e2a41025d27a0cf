package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadExitTimeConfig reads an exit-time options file. Keys absent from the
// file keep their defaults; unknown keys are errors.
func LoadExitTimeConfig(path string) (*ExitTimeConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exit-time config: %w", err)
	}
	cfg := DefaultExitTimeConfig()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing exit-time config: %w", err)
	}
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid exit-time config: %w", err)
	}
	return &cfg, nil
}
