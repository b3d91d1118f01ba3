// Package yaml loads llms.txt generation settings from YAML files.
package yaml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/llmstxt"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads the configuration file at path, expanding ${VAR}
// references from the environment.
// Returns ENOTFOUND if the file does not exist and EINVALID if it cannot be
// decoded. Defaults are not applied.
func LoadConfig(path string) (*llmstxt.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, llmstxt.Errorf(llmstxt.ENOTFOUND, "config file %q not found", path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return DecodeConfig(strings.NewReader(os.ExpandEnv(string(data))))
}

// DecodeConfig decodes a configuration document. Unknown fields are
// rejected so typos in option names surface immediately.
func DecodeConfig(r io.Reader) (*llmstxt.Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg llmstxt.Config
	if err := dec.Decode(&cfg); err != nil {
		// An empty document is a valid, empty configuration.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, llmstxt.Errorf(llmstxt.EINVALID, "invalid config: %v", err)
	}
	return &cfg, nil
}
