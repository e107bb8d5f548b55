package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type denylistFile struct {
	Brands []string `yaml:"brands"`
}

// LoadDenylist reads a YAML file overriding the built-in brand denylist.
func LoadDenylist(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read denylist %q: %w", path, err)
	}

	var file denylistFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse denylist %q: %w", path, err)
	}
	if len(file.Brands) == 0 {
		return nil, fmt.Errorf("denylist %q contains no brands", path)
	}
	return file.Brands, nil
}
