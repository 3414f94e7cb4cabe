package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the tunable sections. Each field points at the live
// global so decoding only overwrites keys present in the file.
type fileConfig struct {
	Window  *Config        `yaml:"window"`
	Hand    *HandConfig    `yaml:"hand"`
	Object  *ObjectConfig  `yaml:"object"`
	Record  *RecordConfig  `yaml:"record"`
	Physics *PhysicsConfig `yaml:"physics"`
	Level   *LevelConfig   `yaml:"level"`
	Debug   *DebugConfig   `yaml:"debug"`
}

// LoadYAML overrides the global configuration with values from r.
func LoadYAML(r io.Reader) error {
	fc := fileConfig{
		Window:  C,
		Hand:    &Hand,
		Object:  &Object,
		Record:  &Record,
		Physics: &Physics,
		Level:   &Level,
		Debug:   &Debug,
	}
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("decode config: %w", err)
	}
	if Record.Window <= 0 {
		return fmt.Errorf("record window must be positive, got %s", Record.Window)
	}
	return nil
}

// LoadFile overrides the global configuration from a YAML file.
func LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config %s: %w", path, err)
	}
	defer f.Close()

	if err := LoadYAML(f); err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	return nil
}
