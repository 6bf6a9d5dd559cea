// Package yaml loads category tables from YAML files.
package yaml

import (
	"bytes"
	"os"

	"github.com/fwojciec/stylebook"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk shape of a category table.
type Config struct {
	// Segment overrides stylebook.DefaultSegment when set.
	Segment    *int                 `yaml:"segment"`
	Categories stylebook.Categories `yaml:"categories"`
}

// LoadConfig reads and validates a category table from path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, stylebook.Errorf(stylebook.EINVALID, "failed to read config file: %v", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates a category table. Unknown fields are
// rejected so that typos do not silently drop a category.
func ParseConfig(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil {
		return nil, stylebook.Errorf(stylebook.EINVALID, "failed to parse config file: %v", err)
	}

	if cfg.Segment != nil && *cfg.Segment < 1 {
		return nil, stylebook.Errorf(stylebook.EINVALID, "segment must be at least 1, got %d", *cfg.Segment)
	}
	if err := cfg.Categories.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Classifier returns a classifier for the loaded table.
func (c *Config) Classifier() *stylebook.Classifier {
	classifier := stylebook.NewClassifier(c.Categories)
	if c.Segment != nil {
		classifier.Segment = *c.Segment
	}
	return classifier
}
