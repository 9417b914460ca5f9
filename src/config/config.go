// Package config loads and validates the stagehand configuration file.
// Version pins live here as structured, pre-validated values so an
// upgrade touches exactly one declaration point.
package config

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".stagehand.yml"

// Config is the top-level stagehand configuration.
type Config struct {
	Image ImageConfig `yaml:"image"`
	Build BuildConfig `yaml:"build"`
	Tags  TagsConfig  `yaml:"tags"`
}

// Load reads configuration from a YAML file.
// If path is empty, it tries the default file.
// Returns sensible defaults if the file doesn't exist.
func Load(path string) (*Config, error) {
	if path == "" {
		path = defaultConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return defaults(), nil
		}
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Image: DefaultImageConfig(),
		Build: DefaultBuildConfig(),
		Tags:  DefaultTagsConfig(),
	}
}

// TagsConfig adjusts tag resolution.
type TagsConfig struct {
	// ReleaseChannels emits major.minor and major channel tags for
	// clean semver release refs.
	ReleaseChannels bool `yaml:"release_channels"`
}

// DefaultTagsConfig returns the plain resolution algorithm.
func DefaultTagsConfig() TagsConfig {
	return TagsConfig{}
}
