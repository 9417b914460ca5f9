package config

import (
	"fmt"
	"regexp"
)

var (
	versionPinRe = regexp.MustCompile(`^\d+(\.\d+){0,2}$`)
	envNameRe    = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)
)

// Validate rejects malformed version pins and port declarations before
// anything is rendered or executed. Pins are structured values, not ad
// hoc text substitutions, so a bad pin fails here rather than deep in
// the build.
func (c *Config) Validate() error {
	b := c.Build

	if b.BaseImage == "" {
		return fmt.Errorf("config: build.base_image must not be empty")
	}
	if b.BaseImageTag == "" {
		return fmt.Errorf("config: build.base_image_tag must not be empty")
	}
	if !versionPinRe.MatchString(b.ProtocVersion) {
		return fmt.Errorf("config: build.protoc_version %q is not a version pin", b.ProtocVersion)
	}
	if b.RustTag == "" {
		return fmt.Errorf("config: build.rust_tag must not be empty")
	}
	if !envNameRe.MatchString(b.Port.Name) {
		return fmt.Errorf("config: build.port.name %q is not an environment variable name", b.Port.Name)
	}
	if b.Port.Value < 1 || b.Port.Value > 65535 {
		return fmt.Errorf("config: build.port.value %d out of range", b.Port.Value)
	}

	return nil
}
