package stage

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"
)

// Manifest is the slice of a Cargo manifest the pipeline cares about:
// the package name (which names the compiled binary) and its version.
type Manifest struct {
	Package struct {
		Name    string `toml:"name"`
		Version string `toml:"version"`
	} `toml:"package"`
}

// ReadManifest parses a Cargo.toml and returns the package metadata.
func ReadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("stage: read manifest: %w", err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("stage: parse %s: %w", path, err)
	}
	if m.Package.Name == "" {
		return nil, fmt.Errorf("stage: %s has no package name", path)
	}
	return &m, nil
}

// BinaryName returns the name of the binary cargo produces.
func (m *Manifest) BinaryName() string {
	return m.Package.Name
}
