package config

// BuildConfig holds the stage pipeline parameters. The version pins
// (BaseImageTag, RustTag, ProtocVersion) are surfaced to the build as
// named build arguments with these documented defaults.
type BuildConfig struct {
	Context string `yaml:"context"`
	Target  string `yaml:"target"`

	// Manifest is the Cargo manifest the compiled binary's name is
	// read from.
	Manifest string `yaml:"manifest"`

	// BaseImage/BaseImageTag pin the minimal runtime base.
	BaseImage    string `yaml:"base_image"`
	BaseImageTag string `yaml:"base_image_tag"`

	// RustTag pins the toolchain stage's compiler image.
	RustTag string `yaml:"rust_tag"`

	// ProtocVersion pins the code-generation tool downloaded into the
	// toolchain stage.
	ProtocVersion string `yaml:"protoc_version"`

	// Port is the single network port the runtime image exposes,
	// supplied to the process via the named environment variable.
	Port PortConfig `yaml:"port"`
}

// PortConfig names the runtime port environment variable and its value.
type PortConfig struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
}

// DefaultBuildConfig returns the documented pipeline defaults.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		Context:       ".",
		Target:        "runtime",
		Manifest:      "Cargo.toml",
		BaseImage:     "registry.access.redhat.com/ubi9/ubi-minimal",
		BaseImageTag:  "9.4",
		RustTag:       "1.79",
		ProtocVersion: "26.1",
		Port: PortConfig{
			Name:  "GRPC_PORT",
			Value: 8033,
		},
	}
}
