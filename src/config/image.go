package config

// ImageConfig names the image and where (and when) it may be pushed.
type ImageConfig struct {
	// Repository is the default registry qualifier, e.g.
	// "quay.io/acme/router". Applied uniformly to every resolved tag.
	Repository string `yaml:"repository"`

	// PrimaryBranch is the only ref whose direct pushes publish
	// images. PR and other-branch builds never push.
	PrimaryBranch string `yaml:"primary_branch"`

	// Credentials is the env var prefix for registry auth:
	// "QUAY" → QUAY_USER / QUAY_PASS. Empty skips explicit login and
	// relies on ambient docker credentials.
	Credentials string `yaml:"credentials"`
}

// DefaultImageConfig returns sensible defaults for image naming.
func DefaultImageConfig() ImageConfig {
	return ImageConfig{
		PrimaryBranch: "main",
	}
}
