package stage

import "fmt"

// UnsupportedArchitectureError means no installer mapping exists for
// the given CPU architecture. Resolution never falls through to an
// unset download location.
type UnsupportedArchitectureError struct {
	Arch string
}

func (e *UnsupportedArchitectureError) Error() string {
	return fmt.Sprintf("stage: no protoc installer mapping for architecture %q", e.Arch)
}

// ArtifactError means a stage copies a path that no prior stage
// declares as an output. The copy path is exact; a missing artifact is
// a fatal build failure, never a fallback search.
type ArtifactError struct {
	Stage string
	From  string
	Path  string
}

func (e *ArtifactError) Error() string {
	return fmt.Sprintf("stage %s: %q is not a declared output of stage %s", e.Stage, e.Path, e.From)
}
