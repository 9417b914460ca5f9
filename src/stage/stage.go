// Package stage declares the multi-stage image build pipeline: an
// ordered sequence of stages with explicit data dependencies
// (toolchain → compiled artifact → minimal runtime). The declaration
// is rendered to a Dockerfile; scheduling and layer caching belong to
// the external builder, which is why the declaration itself must be
// deterministic.
package stage

// Stage is one named step of the pipeline.
type Stage struct {
	Name string

	// Doc is a one-line comment rendered above the stage.
	Doc string

	// From is the base image reference, or the name of a prior stage.
	From string

	// Args are build arguments re-declared inside this stage.
	Args []string

	Env     map[string]string
	Workdir string
	Runs    []string
	Copies  []Copy
	User    string
	Expose  int
	Cmd     []string

	// Outputs are the artifact paths later stages may copy from this
	// stage. A copy naming anything else fails validation — there is
	// no fallback search.
	Outputs []string
}

// Copy is an input copied into a stage from a prior stage (or from
// the build context when FromStage is empty).
type Copy struct {
	FromStage string
	Src       string
	Dst       string
}

// Pipeline is the full stage sequence plus the global build arguments
// (version pins) declared ahead of the first stage.
type Pipeline struct {
	// GlobalArgs holds named build arguments with their documented
	// defaults, in declaration order.
	GlobalArgs []Arg

	Stages []Stage
}

// Arg is a named build argument with a default value.
type Arg struct {
	Name    string
	Default string
}

// Targets returns the stage names, in declaration order.
func (p *Pipeline) Targets() []string {
	names := make([]string, 0, len(p.Stages))
	for _, s := range p.Stages {
		names = append(names, s.Name)
	}
	return names
}

// HasTarget reports whether name is a declared stage.
func (p *Pipeline) HasTarget(name string) bool {
	for _, s := range p.Stages {
		if s.Name == name {
			return true
		}
	}
	return false
}

// Terminal returns the name of the last stage, the default build target.
func (p *Pipeline) Terminal() string {
	if len(p.Stages) == 0 {
		return ""
	}
	return p.Stages[len(p.Stages)-1].Name
}
