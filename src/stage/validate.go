package stage

import "fmt"

// Validate checks the declaration is a well-formed DAG: stage names
// are unique, FROM references only point backwards, and every
// cross-stage copy names a declared output of a prior stage.
func (p *Pipeline) Validate() error {
	all := make(map[string]bool, len(p.Stages))
	for _, s := range p.Stages {
		if s.Name == "" {
			return fmt.Errorf("stage: unnamed stage")
		}
		if all[s.Name] {
			return fmt.Errorf("stage: duplicate stage name %q", s.Name)
		}
		all[s.Name] = true
	}

	seen := make(map[string]*Stage, len(p.Stages))
	for i := range p.Stages {
		s := &p.Stages[i]

		if all[s.From] && seen[s.From] == nil {
			return fmt.Errorf("stage %s: FROM %s is not an earlier stage", s.Name, s.From)
		}

		for _, c := range s.Copies {
			if c.FromStage == "" {
				continue // build context input
			}
			prior, ok := seen[c.FromStage]
			if !ok {
				return fmt.Errorf("stage %s: copy from unknown stage %q", s.Name, c.FromStage)
			}
			if !declaresOutput(prior, c.Src) {
				return &ArtifactError{Stage: s.Name, From: c.FromStage, Path: c.Src}
			}
		}

		seen[s.Name] = s
	}
	return nil
}

func declaresOutput(s *Stage, path string) bool {
	for _, out := range s.Outputs {
		if out == path {
			return true
		}
	}
	return false
}
