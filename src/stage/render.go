package stage

import (
	"fmt"
	"sort"
	"strings"
)

// Render produces the Dockerfile text for the pipeline. Output is
// deterministic for a given declaration: global args in declaration
// order, env keys sorted, stages in sequence.
func (p *Pipeline) Render() string {
	var lines []string

	lines = append(lines, "# Generated by stagehand; stage order isolates the toolchain")
	lines = append(lines, "# from source compilation to maximize layer-cache reuse.")
	for _, a := range p.GlobalArgs {
		lines = append(lines, fmt.Sprintf("ARG %s=%s", a.Name, a.Default))
	}

	for _, s := range p.Stages {
		lines = append(lines, "")
		if s.Doc != "" {
			lines = append(lines, fmt.Sprintf("# %s: %s", s.Name, s.Doc))
		}
		lines = append(lines, fmt.Sprintf("FROM %s AS %s", s.From, s.Name))

		for _, a := range s.Args {
			lines = append(lines, fmt.Sprintf("ARG %s", a))
		}

		for _, k := range sortedKeys(s.Env) {
			lines = append(lines, fmt.Sprintf("ENV %s=%s", k, s.Env[k]))
		}

		if s.Workdir != "" {
			lines = append(lines, fmt.Sprintf("WORKDIR %s", s.Workdir))
		}

		for _, c := range s.Copies {
			if c.FromStage != "" {
				lines = append(lines, fmt.Sprintf("COPY --from=%s %s %s", c.FromStage, c.Src, c.Dst))
			} else {
				lines = append(lines, fmt.Sprintf("COPY %s %s", c.Src, c.Dst))
			}
		}

		for _, r := range s.Runs {
			lines = append(lines, fmt.Sprintf("RUN %s", r))
		}

		if s.Expose > 0 {
			lines = append(lines, fmt.Sprintf("EXPOSE %d", s.Expose))
		}
		if s.User != "" {
			lines = append(lines, fmt.Sprintf("USER %s", s.User))
		}
		if len(s.Cmd) > 0 {
			lines = append(lines, "CMD "+jsonExec(s.Cmd))
		}
	}

	return strings.Join(lines, "\n") + "\n"
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// jsonExec renders an exec-form instruction argument list.
func jsonExec(argv []string) string {
	quoted := make([]string, len(argv))
	for i, a := range argv {
		quoted[i] = fmt.Sprintf("%q", a)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
