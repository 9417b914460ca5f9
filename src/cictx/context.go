// Package cictx resolves the execution context a build runs in: local
// workstation or CI, and for CI which variable convention is in effect.
// The resolved Context is computed once per invocation and never
// mutated afterwards; everything downstream (tag resolution, the push
// gate) is a pure function of it.
package cictx

import "fmt"

// Mode says where the invocation is running.
type Mode string

const (
	ModeLocal Mode = "local"
	ModeCI    Mode = "ci"
)

// Flavor is the CI variable convention in effect.
type Flavor string

const (
	FlavorNone          Flavor = "none"
	FlavorGitHubActions Flavor = "github-actions"
	FlavorTravis        Flavor = "travis"
)

// Context is the resolved execution environment for one invocation.
type Context struct {
	Mode   Mode
	Flavor Flavor

	// Commit is the short (7-char) commit hash. Always populated;
	// detection fails rather than produce a context without it.
	Commit string

	// Ref is the branch or tag name, or a synthesized PR-{n} for
	// Travis-style pull request builds. May be empty (detached HEAD).
	Ref string

	IsPullRequest bool
	PRNumber      int

	// IsMergeRef is true when Ref is a GitHub-style synthetic PR merge
	// ref (contains "/merge"). Merge refs are excluded from tagging.
	IsMergeRef bool
}

// Describe returns a one-line human summary for the context block.
func (c *Context) Describe() string {
	switch {
	case c.Mode == ModeLocal:
		return fmt.Sprintf("local checkout (%s)", c.Commit)
	case c.IsMergeRef:
		return fmt.Sprintf("PR merge ref (%s)", c.Ref)
	case c.IsPullRequest:
		return fmt.Sprintf("pull request #%d", c.PRNumber)
	case c.Ref != "":
		return fmt.Sprintf("push to %s", c.Ref)
	}
	return fmt.Sprintf("detached (%s)", c.Commit)
}
