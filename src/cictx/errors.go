package cictx

import "fmt"

// VCSQueryError means local version control could not answer for the
// current commit or ref (not a repository, or no commits exist).
type VCSQueryError struct {
	Op  string
	Err error
}

func (e *VCSQueryError) Error() string {
	return fmt.Sprintf("vcs query (%s): %v", e.Op, e.Err)
}

func (e *VCSQueryError) Unwrap() error { return e.Err }

// MissingContextError means a CI indicator was present but a required
// variable was absent, empty, or malformed. The policy is hard failure:
// tag computation must stay observable, never silently degraded.
type MissingContextError struct {
	Flavor Flavor
	Var    string
	Reason string
}

func (e *MissingContextError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("ci context (%s): %s: %s", e.Flavor, e.Var, e.Reason)
	}
	return fmt.Sprintf("ci context (%s): %s is not set", e.Flavor, e.Var)
}
