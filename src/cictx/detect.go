package cictx

import (
	"os"
	"strconv"
	"strings"
)

// mergeRefMarker is the substring identifying GitHub-style synthetic
// PR merge refs, e.g. "42/merge".
const mergeRefMarker = "/merge"

const shortSHALen = 7

// Detect resolves the execution context from the process environment.
// GitHub Actions variables win over Travis-style ones when both are
// present; a bare CI=true with neither convention populated is a hard
// failure. With no CI indicator at all, local version control is
// queried under rootDir.
func Detect(rootDir string) (*Context, error) {
	switch {
	case os.Getenv("GITHUB_ACTIONS") == "true" || os.Getenv("GITHUB_SHA") != "":
		return fromGitHubActions()
	case os.Getenv("TRAVIS") == "true" || os.Getenv("TRAVIS_COMMIT") != "":
		return fromTravis()
	case os.Getenv("CI") == "true":
		return nil, &MissingContextError{
			Flavor: FlavorNone,
			Var:    "CI",
			Reason: "CI is set but no recognized variable convention is populated",
		}
	}
	return fromLocal(rootDir)
}

// fromGitHubActions reads the GitHub Actions convention: full-length
// SHA (truncated to 7), ref name, merge-ref marker.
func fromGitHubActions() (*Context, error) {
	sha := strings.TrimSpace(os.Getenv("GITHUB_SHA"))
	if sha == "" {
		return nil, &MissingContextError{Flavor: FlavorGitHubActions, Var: "GITHUB_SHA"}
	}

	ref := strings.TrimSpace(os.Getenv("GITHUB_REF_NAME"))

	return &Context{
		Mode:       ModeCI,
		Flavor:     FlavorGitHubActions,
		Commit:     shorten(sha),
		Ref:        ref,
		IsMergeRef: strings.Contains(ref, mergeRefMarker),
	}, nil
}

// fromTravis reads the Travis-style convention. The pull request
// variable holds the literal "false" outside PR builds, else the PR
// number. Ref precedence: tag build, PR build (synthesized PR-{n}),
// branch build.
func fromTravis() (*Context, error) {
	sha := strings.TrimSpace(os.Getenv("TRAVIS_COMMIT"))
	if sha == "" {
		return nil, &MissingContextError{Flavor: FlavorTravis, Var: "TRAVIS_COMMIT"}
	}

	pr := strings.TrimSpace(os.Getenv("TRAVIS_PULL_REQUEST"))
	if pr == "" {
		return nil, &MissingContextError{Flavor: FlavorTravis, Var: "TRAVIS_PULL_REQUEST"}
	}

	ctx := &Context{
		Mode:   ModeCI,
		Flavor: FlavorTravis,
		Commit: shorten(sha),
	}

	if pr != "false" {
		n, err := strconv.Atoi(pr)
		if err != nil || n <= 0 {
			return nil, &MissingContextError{
				Flavor: FlavorTravis,
				Var:    "TRAVIS_PULL_REQUEST",
				Reason: "expected \"false\" or a PR number, got " + strconv.Quote(pr),
			}
		}
		ctx.IsPullRequest = true
		ctx.PRNumber = n
	}

	switch {
	case os.Getenv("TRAVIS_TAG") != "":
		ctx.Ref = strings.TrimSpace(os.Getenv("TRAVIS_TAG"))
	case ctx.IsPullRequest:
		ctx.Ref = "PR-" + strconv.Itoa(ctx.PRNumber)
	default:
		ctx.Ref = strings.TrimSpace(os.Getenv("TRAVIS_BRANCH"))
	}

	return ctx, nil
}

// shorten truncates a commit hash to the fixed short width.
func shorten(sha string) string {
	if len(sha) > shortSHALen {
		return sha[:shortSHALen]
	}
	return sha
}
