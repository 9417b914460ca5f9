package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sofmeright/stagehand/src/cictx"
)

// ErrPushSkipped is the intentional no-op outcome when the push gate
// condition is false. It is not a failure.
var ErrPushSkipped = errors.New("push skipped: not a direct push to the primary branch")

// PushError wraps a login or push failure. One-shot, fail-fast: the
// first failing ref aborts the rest, no retry.
type PushError struct {
	Ref string
	Err error
}

func (e *PushError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("push %s: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("push: %v", e.Err)
}

func (e *PushError) Unwrap() error { return e.Err }

// ShouldPush implements the publish gate: only a direct push to the
// primary branch publishes images. Pull requests, merge refs, other
// branches, and local builds never push, regardless of what tags were
// resolved.
func ShouldPush(ctx *cictx.Context, primaryBranch string) bool {
	return ctx.Mode == cictx.ModeCI &&
		!ctx.IsPullRequest &&
		!ctx.IsMergeRef &&
		ctx.Ref != "" &&
		ctx.Ref == primaryBranch
}

// Login authenticates against the registry host of the qualifier using
// env-prefixed credentials ("QUAY" → QUAY_USER / QUAY_PASS). With no
// prefix or unset credentials it is a no-op and ambient docker
// credentials apply.
func (bx *Buildx) Login(ctx context.Context, qualifier, credPrefix string) error {
	if credPrefix == "" {
		return nil
	}
	prefix := strings.ToUpper(credPrefix)
	user := os.Getenv(prefix + "_USER")
	pass := os.Getenv(prefix + "_PASS")
	if user == "" || pass == "" {
		return nil
	}

	host := registryHost(qualifier)
	if bx.Verbose {
		fmt.Fprintf(bx.Stderr, "exec: docker login -u %s %s\n", user, host)
	}

	cmd := exec.CommandContext(ctx, "docker", "login", "-u", user, "--password-stdin", host)
	cmd.Stdin = strings.NewReader(pass)
	cmd.Stdout = bx.Stdout
	cmd.Stderr = bx.Stderr
	if err := cmd.Run(); err != nil {
		return &PushError{Err: fmt.Errorf("docker login %s: %w", host, err)}
	}
	return nil
}

// PushTags pushes each ref in order. The first failure is surfaced
// immediately.
func (bx *Buildx) PushTags(ctx context.Context, refs []string) error {
	for _, ref := range refs {
		if bx.Verbose {
			fmt.Fprintf(bx.Stderr, "exec: docker push %s\n", ref)
		}
		cmd := exec.CommandContext(ctx, "docker", "push", ref)
		cmd.Stdout = bx.Stdout
		cmd.Stderr = bx.Stderr
		if err := cmd.Run(); err != nil {
			return &PushError{Ref: ref, Err: err}
		}
	}
	return nil
}

// registryHost extracts the registry host from a qualifier. Docker
// convention: the first path component is a host only when it contains
// a dot or a port; otherwise the default registry is in play.
func registryHost(qualifier string) string {
	first, _, found := strings.Cut(qualifier, "/")
	if found && (strings.Contains(first, ".") || strings.Contains(first, ":")) {
		return first
	}
	return "docker.io"
}
