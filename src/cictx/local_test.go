package cictx

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// initRepo creates a throwaway repository with a single commit and
// returns its directory and the full commit hash.
func initRepo(t *testing.T) (string, string) {
	t.Helper()

	dir := t.TempDir()
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("fixture\n"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if _, err := wt.Add("README.md"); err != nil {
		t.Fatalf("add: %v", err)
	}

	hash, err := wt.Commit("initial", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "fixture",
			Email: "fixture@example.com",
			When:  time.Now(),
		},
	})
	if err != nil {
		t.Fatalf("commit: %v", err)
	}

	return dir, hash.String()
}

func TestDetectLocal(t *testing.T) {
	clearCI(t)
	dir, hash := initRepo(t)

	got, err := Detect(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Mode != ModeLocal {
		t.Errorf("mode = %s, want %s", got.Mode, ModeLocal)
	}
	if got.Flavor != FlavorNone {
		t.Errorf("flavor = %s, want %s", got.Flavor, FlavorNone)
	}
	if want := hash[:7]; got.Commit != want {
		t.Errorf("commit = %s, want %s", got.Commit, want)
	}
	if got.Ref == "" {
		t.Error("expected branch ref for fresh repository head")
	}
}

func TestDetectLocalSubdirectory(t *testing.T) {
	clearCI(t)
	dir, hash := initRepo(t)

	sub := filepath.Join(dir, "src", "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got, err := Detect(sub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := hash[:7]; got.Commit != want {
		t.Errorf("commit = %s, want %s", got.Commit, want)
	}
}

func TestDetectLocalOutsideRepository(t *testing.T) {
	clearCI(t)

	_, err := Detect(t.TempDir())
	var vqe *VCSQueryError
	if !errors.As(err, &vqe) {
		t.Fatalf("expected VCSQueryError, got %v", err)
	}
}

func TestDetectLocalEmptyRepository(t *testing.T) {
	clearCI(t)
	dir := t.TempDir()
	if _, err := git.PlainInit(dir, false); err != nil {
		t.Fatalf("init repo: %v", err)
	}

	_, err := Detect(dir)
	var vqe *VCSQueryError
	if !errors.As(err, &vqe) {
		t.Fatalf("expected VCSQueryError for repository without commits, got %v", err)
	}
}
