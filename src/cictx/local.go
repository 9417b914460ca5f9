package cictx

import (
	"github.com/go-git/go-git/v5"
)

// fromLocal queries local version control for the short commit hash
// and the current symbolic ref. A missing repository or an unborn
// branch (no commits) is a VCSQueryError.
func fromLocal(rootDir string) (*Context, error) {
	repo, err := git.PlainOpenWithOptions(rootDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &VCSQueryError{Op: "open", Err: err}
	}

	head, err := repo.Head()
	if err != nil {
		return nil, &VCSQueryError{Op: "head", Err: err}
	}

	ctx := &Context{
		Mode:   ModeLocal,
		Flavor: FlavorNone,
		Commit: shorten(head.Hash().String()),
	}
	if head.Name().IsBranch() {
		ctx.Ref = head.Name().Short()
	}

	return ctx, nil
}
