package cictx

import (
	"errors"
	"testing"
)

// clearCI blanks every recognized CI variable so tests control the
// environment completely regardless of where they run.
func clearCI(t *testing.T) {
	t.Helper()
	for _, v := range []string{
		"CI",
		"GITHUB_ACTIONS", "GITHUB_SHA", "GITHUB_REF_NAME",
		"TRAVIS", "TRAVIS_COMMIT", "TRAVIS_PULL_REQUEST", "TRAVIS_TAG", "TRAVIS_BRANCH",
	} {
		t.Setenv(v, "")
	}
}

func TestDetectGitHubActions(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Context
		wantErr bool
	}{
		{
			name: "branch push",
			env: map[string]string{
				"GITHUB_ACTIONS":  "true",
				"GITHUB_SHA":      "abcdef1234567",
				"GITHUB_REF_NAME": "main",
			},
			want: Context{
				Mode:   ModeCI,
				Flavor: FlavorGitHubActions,
				Commit: "abcdef1",
				Ref:    "main",
			},
		},
		{
			name: "PR merge ref",
			env: map[string]string{
				"GITHUB_ACTIONS":  "true",
				"GITHUB_SHA":      "9f8e7d6aaaaaa",
				"GITHUB_REF_NAME": "42/merge",
			},
			want: Context{
				Mode:       ModeCI,
				Flavor:     FlavorGitHubActions,
				Commit:     "9f8e7d6",
				Ref:        "42/merge",
				IsMergeRef: true,
			},
		},
		{
			name: "missing SHA is a hard failure",
			env: map[string]string{
				"GITHUB_ACTIONS": "true",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCI(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Detect(t.TempDir())
			if tt.wantErr {
				var mce *MissingContextError
				if !errors.As(err, &mce) {
					t.Fatalf("expected MissingContextError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDetectTravis(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    Context
		wantErr bool
	}{
		{
			name: "branch build",
			env: map[string]string{
				"TRAVIS":              "true",
				"TRAVIS_COMMIT":       "9f8e7d6aaaaaa",
				"TRAVIS_PULL_REQUEST": "false",
				"TRAVIS_BRANCH":       "main",
			},
			want: Context{
				Mode:   ModeCI,
				Flavor: FlavorTravis,
				Commit: "9f8e7d6",
				Ref:    "main",
			},
		},
		{
			name: "pull request synthesizes PR ref",
			env: map[string]string{
				"TRAVIS":              "true",
				"TRAVIS_COMMIT":       "9f8e7d6aaaaaa",
				"TRAVIS_PULL_REQUEST": "17",
				"TRAVIS_BRANCH":       "main",
			},
			want: Context{
				Mode:          ModeCI,
				Flavor:        FlavorTravis,
				Commit:        "9f8e7d6",
				Ref:           "PR-17",
				IsPullRequest: true,
				PRNumber:      17,
			},
		},
		{
			name: "tag build wins over branch",
			env: map[string]string{
				"TRAVIS":              "true",
				"TRAVIS_COMMIT":       "9f8e7d6aaaaaa",
				"TRAVIS_PULL_REQUEST": "false",
				"TRAVIS_BRANCH":       "main",
				"TRAVIS_TAG":          "v1.2.3",
			},
			want: Context{
				Mode:   ModeCI,
				Flavor: FlavorTravis,
				Commit: "9f8e7d6",
				Ref:    "v1.2.3",
			},
		},
		{
			name: "missing commit is a hard failure",
			env: map[string]string{
				"TRAVIS":              "true",
				"TRAVIS_PULL_REQUEST": "false",
			},
			wantErr: true,
		},
		{
			name: "missing PR indicator is a hard failure",
			env: map[string]string{
				"TRAVIS":        "true",
				"TRAVIS_COMMIT": "9f8e7d6aaaaaa",
			},
			wantErr: true,
		},
		{
			name: "malformed PR indicator is a hard failure",
			env: map[string]string{
				"TRAVIS":              "true",
				"TRAVIS_COMMIT":       "9f8e7d6aaaaaa",
				"TRAVIS_PULL_REQUEST": "maybe",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearCI(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Detect(t.TempDir())
			if tt.wantErr {
				var mce *MissingContextError
				if !errors.As(err, &mce) {
					t.Fatalf("expected MissingContextError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("got %+v, want %+v", *got, tt.want)
			}
		})
	}
}

func TestDetectBareCIFails(t *testing.T) {
	clearCI(t)
	t.Setenv("CI", "true")

	_, err := Detect(t.TempDir())
	var mce *MissingContextError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingContextError for bare CI=true, got %v", err)
	}
}

func TestGitHubActionsWinsOverTravis(t *testing.T) {
	clearCI(t)
	t.Setenv("GITHUB_ACTIONS", "true")
	t.Setenv("GITHUB_SHA", "abcdef1234567")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("TRAVIS", "true")
	t.Setenv("TRAVIS_COMMIT", "9f8e7d6aaaaaa")
	t.Setenv("TRAVIS_PULL_REQUEST", "false")

	got, err := Detect(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Flavor != FlavorGitHubActions {
		t.Errorf("flavor = %s, want %s", got.Flavor, FlavorGitHubActions)
	}
	if got.Commit != "abcdef1" {
		t.Errorf("commit = %s, want abcdef1", got.Commit)
	}
}
