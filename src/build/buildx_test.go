package build

import (
	"strings"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	bx := NewBuildx(false)
	step := Step{
		Name:       "runtime",
		Dockerfile: ".stagehand/Dockerfile",
		Context:    ".",
		Target:     "runtime",
		BuildArgs: map[string]string{
			"RUST_TAG":       "1.79",
			"PROTOC_VERSION": "26.1",
		},
		Tags: []string{"quay.io/foo/bar:abcdef1", "quay.io/foo/bar:main"},
	}

	got := strings.Join(bx.buildArgs(step), " ")
	want := "buildx build" +
		" --file .stagehand/Dockerfile" +
		" --target runtime" +
		" --build-arg PROTOC_VERSION=26.1" +
		" --build-arg RUST_TAG=1.79" +
		" --build-arg BUILDKIT_INLINE_CACHE=1" +
		" --tag quay.io/foo/bar:abcdef1" +
		" --tag quay.io/foo/bar:main" +
		" --load ."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildArgsDefaults(t *testing.T) {
	bx := NewBuildx(false)
	got := strings.Join(bx.buildArgs(Step{Name: "bare"}), " ")
	want := "buildx build --build-arg BUILDKIT_INLINE_CACHE=1 --load ."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestBuildArgsStable(t *testing.T) {
	bx := NewBuildx(false)
	step := Step{
		Name: "runtime",
		BuildArgs: map[string]string{
			"C": "3", "A": "1", "B": "2", "D": "4",
		},
	}

	first := strings.Join(bx.buildArgs(step), " ")
	for i := 0; i < 10; i++ {
		if again := strings.Join(bx.buildArgs(step), " "); again != first {
			t.Fatalf("argument order not stable: %q vs %q", first, again)
		}
	}
}
