package stage

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Cargo.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestReadManifest(t *testing.T) {
	path := writeManifest(t, `
[package]
name = "fmaas-router"
version = "0.9.4"
edition = "2021"

[dependencies]
tonic = "0.11"
`)

	m, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.BinaryName() != "fmaas-router" {
		t.Errorf("binary = %q, want fmaas-router", m.BinaryName())
	}
	if m.Package.Version != "0.9.4" {
		t.Errorf("version = %q, want 0.9.4", m.Package.Version)
	}
}

func TestReadManifestMissingName(t *testing.T) {
	path := writeManifest(t, "[package]\nversion = \"0.1.0\"\n")
	if _, err := ReadManifest(path); err == nil {
		t.Error("expected error for manifest without package name")
	}
}

func TestReadManifestMissingFile(t *testing.T) {
	if _, err := ReadManifest(filepath.Join(t.TempDir(), "Cargo.toml")); err == nil {
		t.Error("expected error for missing manifest")
	}
}

func TestReadManifestMalformed(t *testing.T) {
	path := writeManifest(t, "[package\nname =")
	if _, err := ReadManifest(path); err == nil {
		t.Error("expected error for malformed manifest")
	}
}
