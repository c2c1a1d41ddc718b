// Package testutil holds helpers shared by repository-level tests.
package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// ErrNoModuleRoot is returned when no go.mod is found above the working directory.
var ErrNoModuleRoot = errors.New("go.mod not found")

// RepoRoot walks up from the working directory to the nearest go.mod.
// Tests run with the package directory as working directory.
func RepoRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrNoModuleRoot
		}
		dir = parent
	}
}

// MustRepoRoot returns the repo root or fails the test.
func MustRepoRoot(t testing.TB) string {
	t.Helper()
	root, err := RepoRoot()
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}
	return root
}
