package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// Cleanup is handled by t.TempDir.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Resolve symlinks so paths compare equal to what git reports (macOS /var -> /private/var)
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Chdir switches the process working directory into the scene for the
// duration of the test. Tests using it must not run in parallel.
func (s *Scene) Chdir(t *testing.T) {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}
	if err := os.Chdir(s.Dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})
}

// BasicSceneSetup is a setup function that creates a scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CommitFile("README.md", "# test\n", "initial commit")
}
