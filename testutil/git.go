// Package testutil provides real-git fixtures for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// SetupRepo creates a temporary git repository with one commit and returns
// its path. The repository is removed when the test ends.
func SetupRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()

	Git(t, dir, "init")
	Git(t, dir, "config", "user.email", "test@test.com")
	Git(t, dir, "config", "user.name", "Test User")

	readme := filepath.Join(dir, "README.md")
	if err := os.WriteFile(readme, []byte("# Test Repository\n"), 0o644); err != nil {
		t.Fatalf("write README: %v", err)
	}
	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-m", "Initial commit")

	return dir
}

// SetupRepoWithFiles creates a test repo containing the given files,
// committed.
func SetupRepoWithFiles(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := SetupRepo(t)
	for path, content := range files {
		WriteFile(t, dir, path, content)
	}
	Git(t, dir, "add", ".")
	Git(t, dir, "commit", "-m", "Add test files")

	return dir
}

// WriteFile writes a file under the repo, creating parent directories.
func WriteFile(t *testing.T, repoDir, path, content string) {
	t.Helper()

	fullPath := filepath.Join(repoDir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

// CreateBranch creates and checks out a new branch.
func CreateBranch(t *testing.T, repoDir, branch string) {
	t.Helper()
	Git(t, repoDir, "checkout", "-b", branch)
}

// SwitchBranch checks out an existing branch.
func SwitchBranch(t *testing.T, repoDir, branch string) {
	t.Helper()
	Git(t, repoDir, "checkout", branch)
}

// CommitFile creates or updates a file and commits it.
func CommitFile(t *testing.T, repoDir, path, content, message string) {
	t.Helper()

	WriteFile(t, repoDir, path, content)
	Git(t, repoDir, "add", path)
	Git(t, repoDir, "commit", "-m", message)
}

// SetConfig sets a git config value in the repo.
func SetConfig(t *testing.T, repoDir, key, value string) {
	t.Helper()
	Git(t, repoDir, "config", key, value)
}

// SetDescription stores a branch description in git config.
func SetDescription(t *testing.T, repoDir, branch, text string) {
	t.Helper()
	Git(t, repoDir, "config", "branch."+branch+".description", text)
}

// AddRemote creates a bare repository, registers it as a remote, and
// returns its path.
func AddRemote(t *testing.T, repoDir, name string) string {
	t.Helper()

	remoteDir := t.TempDir()
	Git(t, remoteDir, "init", "--bare")
	Git(t, repoDir, "remote", "add", name, remoteDir)

	return remoteDir
}

// PushUpstream pushes a branch to the remote with upstream tracking.
func PushUpstream(t *testing.T, repoDir, remote, branch string) {
	t.Helper()
	Git(t, repoDir, "push", "-u", remote, branch)
}

// CurrentBranch returns the checked-out branch name.
func CurrentBranch(t *testing.T, repoDir string) string {
	t.Helper()
	return Git(t, repoDir, "branch", "--show-current")
}

// Git runs a git command in the repo, failing the test on error.
// Returns trimmed stdout.
func Git(t *testing.T, repoDir string, args ...string) string {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = repoDir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return strings.TrimSpace(string(out))
}
