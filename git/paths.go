package git

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath resolves a path to an absolute one. An empty path yields the
// current directory; a leading "~" expands to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "" {
		return os.Getwd()
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}

	return filepath.Abs(path)
}

// IsRepoPath reports whether path is an absolute path to a directory
// containing a .git entry.
func IsRepoPath(path string) bool {
	if !filepath.IsAbs(path) {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return false
	}
	_, err = os.Stat(filepath.Join(path, ".git"))
	return err == nil
}

// FindRoot walks up from startDir looking for a directory containing a
// .git entry. Returns "" if none is found.
func FindRoot(startDir string) string {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
