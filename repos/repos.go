package repos

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// Find returns all git repositories under root: directories containing a
// .git directory (main repositories) or, when includeWorktrees is true, a
// .git file (linked worktrees). The walk does not descend into .git
// directories themselves.
func Find(root string, includeWorktrees bool) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Name() != ".git" || path == root {
			return nil
		}
		if d.IsDir() {
			found = append(found, filepath.Dir(path))
			return filepath.SkipDir
		}
		if includeWorktrees && d.Type().IsRegular() {
			found = append(found, filepath.Dir(path))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// FilterByIgnoreFile filters repository paths using gitignore-style
// ignore files named ignoreFilename (e.g. ".journalignore"). Ignore files
// are collected from root and each of its ancestors; patterns in deeper
// directories take precedence. Repository paths outside root are kept
// unfiltered. Patterns are matched against the path relative to root.
func FilterByIgnoreFile(repoPaths []string, root, ignoreFilename string) ([]string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var ignoreFiles []string
	for dir := absRoot; ; {
		candidate := filepath.Join(dir, ignoreFilename)
		if _, err := os.Stat(candidate); err == nil {
			ignoreFiles = append(ignoreFiles, candidate)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	// Read ancestors first so patterns closer to root override them.
	var patterns []string
	for i := len(ignoreFiles) - 1; i >= 0; i-- {
		content, err := os.ReadFile(ignoreFiles[i])
		if err != nil {
			return nil, err
		}
		patterns = append(patterns, strings.Split(string(content), "\n")...)
	}

	matcher := ignore.CompileIgnoreLines(patterns...)

	var kept []string
	for _, repo := range repoPaths {
		rel, err := filepath.Rel(absRoot, repo)
		if err != nil || strings.HasPrefix(rel, "..") {
			kept = append(kept, repo)
			continue
		}
		if !matcher.MatchesPath(rel) {
			kept = append(kept, repo)
		}
	}
	return kept, nil
}
