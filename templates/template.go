package templates

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mwolfe/gitwork/git"
)

// ErrModeNotConfigured is returned when a template directory exists but
// worktree.userTemplate.mode is not set.
var ErrModeNotConfigured = errors.New("worktree.userTemplate.mode is not set (link or copy)")

// ApplyUserTemplate links or copies files from a user template directory
// into the repository's working directory. Targets that already exist are
// left untouched.
//
// Template directory priority:
//  1. the templateDir argument, when non-empty
//  2. the worktree.userTemplate.path git config
//  3. ~/.config/git/user-template
//
// When a template directory exists, worktree.userTemplate.mode must be
// set to "link" or "copy". Individual files can override the mode via the
// multi-valued worktree.userTemplate.link and worktree.userTemplate.copy
// config keys.
func ApplyUserTemplate(g *git.Context, templateDir string) error {
	dir, err := findTemplateDir(g, templateDir)
	if err != nil || dir == "" {
		return err
	}

	mode := g.ConfigValue("worktree.userTemplate.mode")
	switch mode {
	case "link", "copy":
	case "":
		return fmt.Errorf("template directory %s exists but %w", dir, ErrModeNotConfigured)
	default:
		return fmt.Errorf("invalid worktree.userTemplate.mode %q: must be link or copy", mode)
	}

	linkFiles := toSet(g.ConfigValues("worktree.userTemplate.link"))
	copyFiles := toSet(g.ConfigValues("worktree.userTemplate.copy"))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		source := filepath.Join(dir, entry.Name())
		target := filepath.Join(g.RepoPath(), entry.Name())

		if _, err := os.Lstat(target); err == nil {
			continue
		}

		itemMode := mode
		if linkFiles[entry.Name()] {
			itemMode = "link"
		} else if copyFiles[entry.Name()] {
			itemMode = "copy"
		}

		if itemMode == "link" {
			err = os.Symlink(source, target)
		} else if entry.IsDir() {
			err = os.CopyFS(target, os.DirFS(source))
		} else {
			err = copyFile(source, target)
		}
		if err != nil {
			return fmt.Errorf("apply template item %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// findTemplateDir resolves the template directory to use, or "" when no
// template is configured or present.
func findTemplateDir(g *git.Context, explicit string) (string, error) {
	if explicit != "" {
		expanded, err := git.ExpandPath(explicit)
		if err != nil {
			return "", err
		}
		return dirIfExists(expanded), nil
	}

	if configured := g.ConfigValue("worktree.userTemplate.path"); configured != "" {
		expanded, err := git.ExpandPath(configured)
		if err != nil {
			return "", err
		}
		if dir := dirIfExists(expanded); dir != "" {
			return dir, nil
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", nil
	}
	return dirIfExists(filepath.Join(home, ".config", "git", "user-template")), nil
}

func dirIfExists(path string) string {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return path
	}
	return ""
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func toSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item] = true
	}
	return set
}
