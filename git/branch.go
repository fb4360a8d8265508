package git

import (
	"errors"
	"strings"
)

var errEmptyPattern = errors.New("empty branch pattern")

// FindBranches finds all branches, local and remote, matching a pattern.
//
// For simple names without wildcards it searches for both the local branch
// and remoteName/branch. Patterns containing git wildcards are passed
// through unchanged. All matches are returned with their ref prefixes
// removed, deduplicated in order of discovery.
func (g *Context) FindBranches(pattern, remoteName string) ([]string, error) {
	if pattern == "" {
		return nil, &Error{Op: "find branches", Err: errEmptyPattern}
	}
	if remoteName == "" {
		remoteName = "origin"
	}

	patterns := []string{pattern}
	if !strings.ContainsAny(pattern, "*?[") {
		// Exact name: search local and remote.
		patterns = []string{pattern, remoteName + "/" + pattern}
	}

	var matches []string
	seen := make(map[string]bool)
	for _, p := range patterns {
		out, err := g.run("branch", "--format=%(refname)", "--all", "--list", p)
		if err != nil {
			return nil, &Error{Op: "find branches", Err: err}
		}
		for _, line := range strings.Split(out, "\n") {
			ref := strings.TrimSpace(line)
			if ref == "" {
				continue
			}
			ref = strings.TrimPrefix(ref, "refs/heads/")
			ref = strings.TrimPrefix(ref, "refs/remotes/")
			if !seen[ref] {
				seen[ref] = true
				matches = append(matches, ref)
			}
		}
	}

	return matches, nil
}

// LocalBranches returns all local branch names.
func (g *Context) LocalBranches() ([]string, error) {
	out, err := g.run("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, &Error{Op: "list local branches", Err: err}
	}
	return splitLines(out), nil
}

// RemoteBranches returns all remote-tracking branch names in
// "remote/branch" form, excluding symbolic HEAD refs.
func (g *Context) RemoteBranches() ([]string, error) {
	out, err := g.run("for-each-ref", "--format=%(refname:short)", "refs/remotes")
	if err != nil {
		return nil, &Error{Op: "list remote branches", Err: err}
	}

	var branches []string
	for _, b := range splitLines(out) {
		if strings.HasSuffix(b, "/HEAD") {
			continue
		}
		branches = append(branches, b)
	}
	return branches, nil
}

// BranchUpstream returns the upstream tracking branch for a local branch in
// "remote/branch" form, or "" if no upstream is configured.
func (g *Context) BranchUpstream(branch string) string {
	remote := g.ConfigValue("branch." + branch + ".remote")
	if remote == "" {
		return ""
	}
	mergeRef := g.ConfigValue("branch." + branch + ".merge")
	if mergeRef == "" {
		return ""
	}
	return remote + "/" + strings.TrimPrefix(mergeRef, "refs/heads/")
}

func splitLines(out string) []string {
	if out == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			lines = append(lines, trimmed)
		}
	}
	return lines
}
