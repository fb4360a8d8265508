package git

import (
	"regexp"
	"strings"
)

// Branch descriptions live in git config under branch.<name>.description,
// which for worktrees is shared through the common git directory.

var descriptionKeyRe = regexp.MustCompile(`^branch\.(.+)\.description\s`)

// DescriptionText returns the raw description text for a branch,
// or "" if none is set.
func (g *Context) DescriptionText(branch string) string {
	return g.ConfigValue("branch." + branch + ".description")
}

// SetDescription stores the raw description text for a branch.
func (g *Context) SetDescription(branch, text string) error {
	return g.SetConfig("branch."+branch+".description", text)
}

// UnsetDescription removes a branch's description.
func (g *Context) UnsetDescription(branch string) error {
	return g.UnsetConfig("branch." + branch + ".description")
}

// BranchesWithDescriptions returns the names of branches that have a
// description set.
func (g *Context) BranchesWithDescriptions() []string {
	out, err := g.run("config", "--get-regexp", `^branch\..*\.description$`)
	if err != nil || out == "" {
		return nil
	}

	// Output format: "branch.NAME.description VALUE". Continuation lines of
	// multi-line values do not match the key pattern and are skipped.
	var branches []string
	seen := make(map[string]bool)
	for _, line := range strings.Split(out, "\n") {
		if m := descriptionKeyRe.FindStringSubmatch(line); m != nil && !seen[m[1]] {
			seen[m[1]] = true
			branches = append(branches, m[1])
		}
	}
	return branches
}

// BranchCommitMessage returns the full commit message (subject and body) of
// the commit a branch points to, or "" if the branch does not exist.
func (g *Context) BranchCommitMessage(branch string) string {
	out, err := g.run("log", "-1", "--format=%B", branch)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
