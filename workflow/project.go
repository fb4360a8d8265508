package workflow

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// Owner returns the owner name used in branch-name format placeholders:
// the local part of the configured user.email, or "unknown" if no email
// is configured.
func (c *Config) Owner() string {
	if email := c.git.UserEmail(); email != "" {
		return strings.SplitN(email, "@", 2)[0]
	}
	return "unknown"
}

// ProjectName returns the project name for the repository.
//
// Resolution cascade:
//  1. workflow.project.name config (explicit override)
//  2. leaf of the origin remote URL, without a .git suffix
//  3. name of the directory containing the main clone (via the common
//     git directory, so worktrees resolve to the main repo's name)
//
// Returns "" if none of the sources yields a name.
func (c *Config) ProjectName() string {
	if name := c.Value("project.name"); name != "" {
		return name
	}

	if u, err := c.git.RemoteURL("origin"); err == nil && u != "" {
		if name := repoNameFromURL(u); name != "" {
			return name
		}
	}

	if commonDir, err := c.git.CommonDir(); err == nil && commonDir != "" {
		return filepath.Base(filepath.Dir(commonDir))
	}

	return ""
}

// repoNameFromURL extracts the repository name from a git remote URL.
// Handles https URLs, scp-style ssh URLs (git@host:path), and local paths.
func repoNameFromURL(raw string) string {
	raw = strings.TrimRight(strings.TrimSpace(raw), "/")

	// scp-style ssh URLs have no scheme; keep only the path after ":".
	if strings.Contains(raw, "@") && !strings.Contains(raw, "://") {
		if _, after, found := strings.Cut(raw, ":"); found {
			raw = after
		}
	}

	p := raw
	if parsed, err := url.Parse(raw); err == nil && parsed.Scheme != "" {
		p = parsed.Path
	}

	name := path.Base(p)
	name = strings.TrimSuffix(name, ".git")
	if name == "." || name == "/" {
		return ""
	}
	return name
}
