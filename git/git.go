package git

import (
	"fmt"
	"path/filepath"
)

// Context manages git operations for a repository.
type Context struct {
	repoPath string        // Absolute path to the working copy
	runner   CommandRunner // Command runner (defaults to ExecRunner)
}

// Option configures Context.
type Option func(*Context)

// WithRunner sets a custom command runner for git operations.
// This is primarily used for testing to inject mock command execution.
func WithRunner(runner CommandRunner) Option {
	return func(g *Context) {
		g.runner = runner
	}
}

// NewContext creates a git context for the repository at repoPath.
// An empty path means the current directory. The path may start with "~".
// It validates that the path is a git repository.
func NewContext(repoPath string, opts ...Option) (*Context, error) {
	absPath, err := ExpandPath(repoPath)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}

	g := &Context{
		repoPath: absPath,
		runner:   NewExecRunner(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if _, err := g.run("rev-parse", "--git-dir"); err != nil {
		return nil, ErrNotGitRepo
	}

	return g, nil
}

// RepoPath returns the absolute path to the repository.
func (g *Context) RepoPath() string {
	return g.repoPath
}

// run executes a git command in the repository and returns stdout.
func (g *Context) run(args ...string) (string, error) {
	return g.runner.Run(g.repoPath, "git", args...)
}

// CurrentBranch returns the currently checked out branch name.
// Returns "" on a detached HEAD.
func (g *Context) CurrentBranch() (string, error) {
	branch, err := g.run("branch", "--show-current")
	if err != nil {
		return "", &Error{Op: "get current branch", Err: err}
	}
	return branch, nil
}

// HasUncommittedChanges reports whether the working tree has uncommitted
// changes, including untracked files.
func (g *Context) HasUncommittedChanges() (bool, error) {
	status, err := g.run("status", "--porcelain")
	if err != nil {
		return false, &Error{Op: "status", Err: err}
	}
	return status != "", nil
}

// FetchAll fetches all remotes, prunes deleted refs, and updates tags.
func (g *Context) FetchAll() error {
	if _, err := g.run("fetch", "--prune", "--all", "--tags", "--recurse-submodules"); err != nil {
		return &Error{Op: "fetch all", Err: err}
	}
	return nil
}

// SubmoduleUpdate initializes and updates submodules recursively.
func (g *Context) SubmoduleUpdate() error {
	if _, err := g.run("submodule", "update", "--init", "--recursive"); err != nil {
		return &Error{Op: "submodule update", Err: err}
	}
	return nil
}

// RemoteURL returns the URL of the named remote.
func (g *Context) RemoteURL(remote string) (string, error) {
	url, err := g.run("remote", "get-url", remote)
	if err != nil {
		return "", &Error{Op: "get remote URL", Err: err}
	}
	return url, nil
}

// UserEmail returns the configured user.email for this working copy,
// or "" if not configured.
func (g *Context) UserEmail() string {
	return g.ConfigValue("user.email")
}

// CommonDir returns the common .git directory for the repository.
// For worktrees this is the main repository's .git directory, where shared
// data such as branch configuration lives.
func (g *Context) CommonDir() (string, error) {
	out, err := g.run("rev-parse", "--git-common-dir")
	if err != nil {
		return "", &Error{Op: "get common dir", Err: err}
	}

	// The output may be relative to the repo, not cwd.
	if !filepath.IsAbs(out) {
		out = filepath.Join(g.repoPath, out)
	}
	return filepath.Clean(out), nil
}
