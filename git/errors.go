package git

import "errors"

// Git operation errors.
var (
	// ErrNotGitRepo indicates the path is not a git repository.
	ErrNotGitRepo = errors.New("not a git repository")

	// ErrGitNotFound indicates the git binary is not installed.
	ErrGitNotFound = errors.New("git not found in PATH")
)

// Error wraps a git command error with context.
type Error struct {
	Op     string // Operation that failed (e.g., "fetch", "find branches")
	Output string // Combined stdout/stderr output
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Output != "" {
		return e.Op + ": " + e.Output
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}
