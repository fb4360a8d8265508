package git

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// CommandRunner executes external commands. The default implementation
// shells out; tests inject a mock.
type CommandRunner interface {
	Run(dir, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec, capturing output.
type ExecRunner struct {
	// Echo, when set, receives each command line before execution.
	// The CLI uses it for verbose mode.
	Echo io.Writer
}

// NewExecRunner returns the default command runner.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command in dir and returns trimmed stdout.
// On failure it returns the trimmed stderr (or stdout) as both the output
// and the error message.
func (r *ExecRunner) Run(dir, name string, args ...string) (string, error) {
	if r.Echo != nil {
		fmt.Fprintf(r.Echo, "$ %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = strings.TrimSpace(stdout.String())
		}
		if msg == "" {
			return "", err
		}
		return msg, errors.New(msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// MockRunner is a CommandRunner for tests. It matches commands by their
// space-joined argument list and records every call.
type MockRunner struct {
	// Responses maps "arg1 arg2 ..." to stdout.
	Responses map[string]string

	// Errors maps "arg1 arg2 ..." to an error.
	Errors map[string]error

	// Calls records the argument lists of all executed commands.
	Calls [][]string
}

// Run returns the canned response for the command.
// Commands with no configured response succeed with empty output.
func (m *MockRunner) Run(dir, name string, args ...string) (string, error) {
	m.Calls = append(m.Calls, append([]string{name}, args...))

	key := strings.Join(args, " ")
	if err, ok := m.Errors[key]; ok {
		return "", err
	}
	return m.Responses[key], nil
}

// CheckGit verifies the git binary is available.
func CheckGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return ErrGitNotFound
	}
	return nil
}
