package templates

import (
	"os"
	"path/filepath"
)

// DefaultEnvrcTemplate is the sample file SymlinkEnvrc links .envrc from.
const DefaultEnvrcTemplate = ".envrc.sample"

// SymlinkEnvrc creates .envrc in the repository as a relative symlink to
// the template file, if the template exists and .envrc does not. The
// template is a filename inside the repository, not a full path; ""
// selects DefaultEnvrcTemplate.
//
// Returns the path to .envrc if it exists after the call (whether just
// created or pre-existing), or "" when there is nothing to link from.
func SymlinkEnvrc(repoDir, template string) (string, error) {
	if template == "" {
		template = DefaultEnvrcTemplate
	}
	envrc := filepath.Join(repoDir, ".envrc")

	if _, err := os.Lstat(envrc); err == nil {
		return envrc, nil
	}
	if _, err := os.Stat(filepath.Join(repoDir, template)); err != nil {
		return "", nil
	}

	// Relative target so the link survives the repo moving.
	if err := os.Symlink(template, envrc); err != nil {
		return "", err
	}
	return envrc, nil
}
