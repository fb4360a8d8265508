package templates

import (
	"os"
	"os/exec"
	"path/filepath"
)

// IsDirenvAvailable reports whether the direnv command is in PATH.
func IsDirenvAvailable() bool {
	_, err := exec.LookPath("direnv")
	return err == nil
}

// DirenvAllow marks an .envrc file as allowed for direnv. It is a no-op
// when direnv is not installed, when the file does not exist, or when the
// path does not name an .envrc file.
func DirenvAllow(envrc string) error {
	if filepath.Base(envrc) != ".envrc" || !IsDirenvAvailable() {
		return nil
	}
	if info, err := os.Stat(envrc); err != nil || info.IsDir() {
		return nil
	}

	cmd := exec.Command("direnv", "allow", envrc)
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
