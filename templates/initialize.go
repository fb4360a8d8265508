package templates

import "github.com/mwolfe/gitwork/git"

// Initialize sets up a working copy (worktree or fresh clone):
//
//   - initializes and updates submodules recursively
//   - creates .envrc from .envrc.sample if present
//   - allows direnv on .envrc if direnv is installed
//   - applies the user template directory if one is configured
//
// envrcTemplate names the sample file to link .envrc from; "" selects
// DefaultEnvrcTemplate. Not meant for bare repositories.
func Initialize(g *git.Context, envrcTemplate string) error {
	if err := g.SubmoduleUpdate(); err != nil {
		return err
	}

	envrc, err := SymlinkEnvrc(g.RepoPath(), envrcTemplate)
	if err != nil {
		return err
	}
	if envrc != "" {
		if err := DirenvAllow(envrc); err != nil {
			return err
		}
	}

	return ApplyUserTemplate(g, "")
}
