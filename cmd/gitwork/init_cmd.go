package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork/git"
	"github.com/mwolfe/gitwork/templates"
)

func newInitCmd() *cobra.Command {
	var envrcTemplate string

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Set up a working copy",
		Long: `Set up a working copy (worktree or fresh clone):

  - initialize and update submodules recursively
  - create .envrc from the sample file if present
  - allow direnv on .envrc if direnv is installed
  - apply the user template directory if one is configured

The user template is controlled by the worktree.userTemplate.* git
config keys (path, mode, and per-file link/copy overrides).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := repoPath
			if len(args) > 0 {
				path = args[0]
			}

			runner := git.NewExecRunner()
			if verbose || settings.Bool("verbose") {
				runner.Echo = cmd.ErrOrStderr()
			}
			g, err := git.NewContext(path, git.WithRunner(runner))
			if err != nil {
				return err
			}

			sample := envrcTemplate
			if sample == "" {
				sample = settings.Get("envrc_template")
			}
			if err := templates.Initialize(g, sample); err != nil {
				return err
			}
			fmt.Printf("Initialized %s\n", g.RepoPath())
			return nil
		},
	}

	cmd.Flags().StringVar(&envrcTemplate, "envrc-template", "", "Sample file to link .envrc from")

	return cmd
}
