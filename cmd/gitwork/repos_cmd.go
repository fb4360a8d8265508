package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork/repos"
)

func newReposCmd() *cobra.Command {
	var (
		ignoreFile  string
		noWorktrees bool
		noFilter    bool
	)

	cmd := &cobra.Command{
		Use:   "repos [root]",
		Short: "List git repositories under a directory",
		Long: `List git repositories under a directory tree.

Linked worktrees (directories whose .git is a file) are included by
default. Repositories matching patterns in gitignore-style ignore files
(in the root or any of its ancestors) are filtered out.`,
		Example: `  gitwork repos ~/develop
  gitwork repos ~/develop --no-worktrees
  gitwork repos ~/develop --ignore-file .journalignore`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := settings.Get("repos_root")
			if len(args) > 0 {
				root = args[0]
			}
			if root == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				root = cwd
			}

			found, err := repos.Find(root, !noWorktrees)
			if err != nil {
				return err
			}

			if !noFilter {
				name := ignoreFile
				if name == "" {
					name = settings.Get("ignore_file")
				}
				found, err = repos.FilterByIgnoreFile(found, root, name)
				if err != nil {
					return err
				}
			}

			for _, repo := range found {
				fmt.Println(repo)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "Ignore file name (default from config)")
	cmd.Flags().BoolVar(&noWorktrees, "no-worktrees", false, "Exclude linked worktrees")
	cmd.Flags().BoolVar(&noFilter, "no-filter", false, "Skip ignore-file filtering")

	return cmd
}
