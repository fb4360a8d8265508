package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBranchesCmd() *cobra.Command {
	var remoteName string

	cmd := &cobra.Command{
		Use:   "branches <pattern>",
		Short: "Find branches by name or wildcard pattern",
		Long: `Find branches by name or wildcard pattern.

An exact name is searched both locally and on the configured remote;
patterns with git wildcards (* ? [) are passed through unchanged. The
remote searched for exact names comes from the remote setting unless
--remote overrides it.`,
		Example: `  gitwork branches feature/SE-123-stuff
  gitwork branches "feature/*"
  gitwork branches release --remote upstream`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}

			remote := remoteName
			if remote == "" {
				remote = settings.Get("remote")
			}

			matches, err := g.FindBranches(args[0], remote)
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return fmt.Errorf("no branches match %s", args[0])
			}
			for _, b := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), b)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&remoteName, "remote", "", "Remote to search for exact names (default from config)")

	return cmd
}
