package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork/config"
	"github.com/mwolfe/gitwork/git"
)

var (
	// Global flags
	verbose  bool
	repoPath string

	// Shared state injected into commands
	resolver *config.Resolver
	settings *config.Settings
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitwork",
	Short: "Branch-workflow helpers for git repositories",
	Long: `gitwork wraps the git command line with branch-workflow helpers:
structured branch descriptions, ticket extraction, repository discovery,
and per-developer working-copy setup.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		flags := map[string]string{}
		if verbose {
			flags["verbose"] = "true"
		}
		settings = resolver.ResolveWithFlags(flags)

		if needsGit(cmd) {
			return git.CheckGit()
		}
		return nil
	},
	// Run is not set - shows help when no subcommand provided
}

// skipGitCheckAnnotation marks command trees that never run git, so
// they work on machines without a git binary.
const skipGitCheckAnnotation = "gitwork:skip-git-check"

// needsGit reports whether cmd (or any of its ancestors) requires the
// git binary to be installed.
func needsGit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[skipGitCheckAnnotation] == "true" {
			return false
		}
	}
	return true
}

// Execute adds all child commands to the root command and runs it.
func Execute() {
	resolver = config.NewResolver()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// openRepo opens the repository selected by --repo (or the current
// directory), echoing git commands to stderr when verbose is on.
func openRepo() (*git.Context, error) {
	runner := git.NewExecRunner()
	if verbose || settings.Bool("verbose") {
		runner.Echo = os.Stderr
	}
	return git.NewContext(repoPath, git.WithRunner(runner))
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show git commands being executed")
	rootCmd.PersistentFlags().StringVarP(&repoPath, "repo", "C", "", "Repository path (defaults to current directory)")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newDescribeCmd())
	rootCmd.AddCommand(newBranchesCmd())
	rootCmd.AddCommand(newTicketCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newReposCmd())
	rootCmd.AddCommand(newConfigCmd())
}
