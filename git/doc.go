// Package git wraps the git command-line tool with repository-scoped
// helpers for branch-workflow automation.
//
// Core types:
//   - Context: a repository handle; every operation runs git inside it
//   - CommandRunner: interface for executing commands (with mock for testing)
//
// Operations cover branch listing and search, git config access, branch
// descriptions stored in config, upstream resolution, and commit queries.
//
// Example usage:
//
//	g, err := git.NewContext("/path/to/repo")
//	if err != nil {
//	    return err
//	}
//	branch, _ := g.CurrentBranch()
//	desc := g.DescriptionText(branch)
package git
