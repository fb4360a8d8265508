// Package gitwork provides branch-workflow utilities built on the git
// command-line tool.
//
// The root package holds the branch description codec: a small structured
// text format that stores ticket IDs, remote branch names, and provenance
// metadata as trailer lines inside a branch's description.
//
// The module is organized into subpackages by concern:
//
//   - git: repository context, command execution, branches, config, commits
//   - ticket: ticket extraction from branches, descriptions, and commits
//   - workflow: workflow configuration and branch name format expansion
//   - templates: working-copy initialization, direnv, user templates
//   - repos: repository discovery and ignore-file filtering
//   - config: hierarchical tool configuration (global, local, env)
//   - testutil: real-git test fixtures
//
// # Quick Start
//
//	import (
//	    "github.com/mwolfe/gitwork"
//	    "github.com/mwolfe/gitwork/git"
//	)
//
//	g, _ := git.NewContext(".")
//	desc := gitwork.Parse(g.DescriptionText("my-branch"))
//	fmt.Println(desc.Tickets())
//
// See individual package documentation for detailed usage.
package gitwork
