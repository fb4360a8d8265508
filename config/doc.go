// Package config resolves tool-level settings for the gitwork CLI.
//
// Settings are layered with clear precedence, lowest to highest:
//  1. built-in defaults
//  2. global config (~/.config/gitwork/config.yaml)
//  3. local config (.gitwork.yaml in the git root)
//  4. environment variables (GITWORK_*)
//  5. command-line flags
//
// Each resolved value tracks which layer supplied it, so commands can
// report where a setting came from.
//
// This is distinct from the workflow package: workflow settings live in
// git config under the workflow.* namespace and describe the branch
// conventions of a repository; this package covers the behavior of the
// tool itself (colors, verbosity, scan roots).
package config
