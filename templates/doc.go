// Package templates applies per-developer setup files to working copies.
//
// It covers the common post-clone and post-worktree tasks: creating .envrc
// from a sample file, allowing direnv, and linking or copying files from a
// user template directory (configuration that should exist in every
// working copy but is gitignored, like .envrc.local).
package templates
