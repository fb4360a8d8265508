// Package repos discovers git repositories under a directory tree and
// filters them with gitignore-style ignore files.
package repos
