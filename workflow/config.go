package workflow

import (
	"strings"

	"github.com/mwolfe/gitwork/git"
)

// Default branch-name formats and listing preferences.
const (
	DefaultLocalFormat  = "%(desc)"
	DefaultRemoteFormat = "%(type)/%(owner)/%(ticket)-%(desc)"
)

// Config reads workflow settings for one repository.
type Config struct {
	git *git.Context
}

// For returns the workflow configuration of a repository.
func For(g *git.Context) *Config {
	return &Config{git: g}
}

// Value returns a workflow config value. The key is given without the
// "workflow." prefix (e.g. "ticket.prefix"). Returns "" if unset.
func (c *Config) Value(key string) string {
	return c.git.ConfigValue("workflow." + key)
}

// ValueDefault returns a workflow config value, or def if unset.
func (c *Config) ValueDefault(key, def string) string {
	if v := c.Value(key); v != "" {
		return v
	}
	return def
}

// TicketPrefix returns the prefix prepended to bare ticket numbers,
// or "" if none is configured.
func (c *Config) TicketPrefix() string {
	return c.Value("ticket.prefix")
}

// TicketURLPattern returns the ticket URL template, or "" if none is
// configured. The template uses a %(ticket) placeholder.
func (c *Config) TicketURLPattern() string {
	return c.Value("ticket.urlPattern")
}

// LocalFormat returns the format string for local branch names.
func (c *Config) LocalFormat() string {
	return c.ValueDefault("branch.localFormat", DefaultLocalFormat)
}

// RemoteFormat returns the format string for remote branch names.
func (c *Config) RemoteFormat() string {
	return c.ValueDefault("branch.remoteFormat", DefaultRemoteFormat)
}

// PriorityBranches returns branch names to show first in listings.
func (c *Config) PriorityBranches() []string {
	if v := c.Value("branches.priority"); v != "" {
		return parseCSV(v)
	}
	return []string{"prod", "develop"}
}

// ExcludePatterns returns glob patterns to exclude from branch listings.
func (c *Config) ExcludePatterns() []string {
	if v := c.Value("branches.exclude"); v != "" {
		return parseCSV(v)
	}
	return []string{"*archive/*"}
}

// parseCSV splits a comma-separated config value, trimming whitespace and
// dropping empty items.
func parseCSV(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
