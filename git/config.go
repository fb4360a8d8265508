package git

import "strings"

// ConfigValue returns a git config value, or "" if the key is not set.
func (g *Context) ConfigValue(key string) string {
	out, err := g.run("config", key)
	if err != nil {
		return ""
	}
	return out
}

// ConfigValueDefault returns a git config value, or def if the key is
// not set.
func (g *Context) ConfigValueDefault(key, def string) string {
	if v := g.ConfigValue(key); v != "" {
		return v
	}
	return def
}

// ConfigValues returns all values for a multi-valued config key,
// in config order. Returns nil if the key is not set.
func (g *Context) ConfigValues(key string) []string {
	out, err := g.run("config", "--get-all", key)
	if err != nil || out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// SetConfig sets a git config value in the repository.
func (g *Context) SetConfig(key, value string) error {
	if _, err := g.run("config", key, value); err != nil {
		return &Error{Op: "set config " + key, Err: err}
	}
	return nil
}

// UnsetConfig removes a git config key. Removing an absent key is not an
// error.
func (g *Context) UnsetConfig(key string) error {
	out, err := g.run("config", "--unset", key)
	if err != nil && out != "" {
		return &Error{Op: "unset config " + key, Output: out, Err: err}
	}
	return nil
}
