package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mwolfe/gitwork/git"
)

// Settings file locations and the environment variable prefix.
const (
	EnvPrefix       = "GITWORK_"
	GlobalConfigDir = "gitwork"
	GlobalFileName  = "config.yaml"
	LocalFileName   = ".gitwork.yaml"
)

// Defaults holds the built-in default for every known key.
var Defaults = map[string]string{
	"remote":         "origin",
	"ignore_file":    ".gitworkignore",
	"envrc_template": ".envrc.sample",
	"ticket_pattern": "",
	"repos_root":     "",
	"no_color":       "false",
	"verbose":        "false",
}

// Keys returns the known configuration keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(Defaults))
	for k := range Defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Resolver merges the configuration layers for one invocation.
type Resolver struct {
	globalPath string
	localPath  string
	gitRoot    string
	errWriter  io.Writer

	// Warnings collects non-fatal issues hit during resolution, such
	// as an unparseable config file.
	Warnings []string
}

// Option adjusts a Resolver.
type Option func(*Resolver)

// WithPaths overrides the global and local config file paths. Intended
// for tests.
func WithPaths(globalPath, localPath string) Option {
	return func(r *Resolver) {
		r.globalPath = globalPath
		r.localPath = localPath
	}
}

// WithErrWriter sets where warnings are printed. Defaults to os.Stderr.
func WithErrWriter(w io.Writer) Option {
	return func(r *Resolver) {
		r.errWriter = w
	}
}

// NewResolver locates the global and local config files for the current
// directory. The local file lives in the enclosing git root, if any.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{errWriter: os.Stderr}

	if home, err := os.UserHomeDir(); err == nil {
		r.globalPath = filepath.Join(home, ".config", GlobalConfigDir, GlobalFileName)
	}
	if root := git.FindRoot("."); root != "" {
		r.gitRoot = root
		r.localPath = filepath.Join(root, LocalFileName)
	}

	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GitRoot returns the detected git root directory, or "".
func (r *Resolver) GitRoot() string {
	return r.gitRoot
}

// GlobalPath returns the path of the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path of the local config file, or "" when not
// inside a git repository.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

func (r *Resolver) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
	if r.errWriter != nil {
		fmt.Fprintf(r.errWriter, "Warning: %s\n", msg)
	}
}

// Settings holds the merged configuration.
type Settings struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or "" if not set.
func (s *Settings) Get(key string) string {
	return s.values[key]
}

// Bool interprets a key's value as a boolean.
func (s *Settings) Bool(key string) bool {
	return s.values[key] == "true"
}

// Source returns the layer a key's value came from.
func (s *Settings) Source(key string) Source {
	return s.sources[key]
}

// GetWithSource returns a value together with its layer.
func (s *Settings) GetWithSource(key string) (string, Source) {
	return s.values[key], s.sources[key]
}

// Resolve merges defaults, global and local config files, and the
// environment into the final settings.
func (r *Resolver) Resolve() *Settings {
	s := &Settings{
		values:  make(map[string]string, len(Defaults)),
		sources: make(map[string]Source, len(Defaults)),
	}

	for key, value := range Defaults {
		s.values[key] = value
		s.sources[key] = SourceDefault
	}
	r.applyFile(s, r.globalPath, SourceGlobal)
	r.applyFile(s, r.localPath, SourceLocal)
	r.applyEnv(s)

	return s
}

// ResolveWithFlags resolves the settings and applies non-empty flag
// values on top.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Settings {
	s := r.Resolve()
	for key, value := range flags {
		if value != "" {
			s.values[key] = value
			s.sources[key] = SourceFlag
		}
	}
	return s
}

func (r *Resolver) applyFile(s *Settings, path string, source Source) {
	if path == "" {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		r.warn(fmt.Sprintf("could not parse %s: %v", path, err))
		return
	}

	for key, raw := range parsed {
		if _, known := Defaults[key]; !known {
			continue
		}
		if value := toString(raw); value != "" {
			s.values[key] = value
			s.sources[key] = source
		}
	}
}

func (r *Resolver) applyEnv(s *Settings) {
	for key := range Defaults {
		envKey := EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
		if value := os.Getenv(envKey); value != "" {
			s.values[key] = value
			s.sources[key] = SourceEnv
		}
	}

	// Honor the NO_COLOR convention independently of the prefix.
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		s.values["no_color"] = "true"
		s.sources["no_color"] = SourceEnv
	}
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
