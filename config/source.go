package config

// Source indicates which layer supplied a configuration value.
type Source string

const (
	// SourceDefault indicates a built-in default.
	SourceDefault Source = "default"

	// SourceGlobal indicates ~/.config/gitwork/config.yaml.
	SourceGlobal Source = "global"

	// SourceLocal indicates .gitwork.yaml in the git root.
	SourceLocal Source = "local"

	// SourceEnv indicates a GITWORK_* environment variable.
	SourceEnv Source = "env"

	// SourceFlag indicates a command-line flag.
	SourceFlag Source = "flag"
)
