package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gitwork settings",
		Long: `Manage gitwork's own settings.

Settings are resolved from built-in defaults, the global config file
(~/.config/gitwork/config.yaml), the local config file (.gitwork.yaml in
the git root), GITWORK_* environment variables, and flags, in that order
of increasing precedence.`,
		Example: `  gitwork config list
  gitwork config get remote
  gitwork config set remote upstream            # Global
  gitwork config set ignore_file .teamignore --local
  gitwork config unset remote`,
		// Settings management only reads and writes config files, so it
		// works even when the git binary is missing.
		Annotations: map[string]string{skipGitCheckAnnotation: "true"},
	}

	cmd.AddCommand(newConfigListCmd())
	cmd.AddCommand(newConfigGetCmd())
	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigUnsetCmd())

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all settings with their sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			noColor := settings.Bool("no_color")
			for _, key := range config.Keys() {
				value, source := settings.GetWithSource(key)
				origin := fmt.Sprintf("%-10s", "("+source+")")
				fmt.Printf("%-16s %s %s\n", key, colorize(noColor, mutedStyle, origin), value)
			}
			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	var showSource bool

	cmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Print one setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, source := settings.GetWithSource(args[0])
			if source == "" {
				return fmt.Errorf("unknown config key: %s", args[0])
			}
			if showSource {
				fmt.Printf("%s (%s)\n", value, source)
				return nil
			}
			fmt.Println(value)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showSource, "source", false, "Also print where the value came from")

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Write a setting to the global or local config file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if local {
				if err := config.SaveLocal(resolver.GitRoot(), key, value); err != nil {
					return err
				}
				fmt.Printf("Set %s in %s\n", key, resolver.LocalPath())
				return nil
			}
			if err := config.SaveGlobal(key, value); err != nil {
				return err
			}
			fmt.Printf("Set %s in %s\n", key, resolver.GlobalPath())
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Write to .gitwork.yaml in the git root instead of the global file")

	return cmd
}

func newConfigUnsetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unset <key>",
		Short: "Remove a setting from the global config file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.DeleteGlobal(args[0]); err != nil {
				return err
			}
			fmt.Printf("Unset %s\n", args[0])
			return nil
		},
	}
}
