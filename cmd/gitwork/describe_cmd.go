package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork"
	"github.com/mwolfe/gitwork/git"
)

func newDescribeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Manage structured branch descriptions",
		Long: `Manage branch descriptions stored in git config.

Descriptions consist of a free-text summary followed by a block of
Key: value trailers (Ticket, Remote, Type, Author, Created-from).`,
		Example: `  gitwork describe show                          # Current branch
  gitwork describe show feature/SE-123           # Specific branch
  gitwork describe show --field Remote           # One trailer value
  gitwork describe set --summary "Add caching" --ticket SE-123
  gitwork describe clear feature/SE-123`,
	}

	cmd.AddCommand(newDescribeShowCmd())
	cmd.AddCommand(newDescribeSetCmd())
	cmd.AddCommand(newDescribeClearCmd())

	return cmd
}

// resolveBranch picks the branch from args or falls back to the current
// branch.
func resolveBranch(g *git.Context, args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	branch, err := g.CurrentBranch()
	if err != nil {
		return "", err
	}
	if branch == "" {
		return "", fmt.Errorf("no branch checked out; specify a branch name")
	}
	return branch, nil
}

func newDescribeShowCmd() *cobra.Command {
	var (
		raw   bool
		field string
	)

	cmd := &cobra.Command{
		Use:   "show [branch]",
		Short: "Show a branch description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}
			branch, err := resolveBranch(g, args)
			if err != nil {
				return err
			}

			text := g.DescriptionText(branch)
			if text == "" {
				return fmt.Errorf("no description for branch %s", branch)
			}
			if raw {
				fmt.Println(text)
				return nil
			}

			desc := gitwork.Parse(text)
			if field != "" {
				value := desc.Get(field)
				if value == "" {
					return fmt.Errorf("no %s trailer on branch %s", field, branch)
				}
				fmt.Println(value)
				return nil
			}

			noColor := settings.Bool("no_color")
			if desc.Summary != "" {
				fmt.Println(desc.Summary)
				if len(desc.Keys()) > 0 {
					fmt.Println()
				}
			}
			for _, key := range desc.Keys() {
				for _, value := range desc.GetAll(key) {
					fmt.Printf("%s: %s\n", colorize(noColor, accentStyle, key), value)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print the stored text without reformatting")
	cmd.Flags().StringVar(&field, "field", "", "Print a single trailer value (case-insensitive key)")

	return cmd
}

func newDescribeSetCmd() *cobra.Command {
	var (
		summary     string
		tickets     []string
		remote      string
		branchType  string
		author      string
		createdFrom string
	)

	cmd := &cobra.Command{
		Use:   "set [branch]",
		Short: "Set fields of a branch description",
		Long: `Set fields of a branch description.

Existing fields not named by a flag are kept. --ticket may repeat and
appends to the Ticket trailer; the other flags replace their field.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}
			branch, err := resolveBranch(g, args)
			if err != nil {
				return err
			}

			desc := gitwork.Parse(g.DescriptionText(branch))
			if cmd.Flags().Changed("summary") {
				desc.Summary = summary
			}
			for _, t := range tickets {
				desc.Add("Ticket", t)
			}
			if remote != "" {
				desc.Replace("Remote", remote)
			}
			if branchType != "" {
				desc.Replace("Type", branchType)
			}
			if author != "" {
				desc.Replace("Author", author)
			}
			if createdFrom != "" {
				desc.Replace("Created-from", createdFrom)
			}

			if err := g.SetDescription(branch, desc.Format()); err != nil {
				return err
			}
			fmt.Printf("Description updated on %s\n", branch)
			return nil
		},
	}

	cmd.Flags().StringVar(&summary, "summary", "", "Free-text summary")
	cmd.Flags().StringArrayVar(&tickets, "ticket", nil, "Ticket to add (repeatable)")
	cmd.Flags().StringVar(&remote, "remote", "", "Remote branch name")
	cmd.Flags().StringVar(&branchType, "type", "", "Branch type (feature, bugfix, ...)")
	cmd.Flags().StringVar(&author, "author", "", "Author")
	cmd.Flags().StringVar(&createdFrom, "created-from", "", "Ref the branch was created from")

	return cmd
}

func newDescribeClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [branch]",
		Short: "Remove a branch description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}
			branch, err := resolveBranch(g, args)
			if err != nil {
				return err
			}

			if err := g.UnsetDescription(branch); err != nil {
				return err
			}
			fmt.Printf("Description cleared on %s\n", branch)
			return nil
		},
	}
}
