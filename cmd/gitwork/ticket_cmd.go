package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwolfe/gitwork/ticket"
	"github.com/mwolfe/gitwork/workflow"
)

func newTicketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ticket",
		Short: "Work with ticket identifiers",
		Long: `Work with ticket identifiers (SE-123, #42, ...).

Tickets are discovered from branch names, branch descriptions, upstream
branch names, and commit messages. The workflow.ticket.prefix and
workflow.ticket.urlPattern git config keys control normalization and
URL generation.`,
		Example: `  gitwork ticket show                  # Ticket for the current branch
  gitwork ticket show feature/SE-123   # Ticket for a branch
  gitwork ticket show --url            # Print the ticket URL instead
  gitwork ticket url 1234              # URL for a (bare) ticket
  gitwork ticket branches SE-123       # Local branches for a ticket
  gitwork ticket branches SE-123 --remote --dedupe`,
	}

	cmd.AddCommand(newTicketShowCmd())
	cmd.AddCommand(newTicketURLCmd())
	cmd.AddCommand(newTicketBranchesCmd())

	return cmd
}

func newTicketShowCmd() *cobra.Command {
	var asURL bool

	cmd := &cobra.Command{
		Use:   "show [branch]",
		Short: "Show the ticket associated with a branch",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}
			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}

			found, err := ticket.ExtractPattern(g, branch, settings.Get("ticket_pattern"))
			if err != nil {
				return err
			}
			if found == "" {
				return fmt.Errorf("no ticket found")
			}

			if asURL {
				url := ticket.URL(workflow.For(g), found)
				if url == "" {
					return fmt.Errorf("workflow.ticket.urlPattern is not configured")
				}
				fmt.Println(url)
				return nil
			}
			fmt.Println(found)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asURL, "url", false, "Print the ticket URL instead of the identifier")

	return cmd
}

func newTicketURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url <ticket>",
		Short: "Print the URL for a ticket",
		Long: `Print the URL for a ticket.

Bare ticket numbers are expanded with workflow.ticket.prefix before the
URL is built from workflow.ticket.urlPattern.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}

			url := ticket.URL(workflow.For(g), args[0])
			if url == "" {
				return fmt.Errorf("workflow.ticket.urlPattern is not configured")
			}
			fmt.Println(url)
			return nil
		},
	}
}

func newTicketBranchesCmd() *cobra.Command {
	var (
		includeRemote bool
		dedupe        bool
	)

	cmd := &cobra.Command{
		Use:   "branches <ticket>",
		Short: "List branches associated with a ticket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := openRepo()
			if err != nil {
				return err
			}

			matches, err := ticket.FindBranches(g, args[0], ticket.FindOptions{
				IncludeLocal:  true,
				IncludeRemote: includeRemote,
				Deduplicate:   dedupe,
			})
			if err != nil {
				return err
			}
			if len(matches) == 0 {
				return fmt.Errorf("no branches match %s", args[0])
			}
			for _, b := range matches {
				fmt.Println(b)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&includeRemote, "remote", false, "Also search remote branches (by name)")
	cmd.Flags().BoolVar(&dedupe, "dedupe", false, "Hide remote branches tracked by a matching local branch")

	return cmd
}
