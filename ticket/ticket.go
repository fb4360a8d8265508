package ticket

import (
	"regexp"
	"strings"

	"github.com/mwolfe/gitwork"
	"github.com/mwolfe/gitwork/git"
	"github.com/mwolfe/gitwork/workflow"
)

// defaultPattern matches common ticket formats:
//   - PROJ-123 (Jira-style)
//   - #123 (GitHub-style)
var defaultPattern = regexp.MustCompile(`(?i)([A-Za-z]+-\d+|#\d+)`)

// Normalize expands a bare ticket number to its full form.
//
// If the input is all digits, the configured workflow.ticket.prefix is
// prepended. Inputs that already contain non-digit characters are returned
// unchanged, as is a bare number when no prefix is configured.
func Normalize(cfg *workflow.Config, ticket string) string {
	if ticket != "" && isDigits(ticket) {
		return cfg.TicketPrefix() + ticket
	}
	return ticket
}

// URL builds the URL for a ticket from the workflow.ticket.urlPattern
// config, which uses a %(ticket) placeholder. Bare ticket numbers are
// normalized first. Returns "" if no pattern is configured.
func URL(cfg *workflow.Config, ticket string) string {
	pattern := cfg.TicketURLPattern()
	if pattern == "" {
		return ""
	}
	return workflow.ExpandFormat(pattern, map[string]string{
		"ticket": Normalize(cfg, ticket),
	})
}

// Extract finds a ticket associated with a branch using the default
// pattern. If branch is "", the current branch is used. Returns "" when
// no ticket is found.
func Extract(g *git.Context, branch string) string {
	found, _ := ExtractPattern(g, branch, "")
	return found
}

// ExtractPattern finds a ticket associated with a branch.
//
// Searches, in order of precedence:
//  1. the branch name
//  2. the branch description (a Ticket trailer wins over prose matches)
//  3. the upstream tracking branch name
//  4. the message of the commit the branch points to
//
// If branch is "", the current branch is used. A non-empty pattern
// overrides the default ticket regexp; it is applied case-insensitively
// and should contain a single capture group for the full ticket. The
// result is uppercased. Returns "" when no ticket is found.
func ExtractPattern(g *git.Context, branch, pattern string) (string, error) {
	re := defaultPattern
	if pattern != "" {
		compiled, err := regexp.Compile("(?i:" + pattern + ")")
		if err != nil {
			return "", err
		}
		re = compiled
	}

	if branch == "" {
		current, err := g.CurrentBranch()
		if err != nil {
			return "", err
		}
		if current == "" {
			return "", nil
		}
		branch = current
	}

	if found := firstMatch(re, branch); found != "" {
		return found, nil
	}

	if desc := g.DescriptionText(branch); desc != "" {
		// A structured Ticket trailer is authoritative for the branch;
		// prose in the summary may mention unrelated tickets.
		for _, t := range gitwork.Parse(desc).Tickets() {
			if found := firstMatch(re, t); found != "" {
				return found, nil
			}
		}
		if found := firstMatch(re, desc); found != "" {
			return found, nil
		}
	}

	if upstream := g.BranchUpstream(branch); upstream != "" {
		if found := firstMatch(re, upstream); found != "" {
			return found, nil
		}
	}

	if msg := g.BranchCommitMessage(branch); msg != "" {
		if found := firstMatch(re, msg); found != "" {
			return found, nil
		}
	}

	return "", nil
}

// MatchesBranch reports whether a branch is associated with a ticket.
//
// The branch name is searched for a case-insensitive substring match.
// When checkDetails is true, the branch description, upstream tracking
// branch name, and commit message are searched as well. Set checkDetails
// to false for remote branches, where only the name is meaningful.
//
// This is the complement of Extract: Extract discovers an unknown ticket
// from a branch; MatchesBranch checks a branch against a known ticket.
func MatchesBranch(g *git.Context, branch, ticket string, checkDetails bool) bool {
	want := strings.ToUpper(ticket)

	if strings.Contains(strings.ToUpper(branch), want) {
		return true
	}
	if !checkDetails {
		return false
	}

	if desc := g.DescriptionText(branch); desc != "" && strings.Contains(strings.ToUpper(desc), want) {
		return true
	}
	if upstream := g.BranchUpstream(branch); upstream != "" && strings.Contains(strings.ToUpper(upstream), want) {
		return true
	}
	if msg := g.BranchCommitMessage(branch); msg != "" && strings.Contains(strings.ToUpper(msg), want) {
		return true
	}
	return false
}

// FindOptions controls FindBranches.
type FindOptions struct {
	// IncludeLocal searches local branches by name, description,
	// upstream, and commit message.
	IncludeLocal bool
	// IncludeRemote searches remote branches by name only.
	IncludeRemote bool
	// Deduplicate removes remote branches that are upstreams of
	// matching local branches, since they represent the same branch.
	Deduplicate bool
}

// FindBranches returns all branches matching a ticket, local branches
// first.
func FindBranches(g *git.Context, ticket string, opts FindOptions) ([]string, error) {
	var localMatches []string
	if opts.IncludeLocal {
		locals, err := g.LocalBranches()
		if err != nil {
			return nil, err
		}
		for _, b := range locals {
			if MatchesBranch(g, b, ticket, true) {
				localMatches = append(localMatches, b)
			}
		}
	}

	var remoteMatches []string
	if opts.IncludeRemote {
		remotes, err := g.RemoteBranches()
		if err != nil {
			return nil, err
		}
		for _, b := range remotes {
			if MatchesBranch(g, b, ticket, false) {
				remoteMatches = append(remoteMatches, b)
			}
		}
	}

	if opts.Deduplicate && len(localMatches) > 0 && len(remoteMatches) > 0 {
		upstreams := make(map[string]bool, len(localMatches))
		for _, b := range localMatches {
			if u := g.BranchUpstream(b); u != "" {
				upstreams[u] = true
			}
		}
		kept := remoteMatches[:0]
		for _, r := range remoteMatches {
			if !upstreams[r] {
				kept = append(kept, r)
			}
		}
		remoteMatches = kept
	}

	return append(localMatches, remoteMatches...), nil
}

// firstMatch returns the uppercased capture of the first pattern match in
// text, or "". Group 1 is used when the pattern has a capture group.
func firstMatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	found := m[0]
	if len(m) > 1 && m[1] != "" {
		found = m[1]
	}
	return strings.ToUpper(found)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
