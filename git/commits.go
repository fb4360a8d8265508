package git

import "strings"

// Commit is one entry from the commit log.
type Commit struct {
	SHA     string // Full commit hash
	Subject string // First line of the commit message
}

// CommitFilter narrows the commits returned by Commits.
type CommitFilter struct {
	// Since limits commits by time, in any format git log --since accepts
	// (e.g. "midnight", "24 hours ago", "2026-08-01 08:00").
	Since string

	// AuthorEmail limits commits to a single author.
	AuthorEmail string
}

// Commits returns commits from all refs matching the filter, newest first.
func (g *Context) Commits(filter CommitFilter) ([]Commit, error) {
	args := []string{"log", "--format=%H%x00%s", "--all"}
	if filter.Since != "" {
		args = append(args, "--since="+filter.Since)
	}
	if filter.AuthorEmail != "" {
		args = append(args, "--author="+filter.AuthorEmail)
	}

	out, err := g.run(args...)
	if err != nil {
		// A repository with no commits yet is not an error.
		if strings.Contains(err.Error(), "does not have any commits") {
			return nil, nil
		}
		return nil, &Error{Op: "log", Err: err}
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		if line == "" {
			continue
		}
		sha, subject, found := strings.Cut(line, "\x00")
		if !found {
			continue
		}
		commits = append(commits, Commit{SHA: sha, Subject: subject})
	}
	return commits, nil
}
