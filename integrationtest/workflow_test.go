package integrationtest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwolfe/gitwork"
	"github.com/mwolfe/gitwork/git"
	"github.com/mwolfe/gitwork/repos"
	"github.com/mwolfe/gitwork/templates"
	"github.com/mwolfe/gitwork/ticket"
	"github.com/mwolfe/gitwork/workflow"
)

// TestBranchDescriptionLifecycle walks a description through build,
// store, read back, and update.
func TestBranchDescriptionLifecycle(t *testing.T) {
	repoPath := setupTempRepo(t)
	g, err := git.NewContext(repoPath)
	require.NoError(t, err)

	runGit(t, repoPath, "checkout", "-b", "my-feature")

	desc := gitwork.Build(
		gitwork.WithSummary("Add caching for API responses."),
		gitwork.WithTickets("SE-123"),
		gitwork.WithRemote("feature/wolf/SE-123-add-caching"),
		gitwork.WithType("feature"),
	)
	require.NoError(t, g.SetDescription("my-feature", desc.Format()))

	parsed := gitwork.Parse(g.DescriptionText("my-feature"))
	assert.Equal(t, "Add caching for API responses.", parsed.Summary)
	assert.Equal(t, []string{"SE-123"}, parsed.Tickets())
	assert.Equal(t, "feature/wolf/SE-123-add-caching", parsed.Remote())
	assert.Equal(t, "feature", parsed.Get("type"))

	parsed.Add("Ticket", "SE-456")
	require.NoError(t, g.SetDescription("my-feature", parsed.Format()))

	again := gitwork.Parse(g.DescriptionText("my-feature"))
	assert.Equal(t, []string{"SE-123", "SE-456"}, again.Tickets())
}

// TestTicketDiscoveryAcrossSources verifies the extraction cascade over
// a real repository.
func TestTicketDiscoveryAcrossSources(t *testing.T) {
	repoPath := setupTempRepo(t)
	g, err := git.NewContext(repoPath)
	require.NoError(t, err)

	runGit(t, repoPath, "checkout", "-b", "feature/SE-100-in-name")
	assert.Equal(t, "SE-100", ticket.Extract(g, "feature/SE-100-in-name"))

	runGit(t, repoPath, "checkout", "-b", "described")
	require.NoError(t, g.SetDescription("described", "Work item\n\nTicket: SE-200"))
	assert.Equal(t, "SE-200", ticket.Extract(g, "described"))

	matches, err := ticket.FindBranches(g, "SE-200", ticket.FindOptions{IncludeLocal: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"described"}, matches)
}

// TestTicketURLFromWorkflowConfig covers prefix normalization plus URL
// pattern expansion from git config.
func TestTicketURLFromWorkflowConfig(t *testing.T) {
	repoPath := setupTempRepo(t)
	g, err := git.NewContext(repoPath)
	require.NoError(t, err)

	runGit(t, repoPath, "config", "workflow.ticket.prefix", "SE-")
	runGit(t, repoPath, "config", "workflow.ticket.urlPattern", "https://jira.example.com/browse/%(ticket)")

	cfg := workflow.For(g)
	assert.Equal(t, "https://jira.example.com/browse/SE-1234", ticket.URL(cfg, "1234"))
}

// TestInitializeWorkingCopy runs the full working-copy setup against a
// template directory.
func TestInitializeWorkingCopy(t *testing.T) {
	repoPath := setupTempRepo(t)
	g, err := git.NewContext(repoPath)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, ".envrc.sample"), []byte("export FOO=bar\n"), 0o644))

	tmpl := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpl, ".envrc.local"), []byte("export LOCAL=1\n"), 0o644))
	runGit(t, repoPath, "config", "worktree.userTemplate.path", tmpl)
	runGit(t, repoPath, "config", "worktree.userTemplate.mode", "copy")

	require.NoError(t, templates.Initialize(g, ""))

	link, err := os.Readlink(filepath.Join(repoPath, ".envrc"))
	require.NoError(t, err)
	assert.Equal(t, ".envrc.sample", link)

	content, err := os.ReadFile(filepath.Join(repoPath, ".envrc.local"))
	require.NoError(t, err)
	assert.Equal(t, "export LOCAL=1\n", string(content))
}

// TestRepoDiscoveryWithIgnoreFile covers discovery plus ignore-file
// filtering over real repositories.
func TestRepoDiscoveryWithIgnoreFile(t *testing.T) {
	root := t.TempDir()

	active := filepath.Join(root, "active")
	archived := filepath.Join(root, "archived-old")
	for _, dir := range []string{active, archived} {
		require.NoError(t, os.MkdirAll(dir, 0o755))
		runGit(t, dir, "init")
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitworkignore"), []byte("archived-*\n"), 0o644))

	found, err := repos.Find(root, true)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{active, archived}, found)

	kept, err := repos.FilterByIgnoreFile(found, root, ".gitworkignore")
	require.NoError(t, err)
	assert.Equal(t, []string{active}, kept)
}
