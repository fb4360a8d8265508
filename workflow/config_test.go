package workflow_test

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mwolfe/gitwork/git"
	"github.com/mwolfe/gitwork/testutil"
	"github.com/mwolfe/gitwork/workflow"
)

func setup(t *testing.T) (string, *workflow.Config) {
	t.Helper()

	dir := testutil.SetupRepo(t)
	g, err := git.NewContext(dir)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	return dir, workflow.For(g)
}

func TestConfigValue(t *testing.T) {
	dir, cfg := setup(t)

	if got := cfg.Value("ticket.prefix"); got != "" {
		t.Errorf("Value = %q, want empty", got)
	}
	if got := cfg.ValueDefault("ticket.prefix", "DEFAULT"); got != "DEFAULT" {
		t.Errorf("ValueDefault = %q, want DEFAULT", got)
	}

	testutil.SetConfig(t, dir, "workflow.ticket.prefix", "SE-")

	if got := cfg.Value("ticket.prefix"); got != "SE-" {
		t.Errorf("Value = %q, want SE-", got)
	}
	if got := cfg.ValueDefault("ticket.prefix", "DEFAULT"); got != "SE-" {
		t.Errorf("ValueDefault = %q, want SE-", got)
	}
}

func TestBranchFormats(t *testing.T) {
	dir, cfg := setup(t)

	if got := cfg.LocalFormat(); got != "%(desc)" {
		t.Errorf("LocalFormat = %q", got)
	}
	if got := cfg.RemoteFormat(); got != "%(type)/%(owner)/%(ticket)-%(desc)" {
		t.Errorf("RemoteFormat = %q", got)
	}

	testutil.SetConfig(t, dir, "workflow.branch.localFormat", "%(ticket)-%(desc)")
	testutil.SetConfig(t, dir, "workflow.branch.remoteFormat", "%(owner)/%(ticket)")

	if got := cfg.LocalFormat(); got != "%(ticket)-%(desc)" {
		t.Errorf("LocalFormat = %q", got)
	}
	if got := cfg.RemoteFormat(); got != "%(owner)/%(ticket)" {
		t.Errorf("RemoteFormat = %q", got)
	}
}

func TestBranchListingConfig(t *testing.T) {
	dir, cfg := setup(t)

	if got := cfg.PriorityBranches(); !reflect.DeepEqual(got, []string{"prod", "develop"}) {
		t.Errorf("PriorityBranches = %v", got)
	}
	if got := cfg.ExcludePatterns(); !reflect.DeepEqual(got, []string{"*archive/*"}) {
		t.Errorf("ExcludePatterns = %v", got)
	}

	testutil.SetConfig(t, dir, "workflow.branches.priority", "main, develop, staging")
	testutil.SetConfig(t, dir, "workflow.branches.exclude", "*archive/*, wip/*")

	if got := cfg.PriorityBranches(); !reflect.DeepEqual(got, []string{"main", "develop", "staging"}) {
		t.Errorf("PriorityBranches = %v", got)
	}
	if got := cfg.ExcludePatterns(); !reflect.DeepEqual(got, []string{"*archive/*", "wip/*"}) {
		t.Errorf("ExcludePatterns = %v", got)
	}
}

func TestOwner(t *testing.T) {
	_, cfg := setup(t)

	// testutil configures user.email as test@test.com.
	if got := cfg.Owner(); got != "test" {
		t.Errorf("Owner = %q, want %q", got, "test")
	}
}

func TestProjectName(t *testing.T) {
	t.Run("config override wins", func(t *testing.T) {
		dir, cfg := setup(t)
		testutil.AddRemote(t, dir, "origin")
		testutil.Git(t, dir, "remote", "set-url", "origin", "https://github.com/user/remote-name.git")
		testutil.SetConfig(t, dir, "workflow.project.name", "config-name")

		if got := cfg.ProjectName(); got != "config-name" {
			t.Errorf("ProjectName = %q, want config-name", got)
		}
	})

	t.Run("remote URL leaf", func(t *testing.T) {
		dir, cfg := setup(t)
		testutil.AddRemote(t, dir, "origin")
		testutil.Git(t, dir, "remote", "set-url", "origin", "https://github.com/user/test-repo.git")

		if got := cfg.ProjectName(); got != "test-repo" {
			t.Errorf("ProjectName = %q, want test-repo", got)
		}
	})

	t.Run("directory name fallback", func(t *testing.T) {
		dir, cfg := setup(t)

		if got, want := cfg.ProjectName(), filepath.Base(dir); got != want {
			t.Errorf("ProjectName = %q, want %q", got, want)
		}
	})
}
