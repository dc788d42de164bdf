package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

func TestTitleFromFilename(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"docs/project_kickoff.txt", "Project Kickoff"},
		{"billing_migration_plan.md", "Billing Migration Plan"},
		{"/tmp/notes.txt", "Notes"},
		{"README.md", "README"},
		{"_.txt", "Untitled Project"},
	}

	for _, tc := range cases {
		if got := titleFromFilename(tc.path); got != tc.want {
			t.Errorf("titleFromFilename(%q) = %q, want %q", tc.path, got, tc.want)
		}
	}
}

func TestMapError(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		if MapError(nil) != nil {
			t.Error("expected nil")
		}
	})

	t.Run("empty document", func(t *testing.T) {
		err := MapError(plan.ErrEmptyDocument)
		var cliErr *CLIError
		if !errors.As(err, &cliErr) {
			t.Fatalf("expected CLIError, got %T", err)
		}
		if cliErr.Hint == "" {
			t.Error("hint missing")
		}
		if !errors.Is(err, plan.ErrEmptyDocument) {
			t.Error("cause lost in mapping")
		}
	})

	t.Run("annotation error", func(t *testing.T) {
		src := &plan.AnnotationError{Err: fmt.Errorf("bad bytes")}
		var cliErr *CLIError
		if !errors.As(MapError(src), &cliErr) {
			t.Fatal("expected CLIError")
		}
	})

	t.Run("assembly error", func(t *testing.T) {
		src := &plan.AssemblyError{Stage: "aggregation", Err: fmt.Errorf("boom")}
		var cliErr *CLIError
		if !errors.As(MapError(src), &cliErr) {
			t.Fatal("expected CLIError")
		}
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		src := fmt.Errorf("disk full")
		if got := MapError(src); got != src {
			t.Errorf("got %v, want the original error", got)
		}
	})
}

func TestValidTarget(t *testing.T) {
	for _, target := range dispatchTargets {
		if !validTarget(target) {
			t.Errorf("expected %q to be valid", target)
		}
	}
	if validTarget("linear") {
		t.Error("did not expect 'linear' to be valid")
	}
}

func TestResolvePluginPathExplicit(t *testing.T) {
	path, err := resolvePluginPath("jira", "/opt/plugins/custom-jira")
	if err != nil {
		t.Fatal(err)
	}
	if path != "/opt/plugins/custom-jira" {
		t.Errorf("path = %q", path)
	}
}
