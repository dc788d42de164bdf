package analysis

import (
	"testing"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

func TestDerivePhases(t *testing.T) {
	groups := []plan.ThematicGroup{
		{Name: "Phase 1: Setup", Tasks: []plan.Task{
			{Name: "Create the schema.", Owner: "jane.doe@example.com"},
			{Name: "Provision the cluster.", Owner: ""},
		}},
		{Name: "Phase 2: Rollout", Tasks: []plan.Task{
			{Name: "Deploy to staging.", Owner: "Developer"},
		}},
	}

	phases := DerivePhases(groups)
	if len(phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(phases))
	}

	if phases[0].Status != plan.PhaseInProgress {
		t.Errorf("first phase status = %q", phases[0].Status)
	}
	if phases[1].Status != plan.PhasePending {
		t.Errorf("second phase status = %q", phases[1].Status)
	}
	for _, p := range phases {
		if p.Owner != "Project Team" {
			t.Errorf("phase %q owner = %q", p.Name, p.Owner)
		}
	}

	sub := phases[0].SubTasks
	if len(sub) != 2 {
		t.Fatalf("expected 2 sub-tasks, got %d", len(sub))
	}
	if sub[0].Assignee != "jane.doe@example.com" {
		t.Errorf("sub-task 0 assignee = %q", sub[0].Assignee)
	}
	if sub[1].Assignee != "Development Team" {
		t.Errorf("unowned sub-task assignee = %q, want placeholder", sub[1].Assignee)
	}
	for _, s := range sub {
		if s.Status != plan.PhaseInProgress {
			t.Errorf("sub-task %q status = %q, want phase status", s.Name, s.Status)
		}
	}
	if phases[1].SubTasks[0].Status != plan.PhasePending {
		t.Errorf("second phase sub-task status = %q", phases[1].SubTasks[0].Status)
	}
}

func TestDerivePhasesEmpty(t *testing.T) {
	phases := DerivePhases(nil)
	if phases == nil {
		t.Fatal("phases must never be nil")
	}
	if len(phases) != 0 {
		t.Errorf("expected no phases, got %d", len(phases))
	}
}
