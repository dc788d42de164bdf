package analysis

import (
	"strings"
	"testing"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

func TestRenderReport(t *testing.T) {
	p := &plan.Plan{
		ProjectName: "Acme Rollout",
		Objective:   "To modernize the billing stack.",
		ThematicGroups: []plan.ThematicGroup{
			{Name: "Phase 1: Setup", Tasks: []plan.Task{
				{Name: "Create the schema."},
				{Name: "Provision the cluster."},
			}},
		},
		Requirements: []plan.Requirement{
			{ID: "REQ-001", Type: plan.Functional, Description: "This must be completed by Friday."},
			{ID: "REQ-002", Type: plan.NonFunctional, Description: "Ensure system reliability under load."},
		},
	}

	report, err := RenderReport(p)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"# Project Analysis Report: Acme Rollout",
		"To modernize the billing stack.",
		"**Phase 1: Setup** (2 tasks)",
		"- Create the schema.",
		"1 functional and 1 non-functional requirement(s) identified.",
		"- This must be completed by Friday.",
		"## Strategic Recommendations",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q\n---\n%s", want, report)
		}
	}
}

func TestRenderReportElidesTasks(t *testing.T) {
	group := plan.ThematicGroup{Name: "General Requirements"}
	for _, name := range []string{"One.", "Two.", "Three.", "Four.", "Five."} {
		group.Tasks = append(group.Tasks, plan.Task{Name: name})
	}
	p := &plan.Plan{ProjectName: "Big Doc", ThematicGroups: []plan.ThematicGroup{group}}

	report, err := RenderReport(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(report, "…and 2 more") {
		t.Errorf("expected elision marker in report:\n%s", report)
	}
	if strings.Contains(report, "- Four.") {
		t.Errorf("task beyond the shown limit leaked into report:\n%s", report)
	}
}

func TestRenderReportSingularTask(t *testing.T) {
	p := &plan.Plan{
		ProjectName: "Small Doc",
		ThematicGroups: []plan.ThematicGroup{
			{Name: "General Requirements", Tasks: []plan.Task{{Name: "Only one."}}},
		},
	}

	report, err := RenderReport(p)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(report, "(1 task)") {
		t.Errorf("expected singular task count:\n%s", report)
	}
}
