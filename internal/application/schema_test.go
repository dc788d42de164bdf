package application

import (
	"strings"
	"testing"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

func validPlan() *plan.Plan {
	return &plan.Plan{
		ID:          "p-1",
		ProjectName: "Acme Rollout",
		Language:    "EN",
		ThematicGroups: []plan.ThematicGroup{
			{Name: "Phase 1: Setup", Tasks: []plan.Task{
				{Name: "Create the schema.", Details: "Source sentence: 'Create the schema.'", Owner: "Development Team"},
			}},
		},
		Requirements: []plan.Requirement{
			{ID: "REQ-001", Type: plan.Functional, Description: "Must finish by Friday.", Source: "Document Analysis", Owner: "Project Team", Status: "Confirmed"},
		},
	}
}

func TestValidatePlan(t *testing.T) {
	if err := ValidatePlan(validPlan()); err != nil {
		t.Fatalf("valid plan rejected: %v", err)
	}
}

func TestValidatePlanMissingProjectName(t *testing.T) {
	p := validPlan()
	p.ProjectName = ""
	err := ValidatePlan(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "project_name") {
		t.Errorf("error should name the offending field: %v", err)
	}
}

func TestValidatePlanBadRequirementID(t *testing.T) {
	p := validPlan()
	p.Requirements[0].ID = "REQ-1"
	if err := ValidatePlan(p); err == nil {
		t.Fatal("expected validation error for malformed reqId")
	}
}

func TestValidatePlanBadRequirementType(t *testing.T) {
	p := validPlan()
	p.Requirements[0].Type = "Aspirational"
	if err := ValidatePlan(p); err == nil {
		t.Fatal("expected validation error for unknown requirement type")
	}
}

func TestValidatePlanEmptyTaskName(t *testing.T) {
	p := validPlan()
	p.ThematicGroups[0].Tasks[0].Name = ""
	if err := ValidatePlan(p); err == nil {
		t.Fatal("expected validation error for empty task name")
	}
}
