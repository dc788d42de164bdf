package analysis

import (
	"strings"
	"testing"

	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

func TestExtractObjectiveStated(t *testing.T) {
	sentences := []annotation.Sentence{
		prose("Acme Rollout Project."),
		prose("The goal is to modernize the billing stack."),
		prose("Create the database schema."),
	}

	got := ExtractObjective("Acme Rollout", sentences)
	if got != "The goal is to modernize the billing stack." {
		t.Errorf("objective = %q", got)
	}
}

func TestExtractObjectiveWindowLimit(t *testing.T) {
	sentences := []annotation.Sentence{
		prose("One."), prose("Two."), prose("Three."), prose("Four."), prose("Five."),
		prose("The objective is hidden past the window."),
	}

	got := ExtractObjective("Acme Rollout", sentences)
	if !strings.HasPrefix(got, "To deliver a comprehensive solution for acme rollout") {
		t.Errorf("expected synthesized objective, got %q", got)
	}
}

func TestExtractObjectiveSynthesized(t *testing.T) {
	got := ExtractObjective("Billing Migration", []annotation.Sentence{prose("Nothing relevant here.")})
	want := "To deliver a comprehensive solution for billing migration with structured planning and execution."
	if got != want {
		t.Errorf("objective = %q, want %q", got, want)
	}
}

func personSentence(text string, persons ...string) annotation.Sentence {
	s := prose(text)
	for i := range s.Tokens {
		for _, p := range persons {
			if s.Tokens[i].Text == p {
				s.Tokens[i].Entity = annotation.EntityPerson
				s.Tokens[i].POS = annotation.POSProperN
			}
		}
	}
	return s
}

func TestExtractTeam(t *testing.T) {
	sentences := []annotation.Sentence{
		personSentence("Maria is the project manager for the rollout.", "Maria"),
		personSentence("James joins as lead developer.", "James"),
		prose("No people mentioned here, just a manager reference."),
	}

	team := ExtractTeam(sentences)
	if len(team) != 2 {
		t.Fatalf("expected 2 members, got %d: %+v", len(team), team)
	}
	if team[0].Name != "Maria" || team[0].Role != "Manager" {
		t.Errorf("member 0 = %+v", team[0])
	}
	if team[1].Name != "James" || team[1].Role != "Lead" {
		t.Errorf("member 1 = %+v", team[1])
	}
	for _, m := range team {
		if m.Level != "Core Team" {
			t.Errorf("level = %q", m.Level)
		}
	}
}

func TestExtractTeamIgnoresPersonsWithoutRoleContext(t *testing.T) {
	team := ExtractTeam([]annotation.Sentence{
		personSentence("Maria attended the kickoff.", "Maria"),
	})
	if len(team) != 1 || team[0].Name != "Project Manager" {
		t.Fatalf("expected placeholder manager, got %+v", team)
	}
}

func TestExtractTeamDeduplicates(t *testing.T) {
	team := ExtractTeam([]annotation.Sentence{
		personSentence("Maria is the project manager.", "Maria"),
		personSentence("Maria acts as the delivery lead.", "Maria"),
	})
	if len(team) != 1 {
		t.Fatalf("expected 1 member after dedup, got %d", len(team))
	}
}

func TestExtractTeamPlaceholder(t *testing.T) {
	team := ExtractTeam(nil)
	if len(team) != 1 {
		t.Fatalf("expected placeholder, got %d members", len(team))
	}
	if team[0].Name != "Project Manager" || team[0].Role != "Manager" || team[0].Level != "Core Team" {
		t.Errorf("placeholder = %+v", team[0])
	}
}

func TestExtractRequirements(t *testing.T) {
	sentences := []annotation.Sentence{
		prose("This must be completed by Friday."),
		prose("The kickoff was on Monday."),
		prose("The system must ensure reliability under load."),
		prose("Users should reset passwords quarterly."),
	}

	reqs := ExtractRequirements(sentences)
	if len(reqs) != 3 {
		t.Fatalf("expected 3 requirements, got %d", len(reqs))
	}

	wantIDs := []string{"REQ-001", "REQ-002", "REQ-003"}
	for i, r := range reqs {
		if r.ID != wantIDs[i] {
			t.Errorf("req %d id = %q, want %q", i, r.ID, wantIDs[i])
		}
		if r.Status != "Confirmed" || r.Owner != "Project Team" || r.Source != "Document Analysis" {
			t.Errorf("req %d defaults = %+v", i, r)
		}
	}

	if reqs[0].Type != plan.Functional {
		t.Errorf("req 0 type = %v", reqs[0].Type)
	}
	if reqs[1].Type != plan.NonFunctional {
		t.Errorf("req 1 type = %v, want Non-Functional (reliability)", reqs[1].Type)
	}
}

func TestExtractRequirementsEmpty(t *testing.T) {
	reqs := ExtractRequirements([]annotation.Sentence{prose("Nothing binding here.")})
	if reqs == nil {
		t.Fatal("requirements must never be nil")
	}
	if len(reqs) != 0 {
		t.Errorf("expected none, got %d", len(reqs))
	}
}
