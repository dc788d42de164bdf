package analysis

import (
	"fmt"
	"strings"

	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

var objectiveKeywords = []string{"objective", "goal", "purpose", "aim", "deliver"}

const (
	objectiveScanWindow = 5

	teamLevel          = "Core Team"
	requirementSource  = "Document Analysis"
	requirementOwner   = "Project Team"
	requirementStatus  = "Confirmed"
	placeholderManager = "Project Manager"
)

// objectiveStrategy yields a project objective or passes to the next
// strategy. The last strategy in the chain always yields.
type objectiveStrategy func(title string, sentences []annotation.Sentence) (string, bool)

var objectiveStrategies = []objectiveStrategy{
	statedObjective,
	synthesizedObjective,
}

// ExtractObjective derives the project objective by evaluating strategies in
// precedence order.
func ExtractObjective(title string, sentences []annotation.Sentence) string {
	for _, strategy := range objectiveStrategies {
		if objective, ok := strategy(title, sentences); ok {
			return objective
		}
	}
	return "" // unreachable: synthesizedObjective always yields
}

// statedObjective scans the opening sentences for an explicit statement of
// intent.
func statedObjective(_ string, sentences []annotation.Sentence) (string, bool) {
	window := sentences
	if len(window) > objectiveScanWindow {
		window = window[:objectiveScanWindow]
	}
	for _, s := range window {
		lower := s.Lower()
		for _, kw := range objectiveKeywords {
			if strings.Contains(lower, kw) {
				return s.Normalized(), true
			}
		}
	}
	return "", false
}

func synthesizedObjective(title string, _ []annotation.Sentence) (string, bool) {
	return fmt.Sprintf(
		"To deliver a comprehensive solution for %s with structured planning and execution.",
		strings.ToLower(title),
	), true
}

// ExtractTeam builds the roster from person entities found in sentences that
// also mention a role keyword. An empty roster is replaced by a single
// placeholder manager so downstream consumers always see at least one member.
func ExtractTeam(sentences []annotation.Sentence) []plan.TeamMember {
	var members []plan.TeamMember
	seen := map[string]bool{}

	for _, s := range sentences {
		role := ExtractRole(s)
		if role == "" {
			continue
		}
		for _, tok := range s.Tokens {
			if tok.Entity != annotation.EntityPerson || seen[tok.Text] {
				continue
			}
			seen[tok.Text] = true
			members = append(members, plan.TeamMember{
				Name:  tok.Text,
				Role:  role,
				Level: teamLevel,
			})
		}
	}

	if len(members) == 0 {
		members = append(members, plan.TeamMember{
			Name:  placeholderManager,
			Role:  "Manager",
			Level: teamLevel,
		})
	}
	return members
}

// ExtractRequirements collects obligation sentences in document order,
// assigning strictly sequential REQ-NNN identifiers starting at REQ-001.
func ExtractRequirements(sentences []annotation.Sentence) []plan.Requirement {
	requirements := []plan.Requirement{}
	for _, s := range sentences {
		if !IsRequirement(s) {
			continue
		}
		requirements = append(requirements, plan.Requirement{
			ID:          fmt.Sprintf("REQ-%03d", len(requirements)+1),
			Type:        RequirementType(s),
			Description: s.Normalized(),
			Source:      requirementSource,
			Owner:       requirementOwner,
			Status:      requirementStatus,
		})
	}
	return requirements
}
