// Package plan holds the structured project plan aggregate produced by
// document analysis. Field names are wire-stable: downstream connectors and
// the web front end consume this JSON shape as-is.
package plan

import "time"

// RequirementType classifies a requirement sentence.
type RequirementType string

const (
	Functional    RequirementType = "Functional"
	NonFunctional RequirementType = "Non-Functional"
)

// PhaseStatus is the planning status of a derived phase.
type PhaseStatus string

const (
	PhaseInProgress PhaseStatus = "In Progress"
	PhasePending    PhaseStatus = "Pending"
)

// Task is a single actionable item inside a thematic group. Never mutated
// after creation.
type Task struct {
	Name    string `json:"task_name"`
	Details string `json:"details"`
	Owner   string `json:"owner,omitempty"`
}

// ThematicGroup is a named cluster of tasks keyed by a heading-like sentence.
type ThematicGroup struct {
	Name        string `json:"group_name"`
	Description string `json:"group_description"`
	Tasks       []Task `json:"tasks"`
}

// Requirement is a sentence expressing an obligation or constraint.
type Requirement struct {
	ID          string          `json:"reqId"`
	Type        RequirementType `json:"type"`
	Description string          `json:"description"`
	Source      string          `json:"source"`
	Owner       string          `json:"owner"`
	Status      string          `json:"status"`
}

// TeamMember is a person recognized in the document together with an inferred
// role.
type TeamMember struct {
	Name  string `json:"memberName"`
	Role  string `json:"role"`
	Level string `json:"level"`
}

// SubTask mirrors a group task inside the phase view.
type SubTask struct {
	Name     string      `json:"name"`
	Assignee string      `json:"assignee"`
	Status   PhaseStatus `json:"status"`
}

// Phase is the project-planning view of a thematic group, derived 1:1.
type Phase struct {
	Name     string      `json:"phaseName"`
	Owner    string      `json:"owner"`
	Status   PhaseStatus `json:"status"`
	SubTasks []SubTask   `json:"subTasks"`
}

// SkippedSentence records a sentence the pipeline dropped and why. Collected
// for observability; skips never fail an analysis.
type SkippedSentence struct {
	Text   string `json:"text"`
	Reason string `json:"reason"`
}

// Plan is the top-level aggregate: one analysis call produces one Plan,
// returned as an immutable snapshot that owns all child entities.
type Plan struct {
	ID             string            `json:"id"`
	ProjectName    string            `json:"project_name"`
	Language       string            `json:"language"`
	Objective      string            `json:"project_objective"`
	ThematicGroups []ThematicGroup   `json:"thematic_groups"`
	Requirements   []Requirement     `json:"requirements"`
	Phases         []Phase           `json:"phases"`
	Team           []TeamMember      `json:"team"`
	Report         string            `json:"report,omitempty"`
	Skipped        []SkippedSentence `json:"skipped_sentences,omitempty"`
	AnalyzedAt     time.Time         `json:"analyzed_at"`
}

// TaskCount returns the total number of tasks across all groups.
func (p *Plan) TaskCount() int {
	n := 0
	for _, g := range p.ThematicGroups {
		n += len(g.Tasks)
	}
	return n
}
