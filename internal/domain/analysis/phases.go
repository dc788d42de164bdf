package analysis

import "github.com/kensho-project/kensho/internal/domain/plan"

const phaseOwner = "Project Team"

// DerivePhases maps each thematic group to a planning phase, 1:1 and in
// order. The first phase starts in progress; the rest are pending. Sub-task
// status mirrors the phase status.
func DerivePhases(groups []plan.ThematicGroup) []plan.Phase {
	phases := make([]plan.Phase, 0, len(groups))
	for i, g := range groups {
		status := plan.PhasePending
		if i == 0 {
			status = plan.PhaseInProgress
		}

		subTasks := make([]plan.SubTask, 0, len(g.Tasks))
		for _, t := range g.Tasks {
			assignee := t.Owner
			if assignee == "" {
				assignee = defaultTaskOwner
			}
			subTasks = append(subTasks, plan.SubTask{
				Name:     t.Name,
				Assignee: assignee,
				Status:   status,
			})
		}

		phases = append(phases, plan.Phase{
			Name:     g.Name,
			Owner:    phaseOwner,
			Status:   status,
			SubTasks: subTasks,
		})
	}
	return phases
}
