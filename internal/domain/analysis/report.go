package analysis

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/kensho-project/kensho/internal/domain/plan"
)

const maxTasksShown = 3
const maxFunctionalShown = 5

const reportTemplate = `# Project Analysis Report: {{.ProjectName}}

## Objective
{{.Objective}}

## Thematic Breakdown
{{range .Groups}}- **{{.Name}}** ({{.TaskCount}} task{{if ne .TaskCount 1}}s{{end}}){{range .TaskNames}}
  - {{.}}{{end}}{{if gt .Elided 0}}
  - …and {{.Elided}} more{{end}}
{{end}}
## Requirements
{{.FunctionalCount}} functional and {{.NonFunctionalCount}} non-functional requirement(s) identified.
{{range .FunctionalExamples}}- {{.}}
{{end}}
## Strategic Recommendations
- Confirm the thematic breakdown with the project sponsor before dispatching.
- Assign explicit owners to tasks currently held by the default team.
- Review non-functional requirements with the engineering lead early.
- Re-run the analysis after major document revisions to keep the plan current.
`

type reportGroup struct {
	Name      string
	TaskCount int
	TaskNames []string
	Elided    int
}

type reportData struct {
	ProjectName        string
	Objective          string
	Groups             []reportGroup
	FunctionalCount    int
	NonFunctionalCount int
	FunctionalExamples []string
}

var reportTmpl = template.Must(template.New("report").Parse(reportTemplate))

// RenderReport formats the plan into a narrative markdown summary. Purely
// presentational: nothing here feeds back into the plan's data.
func RenderReport(p *plan.Plan) (string, error) {
	data := reportData{
		ProjectName: p.ProjectName,
		Objective:   p.Objective,
	}

	for _, g := range p.ThematicGroups {
		rg := reportGroup{Name: g.Name, TaskCount: len(g.Tasks)}
		for i, t := range g.Tasks {
			if i == maxTasksShown {
				rg.Elided = len(g.Tasks) - maxTasksShown
				break
			}
			rg.TaskNames = append(rg.TaskNames, t.Name)
		}
		data.Groups = append(data.Groups, rg)
	}

	for _, r := range p.Requirements {
		switch r.Type {
		case plan.NonFunctional:
			data.NonFunctionalCount++
		default:
			data.FunctionalCount++
			if len(data.FunctionalExamples) < maxFunctionalShown {
				data.FunctionalExamples = append(data.FunctionalExamples, r.Description)
			}
		}
	}

	var sb strings.Builder
	if err := reportTmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return sb.String(), nil
}
