// kensho-plugin-asana maps thematic groups to Asana sections and tasks to
// Asana tasks. Dry-run stub: no API calls are made.
package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	domainplan "github.com/kensho-project/kensho/internal/domain/plan"
	domainPlugin "github.com/kensho-project/kensho/internal/domain/plugin"
	infraPlugin "github.com/kensho-project/kensho/internal/infrastructure/plugin"
)

type AsanaPublisher struct {
	logger    hclog.Logger
	workspace string
}

func (p *AsanaPublisher) Init(config map[string]string) error {
	p.workspace = config["workspace"]
	if p.workspace == "" {
		p.workspace = os.Getenv("ASANA_WORKSPACE")
	}
	if p.workspace == "" {
		return fmt.Errorf("asana configuration missing (workspace required)")
	}
	return nil
}

func (p *AsanaPublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	result := &domainPlugin.PublishResult{Target: "asana"}

	p.logger.Info("would create project", "workspace", p.workspace, "name", pl.ProjectName)
	result.Notes = append(result.Notes, fmt.Sprintf("project %q in workspace %s", pl.ProjectName, p.workspace))

	for _, group := range pl.ThematicGroups {
		p.logger.Info("would create section", "name", group.Name)
		result.EpicsCreated++
		for _, task := range group.Tasks {
			p.logger.Info("would create task", "section", group.Name, "name", task.Name, "assignee", task.Owner)
			result.IssuesCreated++
		}
	}
	return result, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "kensho-plugin-asana",
		Output: os.Stderr,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &AsanaPublisher{logger: logger}},
		},
	})
}
