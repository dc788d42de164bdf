// kensho-plugin-confluence maps the plan to a Confluence page tree: one
// parent page with a child page per thematic group. Dry-run stub.
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

type ConfluencePublisher struct {
	logger   hclog.Logger
	spaceKey string
}

func (p *ConfluencePublisher) Init(config map[string]string) error {
	p.spaceKey = config["space_key"]
	if p.spaceKey == "" {
		p.spaceKey = os.Getenv("CONFLUENCE_SPACE_KEY")
	}
	if p.spaceKey == "" {
		return fmt.Errorf("confluence configuration missing (space_key required)")
	}
	return nil
}

func (p *ConfluencePublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	result := &domainPlugin.PublishResult{Target: "confluence"}

	p.logger.Info("would create parent page", "space", p.spaceKey, "title", pl.ProjectName)
	result.EpicsCreated++
	result.Notes = append(result.Notes, fmt.Sprintf("page %q in space %s", pl.ProjectName, p.spaceKey))

	for _, group := range pl.ThematicGroups {
		p.logger.Info("would create child page", "parent", pl.ProjectName, "title", group.Name, "tasks", len(group.Tasks))
		result.EpicsCreated++
		result.IssuesCreated += len(group.Tasks)
	}
	return result, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "kensho-plugin-confluence",
		Output: os.Stderr,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &ConfluencePublisher{logger: logger}},
		},
	})
}
