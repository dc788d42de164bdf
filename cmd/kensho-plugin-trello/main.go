// kensho-plugin-trello maps thematic groups to Trello lists and tasks to
// cards. Dry-run stub: no API calls are made.
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

type TrelloPublisher struct {
	logger hclog.Logger
	board  string
}

func (p *TrelloPublisher) Init(config map[string]string) error {
	p.board = config["board"]
	if p.board == "" {
		p.board = os.Getenv("TRELLO_BOARD")
	}
	if p.board == "" {
		return fmt.Errorf("trello configuration missing (board required)")
	}
	return nil
}

func (p *TrelloPublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	result := &domainPlugin.PublishResult{Target: "trello"}

	for _, group := range pl.ThematicGroups {
		p.logger.Info("would create list", "board", p.board, "name", group.Name)
		result.EpicsCreated++
		result.Notes = append(result.Notes, fmt.Sprintf("list %q on board %s", group.Name, p.board))
		for _, task := range group.Tasks {
			p.logger.Info("would create card", "list", group.Name, "name", task.Name)
			result.IssuesCreated++
		}
	}
	return result, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "kensho-plugin-trello",
		Output: os.Stderr,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &TrelloPublisher{logger: logger}},
		},
	})
}
