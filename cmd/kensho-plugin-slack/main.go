// kensho-plugin-slack posts a plan summary to a Slack channel. Dry-run
// stub: the message is logged, not sent.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	domainplan "github.com/kensho-project/kensho/internal/domain/plan"
	domainPlugin "github.com/kensho-project/kensho/internal/domain/plugin"
	infraPlugin "github.com/kensho-project/kensho/internal/infrastructure/plugin"
)

type SlackPublisher struct {
	logger  hclog.Logger
	channel string
}

func (p *SlackPublisher) Init(config map[string]string) error {
	p.channel = config["channel"]
	if p.channel == "" {
		p.channel = os.Getenv("SLACK_CHANNEL")
	}
	if p.channel == "" {
		return fmt.Errorf("slack configuration missing (channel required)")
	}
	return nil
}

func (p *SlackPublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "*%s* — %d group(s), %d task(s)\n", pl.ProjectName, len(pl.ThematicGroups), pl.TaskCount())
	for _, group := range pl.ThematicGroups {
		fmt.Fprintf(&sb, "• %s (%d)\n", group.Name, len(group.Tasks))
	}

	p.logger.Info("would post summary", "channel", p.channel, "message", sb.String())
	return &domainPlugin.PublishResult{
		Target: "slack",
		Notes:  []string{fmt.Sprintf("summary message to %s", p.channel)},
	}, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "kensho-plugin-slack",
		Output: os.Stderr,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &SlackPublisher{logger: logger}},
		},
	})
}
