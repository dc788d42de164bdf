// kensho-plugin-jira maps thematic groups to Jira epics and tasks to Jira
// issues. The connector is a dry-run stub: it reports the structure it would
// create but performs no API calls.
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

type JiraPublisher struct {
	logger     hclog.Logger
	baseURL    string
	projectKey string
	email      string
}

func (p *JiraPublisher) Init(config map[string]string) error {
	p.baseURL = config["base_url"]
	if p.baseURL == "" {
		p.baseURL = os.Getenv("JIRA_BASE_URL")
	}
	p.projectKey = config["project_key"]
	if p.projectKey == "" {
		p.projectKey = os.Getenv("JIRA_PROJECT_KEY")
	}
	p.email = config["email"]
	if p.email == "" {
		p.email = os.Getenv("JIRA_EMAIL")
	}

	if p.baseURL == "" || p.projectKey == "" {
		return fmt.Errorf("jira configuration missing (base_url, project_key required)")
	}
	return nil
}

func (p *JiraPublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	result := &domainPlugin.PublishResult{Target: "jira"}

	for _, group := range pl.ThematicGroups {
		p.logger.Info("would create epic", "project", p.projectKey, "summary", group.Name)
		result.EpicsCreated++
		result.Notes = append(result.Notes, fmt.Sprintf("epic %q in %s", group.Name, p.projectKey))

		for _, task := range group.Tasks {
			p.logger.Info("would create issue", "epic", group.Name, "summary", task.Name, "assignee", task.Owner)
			result.IssuesCreated++
		}
	}
	return result, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "kensho-plugin-jira",
		Output: os.Stderr,
	})

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &JiraPublisher{logger: logger}},
		},
	})
}
