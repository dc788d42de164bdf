// kensho-plugin-mock is the reference Publisher used in tests and local
// development.
package main

import (
	"log"

	"github.com/hashicorp/go-plugin"

	domainplan "github.com/kensho-project/kensho/internal/domain/plan"
	domainPlugin "github.com/kensho-project/kensho/internal/domain/plugin"
	infraPlugin "github.com/kensho-project/kensho/internal/infrastructure/plugin"
)

type MockPublisher struct{}

func (m *MockPublisher) Init(config map[string]string) error {
	return nil
}

func (m *MockPublisher) Publish(pl *domainplan.Plan) (*domainPlugin.PublishResult, error) {
	log.Printf("received plan %q with %d groups", pl.ProjectName, len(pl.ThematicGroups))

	result := &domainPlugin.PublishResult{Target: "mock"}
	for _, group := range pl.ThematicGroups {
		result.EpicsCreated++
		result.IssuesCreated += len(group.Tasks)
	}
	return result, nil
}

func main() {
	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: infraPlugin.HandshakeConfig,
		Plugins: map[string]plugin.Plugin{
			"publisher": &domainPlugin.PublisherPlugin{Impl: &MockPublisher{}},
		},
	})
}
