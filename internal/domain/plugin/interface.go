package plugin

import (
	"net/rpc"

	"github.com/hashicorp/go-plugin"

	domainplan "github.com/kensho-project/kensho/internal/domain/plan"
)

// Publisher is the interface connector plugins implement. Each plugin maps
// thematic groups to epic-like containers and tasks to issue-like items in
// its target system; the core has no knowledge of which system is targeted.
type Publisher interface {
	// Init validates the connector configuration (auth check).
	Init(config map[string]string) error

	// Publish pushes the plan to the external system.
	Publish(p *domainplan.Plan) (*PublishResult, error)
}

// PublishResult captures what a connector created (or would create).
type PublishResult struct {
	Target        string   `json:"target"`
	EpicsCreated  int      `json:"epics_created"`
	IssuesCreated int      `json:"issues_created"`
	Notes         []string `json:"notes,omitempty"`
	Errors        []string `json:"errors,omitempty"`
}

// PublisherPlugin is the go-plugin wrapper so a Publisher can be served and
// consumed over RPC.
type PublisherPlugin struct {
	Impl Publisher
}

func (p *PublisherPlugin) Server(*plugin.MuxBroker) (interface{}, error) {
	return &PublisherRPCServer{Impl: p.Impl}, nil
}

func (p *PublisherPlugin) Client(b *plugin.MuxBroker, c *rpc.Client) (interface{}, error) {
	return &PublisherRPCClient{Client: c}, nil
}

// PublishArgs is the RPC payload for Publish.
type PublishArgs struct {
	Plan *domainplan.Plan
}

type PublisherRPCClient struct{ Client *rpc.Client }

func (g *PublisherRPCClient) Init(config map[string]string) error {
	var resp interface{}
	return g.Client.Call("Plugin.Init", config, &resp)
}

func (g *PublisherRPCClient) Publish(p *domainplan.Plan) (*PublishResult, error) {
	var resp PublishResult
	err := g.Client.Call("Plugin.Publish", &PublishArgs{Plan: p}, &resp)
	return &resp, err
}

type PublisherRPCServer struct{ Impl Publisher }

func (s *PublisherRPCServer) Init(config map[string]string, resp *interface{}) error {
	return s.Impl.Init(config)
}

func (s *PublisherRPCServer) Publish(args *PublishArgs, resp *PublishResult) error {
	result, err := s.Impl.Publish(args.Plan)
	if err != nil {
		return err
	}
	*resp = *result
	return nil
}
