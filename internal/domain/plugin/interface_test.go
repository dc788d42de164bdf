package plugin_test

import (
	"errors"
	"testing"

	"github.com/kensho-project/kensho/internal/domain/plan"
	"github.com/kensho-project/kensho/internal/domain/plugin"
)

type StubPublisher struct {
	initConfig map[string]string
	initErr    error
	result     *plugin.PublishResult
	publishErr error
}

func (s *StubPublisher) Init(config map[string]string) error {
	s.initConfig = config
	return s.initErr
}

func (s *StubPublisher) Publish(p *plan.Plan) (*plugin.PublishResult, error) {
	if s.publishErr != nil {
		return nil, s.publishErr
	}
	return s.result, nil
}

func TestPublisherRPCServerPublish(t *testing.T) {
	stub := &StubPublisher{
		result: &plugin.PublishResult{Target: "jira", EpicsCreated: 2, IssuesCreated: 5},
	}
	server := &plugin.PublisherRPCServer{Impl: stub}

	var resp plugin.PublishResult
	args := &plugin.PublishArgs{Plan: &plan.Plan{ProjectName: "Acme Rollout"}}
	if err := server.Publish(args, &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Target != "jira" || resp.EpicsCreated != 2 || resp.IssuesCreated != 5 {
		t.Errorf("resp = %+v", resp)
	}
}

func TestPublisherRPCServerPublishError(t *testing.T) {
	server := &plugin.PublisherRPCServer{Impl: &StubPublisher{publishErr: errors.New("remote down")}}

	var resp plugin.PublishResult
	err := server.Publish(&plugin.PublishArgs{Plan: &plan.Plan{}}, &resp)
	if err == nil {
		t.Fatal("expected error to cross the RPC boundary")
	}
}

func TestPublisherRPCServerInit(t *testing.T) {
	stub := &StubPublisher{}
	server := &plugin.PublisherRPCServer{Impl: stub}

	var resp interface{}
	config := map[string]string{"project_key": "ACME"}
	if err := server.Init(config, &resp); err != nil {
		t.Fatal(err)
	}
	if stub.initConfig["project_key"] != "ACME" {
		t.Errorf("config not forwarded: %+v", stub.initConfig)
	}
}

func TestPublisherPluginServer(t *testing.T) {
	p := &plugin.PublisherPlugin{Impl: &StubPublisher{}}
	srv, err := p.Server(nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := srv.(*plugin.PublisherRPCServer); !ok {
		t.Errorf("unexpected server type %T", srv)
	}
}
