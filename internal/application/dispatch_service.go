package application

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/kensho-project/kensho/internal/domain/plan"
	domainplugin "github.com/kensho-project/kensho/internal/domain/plugin"
)

// DispatchService hands a finished plan to a connector. It validates the
// plan's wire shape first; which external system sits behind the Publisher
// is unknown to the core.
type DispatchService struct {
	audit  *AuditService
	logger hclog.Logger
}

func NewDispatchService(audit *AuditService, logger hclog.Logger) *DispatchService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &DispatchService{audit: audit, logger: logger.Named("dispatch")}
}

// Dispatch validates the plan, initializes the connector with its settings
// and publishes.
func (s *DispatchService) Dispatch(publisher domainplugin.Publisher, p *plan.Plan, settings map[string]string) (*domainplugin.PublishResult, error) {
	if p == nil {
		return nil, fmt.Errorf("no plan to dispatch")
	}
	if err := ValidatePlan(p); err != nil {
		return nil, err
	}

	if err := publisher.Init(settings); err != nil {
		return nil, fmt.Errorf("connector initialization failed: %w", err)
	}

	result, err := publisher.Publish(p)
	if err != nil {
		return nil, fmt.Errorf("dispatch failed: %w", err)
	}

	s.logger.Info("plan dispatched",
		"target", result.Target,
		"epics", result.EpicsCreated,
		"issues", result.IssuesCreated,
	)

	if s.audit != nil {
		if err := s.audit.Log("plan.dispatched", "dispatch-service", map[string]interface{}{
			"target": result.Target,
			"epics":  result.EpicsCreated,
			"issues": result.IssuesCreated,
			"errors": len(result.Errors),
		}); err != nil {
			s.logger.Warn("failed to write audit event", "error", err)
		}
	}

	return result, nil
}
