package domain

import (
	"github.com/kensho-project/kensho/internal/domain/plan"
)

// WorkspaceRepository handles the persistence of kensho artifacts in the
// .kensho/ directory.
type WorkspaceRepository interface {
	Initialize() error
	IsInitialized() bool
	SavePlan(p *plan.Plan) error
	LoadPlan() (*plan.Plan, error)
	SaveReport(report string) error
	LoadReport() (string, error)
	RecordEvent(event Event) error
	LoadEvents() ([]Event, error)
}

// AuditLogger records auditable actions.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]interface{}) error
}
