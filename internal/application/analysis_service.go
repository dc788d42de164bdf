package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/kensho-project/kensho/internal/domain/analysis"
	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

const planLanguage = "EN"

// AnalysisService runs the full document-analysis pipeline: annotation,
// group building, metadata extraction, phase derivation and report
// rendering. The annotation provider is injected once at construction; tests
// substitute a mock.
type AnalysisService struct {
	provider    annotation.Provider
	audit       *AuditService
	logger      hclog.Logger
	builderOpts []analysis.BuilderOption
}

// AnalysisOption configures the service.
type AnalysisOption func(*AnalysisService)

// WithBuilderOptions forwards options to each per-document plan builder.
func WithBuilderOptions(opts ...analysis.BuilderOption) AnalysisOption {
	return func(s *AnalysisService) { s.builderOpts = opts }
}

func NewAnalysisService(provider annotation.Provider, audit *AuditService, logger hclog.Logger, opts ...AnalysisOption) *AnalysisService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	s := &AnalysisService{
		provider: provider,
		audit:    audit,
		logger:   logger.Named("analysis"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Analyze converts raw document text into a structured plan. One linear pass
// over the sentence stream; a fault in a single sentence is logged and
// skipped, structural faults abort with a distinct error kind.
func (s *AnalysisService) Analyze(ctx context.Context, text, title string) (*plan.Plan, error) {
	if strings.TrimSpace(text) == "" {
		return nil, plan.ErrEmptyDocument
	}

	sentences, err := s.provider.Annotate(ctx, text)
	if err != nil {
		return nil, &plan.AnnotationError{Err: err}
	}
	if len(sentences) == 0 {
		return nil, plan.ErrEmptyDocument
	}

	builder, err := analysis.NewPlanBuilder(s.builderOpts...)
	if err != nil {
		return nil, &plan.AssemblyError{Stage: "builder setup", Err: err}
	}

	var skipped []plan.SkippedSentence
	for _, sent := range sentences {
		result := s.feed(builder, sent)
		if result.Action == analysis.ActionSkipped && result.Reason != "" {
			s.logger.Debug("sentence skipped", "reason", result.Reason, "text", sent.Normalized())
			skipped = append(skipped, plan.SkippedSentence{
				Text:   sent.Normalized(),
				Reason: result.Reason,
			})
		}
	}

	p, err := s.assemble(builder, sentences, title)
	if err != nil {
		return nil, err
	}
	p.Skipped = skipped

	if s.audit != nil {
		if err := s.audit.Log("plan.analyzed", "analysis-service", map[string]interface{}{
			"project":      p.ProjectName,
			"groups":       len(p.ThematicGroups),
			"tasks":        p.TaskCount(),
			"requirements": len(p.Requirements),
			"skipped":      len(skipped),
		}); err != nil {
			s.logger.Warn("failed to write audit event", "error", err)
		}
	}

	return p, nil
}

// feed isolates a single sentence: an unexpected panic while classifying it
// becomes a skip instead of aborting the document.
func (s *AnalysisService) feed(builder *analysis.PlanBuilder, sent annotation.Sentence) (result analysis.FeedResult) {
	defer func() {
		if r := recover(); r != nil {
			result = analysis.FeedResult{
				Action: analysis.ActionSkipped,
				Reason: fmt.Sprintf("classification failure: %v", r),
			}
		}
	}()
	return builder.Feed(sent)
}

// assemble builds the final aggregate. Any unexpected failure here is fatal:
// no partial plan is returned.
func (s *AnalysisService) assemble(builder *analysis.PlanBuilder, sentences []annotation.Sentence, title string) (p *plan.Plan, err error) {
	defer func() {
		if r := recover(); r != nil {
			p = nil
			err = &plan.AssemblyError{Stage: "aggregation", Err: fmt.Errorf("%v", r)}
		}
	}()

	groups := builder.Finish()

	p = &plan.Plan{
		ID:             uuid.New().String(),
		ProjectName:    title,
		Language:       planLanguage,
		Objective:      analysis.ExtractObjective(title, sentences),
		ThematicGroups: groups,
		Requirements:   analysis.ExtractRequirements(sentences),
		Phases:         analysis.DerivePhases(groups),
		Team:           analysis.ExtractTeam(sentences),
		AnalyzedAt:     time.Now(),
	}

	report, renderErr := analysis.RenderReport(p)
	if renderErr != nil {
		return nil, &plan.AssemblyError{Stage: "report rendering", Err: renderErr}
	}
	p.Report = report

	return p, nil
}
