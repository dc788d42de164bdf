package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/kensho-project/kensho/internal/domain"
	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
	domainplugin "github.com/kensho-project/kensho/internal/domain/plugin"
)

// MockProvider returns canned sentences without touching an NLP model.
type MockProvider struct {
	Sentences []annotation.Sentence
	Err       error
}

func (m *MockProvider) ID() string { return "mock" }

func (m *MockProvider) Annotate(_ context.Context, _ string) ([]annotation.Sentence, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Sentences, nil
}

// MockRepo is an in-memory WorkspaceRepository.
type MockRepo struct {
	initialized bool
	plan        *plan.Plan
	report      string
	events      []domain.Event

	failRecord bool
}

func NewMockRepo() *MockRepo {
	return &MockRepo{initialized: true}
}

func (r *MockRepo) Initialize() error     { r.initialized = true; return nil }
func (r *MockRepo) IsInitialized() bool   { return r.initialized }
func (r *MockRepo) SavePlan(p *plan.Plan) error {
	r.plan = p
	return nil
}
func (r *MockRepo) LoadPlan() (*plan.Plan, error) {
	if r.plan == nil {
		return nil, fmt.Errorf("no plan found")
	}
	return r.plan, nil
}
func (r *MockRepo) SaveReport(report string) error { r.report = report; return nil }
func (r *MockRepo) LoadReport() (string, error)    { return r.report, nil }

func (r *MockRepo) RecordEvent(event domain.Event) error {
	if r.failRecord {
		return fmt.Errorf("record failed")
	}
	r.events = append(r.events, event)
	return nil
}

func (r *MockRepo) LoadEvents() ([]domain.Event, error) {
	return r.events, nil
}

// MockPublisher records what the dispatcher sends it.
type MockPublisher struct {
	InitSettings map[string]string
	InitErr      error
	PublishErr   error
	Published    *plan.Plan
	Result       *domainplugin.PublishResult
}

func (m *MockPublisher) Init(config map[string]string) error {
	m.InitSettings = config
	return m.InitErr
}

func (m *MockPublisher) Publish(p *plan.Plan) (*domainplugin.PublishResult, error) {
	if m.PublishErr != nil {
		return nil, m.PublishErr
	}
	m.Published = p
	if m.Result != nil {
		return m.Result, nil
	}
	return &domainplugin.PublishResult{Target: "mock", EpicsCreated: len(p.ThematicGroups), IssuesCreated: p.TaskCount()}, nil
}

// taskSentence builds a sentence whose root is the given task verb.
func taskSentence(text, lemma string) annotation.Sentence {
	words := strings.Fields(text)
	tokens := make([]annotation.Token, len(words))
	for i, w := range words {
		tokens[i] = annotation.Token{Text: w, Lemma: strings.ToLower(w), POS: annotation.POSNoun}
	}
	if len(tokens) > 0 {
		tokens[0].POS = annotation.POSVerb
		tokens[0].Dep = annotation.DepRoot
		tokens[0].Lemma = lemma
	}
	return annotation.Sentence{Text: text, Tokens: tokens}
}

// plainSentence builds a sentence with no root annotation.
func plainSentence(text string) annotation.Sentence {
	words := strings.Fields(text)
	tokens := make([]annotation.Token, len(words))
	for i, w := range words {
		tokens[i] = annotation.Token{Text: w, Lemma: strings.ToLower(w), POS: annotation.POSNoun}
	}
	return annotation.Sentence{Text: text, Tokens: tokens}
}

func hasEvent(events []domain.Event, action string) bool {
	for _, e := range events {
		if e.Action == action {
			return true
		}
	}
	return false
}
