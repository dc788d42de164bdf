package analysis

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/statekit"

	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

// Builder states. Untyped string constants for statekit.StateID compatibility.
const (
	StateNoGroup = "no_group"
	StateInGroup = "in_group"
)

// Builder events.
const (
	eventHeading = "heading"
	eventContent = "content"
)

const (
	defaultGroupName        = "General Requirements"
	defaultGroupDescription = "Tasks identified in the document."
	defaultTaskOwner        = "Development Team"
	maxDetailRunes          = 140
)

// FeedAction tells the caller what the builder did with a sentence.
type FeedAction string

const (
	ActionHeading FeedAction = "heading"
	ActionTask    FeedAction = "task"
	ActionSkipped FeedAction = "skipped"
)

// FeedResult is the per-sentence outcome. Skips carry a reason so callers can
// log them without failing the pass.
type FeedResult struct {
	Action FeedAction
	Reason string
}

// BuilderOption configures a PlanBuilder.
type BuilderOption func(*PlanBuilder)

// WithDefaultGroup overrides the name and description of the group
// synthesized when content arrives before any heading.
func WithDefaultGroup(name, description string) BuilderOption {
	return func(b *PlanBuilder) {
		b.defaultName = name
		b.defaultDescription = description
	}
}

// WithStrictOwners leaves a task's owner empty when extraction finds nothing,
// instead of substituting the team placeholder.
func WithStrictOwners() BuilderOption {
	return func(b *PlanBuilder) { b.strictOwners = true }
}

// builderContext carries no mutable data; group state lives on the builder.
type builderContext struct{}

// PlanBuilder walks the sentence stream in document order and assembles
// thematic groups. One builder serves one analysis pass.
type PlanBuilder struct {
	interpreter *statekit.Interpreter[builderContext]

	current *plan.ThematicGroup
	groups  []plan.ThematicGroup

	defaultName        string
	defaultDescription string
	strictOwners       bool
}

// NewPlanBuilder constructs a builder in the NoGroup state.
func NewPlanBuilder(opts ...BuilderOption) (*PlanBuilder, error) {
	b := &PlanBuilder{
		defaultName:        defaultGroupName,
		defaultDescription: defaultGroupDescription,
	}
	for _, opt := range opts {
		opt(b)
	}

	machine := statekit.NewMachine[builderContext]("plan-builder").
		WithInitial(statekit.StateID(StateNoGroup)).
		WithContext(builderContext{})

	machine.State(StateNoGroup).
		On(eventHeading).Target(StateInGroup).
		On(eventContent).Target(StateInGroup).
		Done()

	machine.State(StateInGroup).
		On(eventHeading).Target(StateInGroup).
		On(eventContent).Target(StateInGroup).
		Done()

	built, err := machine.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build plan-builder state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(built)
	interpreter.Start()

	b.interpreter = interpreter
	return b, nil
}

// Current returns the builder's state machine state.
func (b *PlanBuilder) Current() string {
	return string(b.interpreter.State().Value)
}

// Feed processes one sentence in document order.
func (b *PlanBuilder) Feed(s annotation.Sentence) FeedResult {
	text := s.Normalized()
	if text == "" {
		return FeedResult{Action: ActionSkipped, Reason: "empty after normalization"}
	}

	if IsThemeHeading(s) {
		b.openGroup(text)
		b.send(eventHeading)
		return FeedResult{Action: ActionHeading}
	}

	if b.Current() == StateNoGroup {
		b.current = &plan.ThematicGroup{
			Name:        b.defaultName,
			Description: b.defaultDescription,
			Tasks:       []plan.Task{},
		}
		b.send(eventContent)
	}

	if !IsTask(s) {
		return FeedResult{Action: ActionSkipped, Reason: "no task verb at grammatical root"}
	}

	owner := ExtractOwner(s)
	if owner == "" && !b.strictOwners {
		owner = defaultTaskOwner
	}
	b.current.Tasks = append(b.current.Tasks, plan.Task{
		Name:    text,
		Details: taskDetails(text),
		Owner:   owner,
	})
	return FeedResult{Action: ActionTask}
}

// Finish flushes the in-progress group and returns the ordered group list.
// The builder must not be fed after Finish.
func (b *PlanBuilder) Finish() []plan.ThematicGroup {
	if b.current != nil && shouldFlushTrailingGroup(b.groups, *b.current) {
		b.groups = append(b.groups, *b.current)
	}
	b.current = nil
	if b.groups == nil {
		return []plan.ThematicGroup{}
	}
	return b.groups
}

// openGroup flushes the current group and starts a new one named after the
// heading sentence. The name is set exactly once, here.
func (b *PlanBuilder) openGroup(name string) {
	if b.current != nil {
		b.groups = append(b.groups, *b.current)
	}
	b.current = &plan.ThematicGroup{
		Name:        name,
		Description: "",
		Tasks:       []plan.Task{},
	}
}

func (b *PlanBuilder) send(event string) {
	b.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
}

// shouldFlushTrailingGroup decides whether the final in-progress group joins
// the plan. Comparing names only means two distinct headings with identical
// text are merged; kept as a single policy point so it can be revisited
// without touching the state machine.
func shouldFlushTrailingGroup(flushed []plan.ThematicGroup, trailing plan.ThematicGroup) bool {
	if len(flushed) == 0 {
		return true
	}
	return flushed[len(flushed)-1].Name != trailing.Name
}

func taskDetails(text string) string {
	return fmt.Sprintf("Source sentence: '%s'", truncateRunes(text, maxDetailRunes))
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimSpace(string(runes[:n])) + "…"
}
