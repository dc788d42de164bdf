// Package analysis contains the document-analysis core: rule-based
// classification over linguistic annotations, the plan-building state
// machine, metadata extraction and report rendering.
package analysis

import (
	"regexp"
	"strings"

	"github.com/kensho-project/kensho/internal/domain/annotation"
	"github.com/kensho-project/kensho/internal/domain/plan"
)

// themeKeywords mark heading-like sentences that open a thematic group.
var themeKeywords = []string{
	"phase", "section", "module", "part", "stage", "step",
	"area", "group", "component", "feature", "deliverable",
}

// taskVerbs are the root-verb lemmas that signify an actionable task.
var taskVerbs = map[string]bool{
	"create": true, "develop": true, "deploy": true, "finalize": true,
	"review": true, "test": true, "implement": true, "build": true,
	"design": true, "configure": true, "prepare": true, "submit": true,
	"validate": true, "verify": true, "establish": true, "conduct": true,
	"ensure": true, "support": true, "deliver": true, "manage": true,
	"coordinate": true,
}

var roleKeywords = []string{
	"manager", "lead", "developer", "analyst",
	"coordinator", "owner", "responsible", "accountable",
}

var requirementKeywords = []string{
	"must", "should", "shall", "required", "requirement",
	"needs to", "has to", "will", "expected to",
}

var qualityKeywords = []string{
	"performance", "security", "usability", "reliability", "scalability",
}

// maxHeadingLength guards against long prose sentences that merely mention a
// theme keyword.
const maxHeadingLength = 150

var (
	numberedHeadingRe = regexp.MustCompile(`(?i)^(phase|section|module|part|stage|step)\s+\d+`)
	bulletMarkerRe    = regexp.MustCompile(`^(-|\*|•|\d+\.)\s`)
	emailRe           = regexp.MustCompile(`[\w.-]+@[\w.-]+`)
)

// IsThemeHeading reports whether the sentence reads like a thematic group
// heading rather than body prose.
func IsThemeHeading(s annotation.Sentence) bool {
	text := s.Normalized()
	if len(text) >= maxHeadingLength {
		return false
	}
	lower := s.Lower()

	for _, kw := range themeKeywords {
		if strings.Contains(lower, kw+":") || strings.Contains(lower, kw+" –") {
			return true
		}
	}
	if numberedHeadingRe.MatchString(text) {
		return true
	}
	if strings.HasPrefix(text, "Phase ") && strings.Contains(text, ":") {
		return true
	}
	if s.WordCount() <= 6 {
		for _, kw := range themeKeywords {
			if strings.Contains(lower, kw) {
				return true
			}
		}
	}
	return false
}

// IsTask reports whether the sentence describes an actionable task: its
// grammatical root is a known task verb, or it is a bullet / numbered list
// item. A sentence with no resolvable root is conservatively not a task.
func IsTask(s annotation.Sentence) bool {
	if bulletMarkerRe.MatchString(s.Normalized()) {
		return true
	}
	root, err := s.Root()
	if err != nil {
		return false
	}
	return root.POS == annotation.POSVerb && taskVerbs[strings.ToLower(root.Lemma)]
}

// ExtractOwner finds a task owner in preference order: an email address, then
// a role keyword (title-cased). Empty string means no owner was found and the
// caller decides the placeholder.
func ExtractOwner(s annotation.Sentence) string {
	if m := emailRe.FindString(s.Normalized()); m != "" {
		return m
	}
	return ExtractRole(s)
}

// ExtractRole returns the first role keyword in the sentence, title-cased, or
// empty if none is present.
func ExtractRole(s annotation.Sentence) string {
	lower := s.Lower()
	for _, kw := range roleKeywords {
		if strings.Contains(lower, kw) {
			return titleCase(kw)
		}
	}
	return ""
}

// IsRequirement reports whether the sentence expresses an obligation or
// constraint.
func IsRequirement(s annotation.Sentence) bool {
	lower := s.Lower()
	for _, kw := range requirementKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// RequirementType classifies a requirement sentence as functional unless it
// names a quality attribute.
func RequirementType(s annotation.Sentence) plan.RequirementType {
	lower := s.Lower()
	for _, kw := range qualityKeywords {
		if strings.Contains(lower, kw) {
			return plan.NonFunctional
		}
	}
	return plan.Functional
}

func titleCase(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
