// Package annotation defines the linguistic annotation layer the analysis
// pipeline consumes. The concrete engine lives in infrastructure; the core
// only depends on the capability interface defined here.
package annotation

import (
	"context"
	"errors"
	"strings"
	"unicode"
)

// PartOfSpeech is a coarse word-class tag.
type PartOfSpeech string

const (
	POSVerb      PartOfSpeech = "VERB"
	POSNoun      PartOfSpeech = "NOUN"
	POSProperN   PartOfSpeech = "PROPN"
	POSAdjective PartOfSpeech = "ADJ"
	POSAdverb    PartOfSpeech = "ADV"
	POSOther     PartOfSpeech = "X"
)

// EntityType is a named-entity label. Empty means no entity.
type EntityType string

const (
	EntityNone   EntityType = ""
	EntityPerson EntityType = "PERSON"
)

// DepRoot marks the grammatical root of a sentence.
const DepRoot = "ROOT"

// ErrNoRoot is returned when a sentence carries no root token, which only
// happens on degenerate token streams (empty or punctuation-only sentences).
var ErrNoRoot = errors.New("sentence has no grammatical root")

// Token is one annotated word. Immutable once produced by a Provider.
type Token struct {
	Text   string
	Lemma  string
	POS    PartOfSpeech
	Dep    string
	Entity EntityType
}

// Sentence is one segmented unit of the document with its token annotations.
// Immutable once produced by a Provider.
type Sentence struct {
	Text   string
	Tokens []Token
}

// Normalized returns the sentence text trimmed, with embedded newlines
// collapsed to single spaces.
func (s Sentence) Normalized() string {
	fields := strings.FieldsFunc(s.Text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return strings.TrimSpace(strings.Join(fields, " "))
}

// Lower returns the normalized text lower-cased.
func (s Sentence) Lower() string {
	return strings.ToLower(s.Normalized())
}

// WordCount counts whitespace-separated words in the normalized text.
func (s Sentence) WordCount() int {
	return len(strings.Fields(s.Normalized()))
}

// Root returns the token carrying the ROOT dependency role.
func (s Sentence) Root() (Token, error) {
	for _, t := range s.Tokens {
		if t.Dep == DepRoot {
			return t, nil
		}
	}
	return Token{}, ErrNoRoot
}

// IsWord reports whether the token is lexical rather than punctuation.
func (t Token) IsWord() bool {
	for _, r := range t.Text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// Provider produces annotated sentences from raw document text.
// Implementations are constructed once at startup and reused; model load is
// the expensive step and a load failure is fatal to the process.
type Provider interface {
	ID() string
	Annotate(ctx context.Context, text string) ([]Sentence, error)
}
