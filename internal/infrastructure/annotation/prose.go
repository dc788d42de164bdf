// Package annotation provides the prose-backed implementation of the
// annotation provider. prose supplies segmentation, tokenization,
// Penn-Treebank POS tags and person NER; the dependency-root and lemma
// capabilities are approximated on top with deterministic rules, since prose
// carries no dependency parser.
package annotation

import (
	"context"
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"

	domain "github.com/kensho-project/kensho/internal/domain/annotation"
)

// ProseProvider implements annotation.Provider. Construct once per process:
// the first document pays the model-load cost, which NewProseProvider fronts
// so a broken model install fails at startup instead of mid-request.
type ProseProvider struct{}

// NewProseProvider warms the prose model and returns the provider. A load
// failure here is fatal to the caller by contract.
func NewProseProvider() (*ProseProvider, error) {
	if _, err := prose.NewDocument("Warm up the model."); err != nil {
		return nil, fmt.Errorf("failed to load prose model: %w", err)
	}
	return &ProseProvider{}, nil
}

func (p *ProseProvider) ID() string { return "prose" }

// Annotate segments the text and annotates each sentence. The ctx is checked
// between sentences so oversized documents can be abandoned by the caller.
func (p *ProseProvider) Annotate(ctx context.Context, text string) ([]domain.Sentence, error) {
	seg, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, fmt.Errorf("sentence segmentation failed: %w", err)
	}

	var sentences []domain.Sentence
	for _, sent := range seg.Sentences() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.TrimSpace(sent.Text) == "" {
			continue
		}

		doc, err := prose.NewDocument(sent.Text, prose.WithSegmentation(false))
		if err != nil {
			return nil, fmt.Errorf("sentence annotation failed: %w", err)
		}

		tokens := annotateTokens(doc.Tokens())
		sentences = append(sentences, domain.Sentence{
			Text:   sent.Text,
			Tokens: tokens,
		})
	}
	return sentences, nil
}

// annotateTokens maps prose tokens onto domain tokens and assigns the
// grammatical root.
func annotateTokens(proseTokens []prose.Token) []domain.Token {
	tokens := make([]domain.Token, 0, len(proseTokens))
	for _, pt := range proseTokens {
		tokens = append(tokens, domain.Token{
			Text:   pt.Text,
			Lemma:  lemmatize(pt.Text),
			POS:    mapPOS(pt.Tag),
			Entity: mapEntity(pt.Label),
		})
	}
	if i := rootIndex(tokens); i >= 0 {
		tokens[i].Dep = domain.DepRoot
		if tokens[i].POS != domain.POSVerb && isBaseVerb(tokens[i].Text) {
			// Imperative reading: the tagger marks sentence-initial verbs as
			// proper nouns when capitalized.
			tokens[i].POS = domain.POSVerb
		}
	}
	return tokens
}

// rootIndex picks the main predicate: the first verb-tagged token, or the
// first lexical token that reads as a base-form verb (imperative sentences).
// Returns -1 when the sentence has no plausible predicate.
func rootIndex(tokens []domain.Token) int {
	for i, t := range tokens {
		if t.POS == domain.POSVerb {
			return i
		}
	}
	for i, t := range tokens {
		if !t.IsWord() {
			continue
		}
		if isBaseVerb(t.Text) {
			return i
		}
		break // only the sentence-initial word carries the imperative reading
	}
	return -1
}

// mapPOS collapses Penn Treebank tags onto the coarse domain tag set.
func mapPOS(tag string) domain.PartOfSpeech {
	switch {
	case strings.HasPrefix(tag, "VB") || tag == "MD":
		return domain.POSVerb
	case tag == "NNP" || tag == "NNPS":
		return domain.POSProperN
	case strings.HasPrefix(tag, "NN"):
		return domain.POSNoun
	case strings.HasPrefix(tag, "JJ"):
		return domain.POSAdjective
	case strings.HasPrefix(tag, "RB"):
		return domain.POSAdverb
	default:
		return domain.POSOther
	}
}

// mapEntity reads prose IOB chunk labels ("B-PERSON", "I-PERSON").
func mapEntity(label string) domain.EntityType {
	if strings.HasSuffix(label, "PERSON") {
		return domain.EntityPerson
	}
	return domain.EntityNone
}
