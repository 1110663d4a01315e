package normalizer

import (
	"context"
	"strings"
	"time"

	"github.com/LexRes-Go/GoLexNorm/internal/domain/model"
	"github.com/LexRes-Go/GoLexNorm/internal/service/langres"
	pkg "github.com/LexRes-Go/GoLexNorm/pkg/logger"
)

type PhraseWorker struct {
	vocab    Vocab
	res      *langres.Resource
	log      pkg.Logger
	matched  int
	rejected int
}

func NewPhraseWorker(factory VocabCreator, res *langres.Resource, log pkg.Logger) NormalizePhraseWorker {
	return &PhraseWorker{
		vocab: factory.CreateVocab(),
		res:   res,
		log:   log,
	}
}

func (w *PhraseWorker) Run(ctx context.Context, in <-chan *model.Phrase, out chan<- *model.Phrase) {
	start := time.Now()
	for phrase := range in {
		select {
		case <-ctx.Done():
			w.log.Warn("Context canceled in normalize worker")
			return
		default:
		}

		w.Normalize(phrase)
		if phrase.ErrorType == "" {
			w.matched++
		} else {
			w.rejected++
		}

		select {
		case <-ctx.Done():
			w.log.Warn("Context canceled during phrase output")
			return
		case out <- phrase:
		}
	}
	duration := time.Since(start)
	w.log.Info("PhraseWorker completed", "matched", w.matched, "rejected", w.rejected, "duration", duration.String())
}

// Normalize fills the derived fields of a phrase in place: lowercased text
// with stop words stripped, the parsed quantity, and every canonical term
// the remaining tokens match. Phrases that survive with no matching term
// are marked rejected rather than dropped, so the run report can list them.
func (w *PhraseWorker) Normalize(phrase *model.Phrase) {
	lowered := strings.ToLower(strings.Join(strings.Fields(phrase.Raw), " "))
	stripped := w.res.StripStopwords(lowered)
	if stripped == "" {
		phrase.Normalized = ""
		phrase.ErrorType = "empty after normalization"
		return
	}

	tokens := strings.Fields(stripped)
	tokens = w.ExtractQuantity(phrase, tokens)
	phrase.Normalized = strings.Join(tokens, " ")

	phrase.Terms = w.MatchTerms(tokens)
	if len(phrase.Terms) == 0 {
		phrase.ErrorType = "no term matched"
	}
}

// ExtractQuantity pulls the first token naming a number out of the token
// list and records its value. The remaining tokens go on to term matching.
func (w *PhraseWorker) ExtractQuantity(phrase *model.Phrase, tokens []string) []string {
	for i, token := range tokens {
		if value, ok := w.res.NumberFor(token); ok {
			phrase.Quantity = &value
			return append(tokens[:i], tokens[i+1:]...)
		}
	}
	return tokens
}

func (w *PhraseWorker) MatchTerms(tokens []string) []string {
	var matched []string
	for _, entry := range w.vocab.Terms {
		if w.matchesEntry(entry, tokens) {
			matched = append(matched, entry.Term)
		}
	}
	return matched
}

func (w *PhraseWorker) matchesEntry(entry TermEntry, tokens []string) bool {
	for _, token := range tokens {
		if token == entry.Term {
			return true
		}
		for _, alias := range entry.Aliases {
			if token == alias {
				return true
			}
		}
	}
	for _, phrase := range entry.Phrases {
		if containsRun(tokens, phrase) {
			return true
		}
	}
	return false
}

// containsRun reports whether needle occurs in tokens as a consecutive run.
func containsRun(tokens, needle []string) bool {
	if len(needle) == 0 || len(needle) > len(tokens) {
		return false
	}
	for i := 0; i+len(needle) <= len(tokens); i++ {
		found := true
		for j := range needle {
			if tokens[i+j] != needle[j] {
				found = false
				break
			}
		}
		if found {
			return true
		}
	}
	return false
}
