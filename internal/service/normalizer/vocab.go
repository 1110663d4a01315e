package normalizer

import (
	"strings"

	"github.com/LexRes-Go/GoLexNorm/internal/service/langres"
)

type DefaultVocabCreator struct {
	res   *langres.Resource
	terms []string
}

// TermEntry is one canonical term with every surface form that matches it:
// the term itself, its single-word aliases and its alias phrases. All forms
// are lowercased to line up with the worker's lowercased input.
type TermEntry struct {
	Term    string
	Aliases []string
	Phrases [][]string
}

type Vocab struct {
	Terms []TermEntry
}

func NewVocabCreator(res *langres.Resource, terms []string) VocabCreator {
	return &DefaultVocabCreator{
		res:   res,
		terms: terms,
	}
}

func (c *DefaultVocabCreator) CreateVocab() Vocab {
	entries := make([]TermEntry, 0, len(c.terms))
	for _, term := range c.terms {
		entry := TermEntry{Term: strings.ToLower(term)}
		if aliases, ok := c.res.LookupAliases(term); ok {
			for _, alias := range aliases {
				entry.Aliases = append(entry.Aliases, strings.ToLower(alias))
			}
		}
		if phrases, ok := c.res.LookupMultiwordAliases(term); ok {
			for _, phrase := range phrases {
				lowered := make([]string, len(phrase))
				for i, token := range phrase {
					lowered[i] = strings.ToLower(token)
				}
				entry.Phrases = append(entry.Phrases, lowered)
			}
		}
		entries = append(entries, entry)
	}
	return Vocab{Terms: entries}
}
