// Package langres loads a sectioned language description file and exposes
// it as a read-only lookup resource: word aliases, alias phrases, spoken
// number forms and the stop word set.
package langres

import "io"

// Resource is a finalized language description. It is built in one pass by
// Load and never mutated afterwards, so any number of goroutines may query
// it concurrently.
type Resource struct {
	aliases   map[string][]string
	multiword map[string][][]string
	numbers   map[int64][]string
	numberFor map[string]int64
	stop      *stopwordMatcher
	lines     int
}

// Stats counts the entries of a loaded Resource. Lines is the number of
// data lines consumed, including tolerated stop word repeats.
type Stats struct {
	Aliases   int
	Multiword int
	Numbers   int
	Stopwords int
	Lines     int
}

// Load parses a language description from r. Any malformed, misplaced or
// duplicated line aborts the load with an error naming the line; a partially
// built Resource is never returned.
func Load(r io.Reader) (*Resource, error) {
	b := newBuilder()
	if err := scan(r, b); err != nil {
		return nil, err
	}
	return &Resource{
		aliases:   b.aliases,
		multiword: b.multiword,
		numbers:   b.numbers,
		numberFor: b.numberFor,
		stop:      assembleStopwords(b.stopLines),
		lines:     b.lines,
	}, nil
}

// Stats reports entry counts for the loaded resource.
func (r *Resource) Stats() Stats {
	s := Stats{Stopwords: len(r.stop.tokens), Lines: r.lines}
	for _, v := range r.aliases {
		s.Aliases += len(v)
	}
	for _, v := range r.multiword {
		s.Multiword += len(v)
	}
	for _, v := range r.numbers {
		s.Numbers += len(v)
	}
	return s
}
