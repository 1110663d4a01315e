package langres

import "strings"

// LookupAliases returns the single-word aliases recorded for a canonical
// word, in file order. The second result is false when the word has none.
func (r *Resource) LookupAliases(word string) ([]string, bool) {
	found, ok := r.aliases[word]
	if !ok {
		return nil, false
	}
	return append([]string(nil), found...), true
}

// LookupMultiwordAliases returns the tokenized alias phrases recorded for a
// canonical word, in file order.
func (r *Resource) LookupMultiwordAliases(word string) ([][]string, bool) {
	found, ok := r.multiword[word]
	if !ok {
		return nil, false
	}
	out := make([][]string, len(found))
	for i, phrase := range found {
		out[i] = append([]string(nil), phrase...)
	}
	return out, true
}

// LookupNumberAliases returns the spoken forms recorded for an integer
// value, in file order across all three numbers sections.
func (r *Resource) LookupNumberAliases(value int64) ([]string, bool) {
	found, ok := r.numbers[value]
	if !ok {
		return nil, false
	}
	return append([]string(nil), found...), true
}

// NumberFor resolves a spoken form back to its integer value. A form
// recorded under more than one value keeps the first one in file order.
func (r *Resource) NumberFor(word string) (int64, bool) {
	value, ok := r.numberFor[word]
	return value, ok
}

// IsStopword reports whether word is exactly one of the stop word tokens.
func (r *Resource) IsStopword(word string) bool {
	return r.stop.isStopword(word)
}

// ContainsStopwords reports whether any stop word token occurs anywhere in
// text, including inside longer words.
func (r *Resource) ContainsStopwords(text string) bool {
	return r.stop.contains(text)
}

// StripStopwords removes every occurrence of every stop word token from
// text, then collapses whitespace runs and trims the ends.
func (r *Resource) StripStopwords(text string) string {
	for _, hit := range r.stop.hits(text) {
		text = strings.ReplaceAll(text, r.stop.tokens[hit], "")
	}
	return strings.Join(strings.Fields(text), " ")
}

// Stopwords returns the flattened stop word tokens in collection order.
func (r *Resource) Stopwords() []string {
	return append([]string(nil), r.stop.tokens...)
}
