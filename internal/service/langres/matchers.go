package langres

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// stopwordMatcher is the derived matcher over the flattened stop word
// tokens. It is assembled exactly once, when the builder is finalized, and
// only read after that.
type stopwordMatcher struct {
	tokens  []string
	members map[string]struct{}
	matcher *ahocorasick.Matcher
}

// assembleStopwords flattens the collected lines into the ordered token
// sequence and builds the substring matcher over the literal tokens.
func assembleStopwords(lines []string) *stopwordMatcher {
	m := &stopwordMatcher{members: make(map[string]struct{})}
	for _, line := range lines {
		for _, token := range strings.Fields(line) {
			m.tokens = append(m.tokens, token)
			m.members[token] = struct{}{}
		}
	}
	if len(m.tokens) > 0 {
		m.matcher = ahocorasick.NewStringMatcher(m.tokens)
	}
	return m
}

func (m *stopwordMatcher) isStopword(word string) bool {
	_, ok := m.members[word]
	return ok
}

func (m *stopwordMatcher) contains(text string) bool {
	if m.matcher == nil {
		return false
	}
	return m.matcher.Contains([]byte(text))
}

// hits returns the token indices occurring anywhere in text. MatchThreadSafe
// keeps the finalized resource safe for concurrent readers.
func (m *stopwordMatcher) hits(text string) []int {
	if m.matcher == nil {
		return nil
	}
	return m.matcher.MatchThreadSafe([]byte(text))
}
