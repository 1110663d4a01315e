package langres

import (
	"fmt"
	"strconv"
	"strings"
)

// builder accumulates entries during the load pass. It has no query surface
// on purpose: lookups exist only on the finalized Resource, so a half-built
// description can never be read.
type builder struct {
	aliases   map[string][]string
	multiword map[string][][]string
	numbers   map[int64][]string
	numberFor map[string]int64

	stopLines []string
	seenLines map[string]struct{}

	lines int
}

func newBuilder() *builder {
	return &builder{
		aliases:   make(map[string][]string),
		multiword: make(map[string][][]string),
		numbers:   make(map[int64][]string),
		numberFor: make(map[string]int64),
		seenLines: make(map[string]struct{}),
	}
}

// addAlias consumes one line of the aliases section. The line splits on the
// first "=" only, so a canonical word may itself contain "=". An alias with
// inner spaces after unquoting is a phrase alias.
func (b *builder) addAlias(line string) error {
	parts := strings.SplitN(line, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("%w: want alias = canonical", ErrMalformedLine)
	}
	alias := unquote(strings.TrimSpace(parts[0]))
	canonical := unquote(strings.TrimSpace(parts[1]))

	if strings.Contains(alias, " ") {
		return b.insertMultiword(canonical, strings.Fields(alias))
	}
	return b.insertAlias(canonical, alias)
}

func (b *builder) insertAlias(canonical, alias string) error {
	for _, known := range b.aliases[canonical] {
		if known == alias {
			return fmt.Errorf("%w: %q already has alias %q", ErrRedundantEntry, canonical, alias)
		}
	}
	b.aliases[canonical] = append(b.aliases[canonical], alias)
	return nil
}

func (b *builder) insertMultiword(canonical string, phrase []string) error {
	for _, known := range b.multiword[canonical] {
		if equalPhrase(known, phrase) {
			return fmt.Errorf("%w: %q already has alias %q",
				ErrRedundantEntry, canonical, strings.Join(phrase, " "))
		}
	}
	b.multiword[canonical] = append(b.multiword[canonical], phrase)
	return nil
}

// addNumber consumes one line of any numbers section. All three sections
// feed the same mapping, so an alias for a value must be unique across them.
func (b *builder) addNumber(line string) error {
	parts := strings.Split(line, "=")
	if len(parts) != 2 {
		return fmt.Errorf("%w: want alias = integer", ErrMalformedLine)
	}
	alias := strings.TrimSpace(parts[0])
	raw := strings.TrimSpace(parts[1])
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not an integer", ErrMalformedLine, raw)
	}
	for _, known := range b.numbers[value] {
		if known == alias {
			return fmt.Errorf("%w: %d already has alias %q", ErrRedundantEntry, value, alias)
		}
	}
	b.numbers[value] = append(b.numbers[value], alias)
	if _, ok := b.numberFor[alias]; !ok {
		b.numberFor[alias] = value
	}
	return nil
}

// addStopwordLine records one raw stopwords line. A whole-line repeat is
// silently dropped; a token repeated across different lines is kept.
func (b *builder) addStopwordLine(line string) {
	if _, ok := b.seenLines[line]; ok {
		return
	}
	b.seenLines[line] = struct{}{}
	b.stopLines = append(b.stopLines, line)
}

// unquote strips one layer of surrounding double quotes, each side
// independently.
func unquote(s string) string {
	s = strings.TrimPrefix(s, `"`)
	return strings.TrimSuffix(s, `"`)
}

func equalPhrase(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
