package langres

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Section names recognized in a language description. The three numbers
// sections feed one shared mapping.
const (
	sectionAliases  = "aliases"
	sectionStop     = "stopwords"
	sectionOrdinals = "numbers.ordinals"
	sectionPlain    = "numbers.plain"
	sectionLiterals = "numbers.literals"
)

// scan reads the description line by line, tracks the current [section] and
// hands every data line to the builder. The first bad line aborts the whole
// load.
func scan(r io.Reader, b *builder) error {
	scanner := bufio.NewScanner(r)
	section := ""
	inSection := false
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			section = sectionName(line)
			inSection = true
			continue
		}
		if !inSection {
			return fmt.Errorf("line %d: %q: %w", lineNo, line, ErrNoSection)
		}
		b.lines++
		if err := dispatch(b, section, line); err != nil {
			return fmt.Errorf("line %d: %q: %w", lineNo, line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read language description: %w", err)
	}
	return nil
}

func sectionName(line string) string {
	name := line[1:]
	if end := strings.Index(name, "]"); end >= 0 {
		name = name[:end]
	}
	return strings.TrimSpace(name)
}

func dispatch(b *builder, section, line string) error {
	switch section {
	case sectionAliases:
		return b.addAlias(line)
	case sectionStop:
		b.addStopwordLine(line)
		return nil
	case sectionOrdinals, sectionPlain, sectionLiterals:
		return b.addNumber(line)
	default:
		return fmt.Errorf("%w: [%s]", ErrUnknownSection, section)
	}
}
