package moderation

import (
	"fmt"
	"log/slog"
	"unicode"

	goahocorasick "github.com/anknown/ahocorasick"
)

// Moderator masks forbidden words in message content before it is stored.
// Matching ignores case, punctuation, spacing and common leet substitutions,
// so "B.4.d.g.€r" is caught by "badger".
type Moderator struct {
	log          *slog.Logger
	matcher      *goahocorasick.Machine
	words        map[string]string
	censoredChar rune
}

// positions maps each normalized rune back to its index in the original text.
type positions struct {
	normalized []rune
	original   []int
}

// NewModerator builds the automaton. Words that normalize to nothing are ignored.
func NewModerator(censoredWords []string, censoredChar rune, log *slog.Logger) (*Moderator, error) {
	m := &Moderator{log: log, words: make(map[string]string), censoredChar: censoredChar}
	var patterns [][]rune
	for _, word := range censoredWords {
		pattern := normalizeRunes([]rune(word))
		if len(pattern) == 0 {
			continue
		}
		if _, ok := m.words[string(pattern)]; ok {
			continue
		}
		m.words[string(pattern)] = word
		patterns = append(patterns, pattern)
	}
	if len(patterns) == 0 {
		return m, nil
	}

	m.matcher = new(goahocorasick.Machine)
	if err := m.matcher.Build(patterns); err != nil {
		return nil, fmt.Errorf("building censor automaton: %w", err)
	}
	log.Debug("Moderator ready", "words", len(patterns))
	return m, nil
}

// Censor returns the content with every match masked rune by rune, and the
// dictionary words found, in order of appearance. Spacing is preserved.
func (m *Moderator) Censor(content string) (string, []string) {
	if m.matcher == nil {
		return content, nil
	}
	pos := normalize(content)
	if len(pos.normalized) == 0 {
		return content, nil
	}
	spans := m.matcher.MultiPatternSearch(pos.normalized, false)
	if len(spans) == 0 {
		return content, nil
	}

	runes := []rune(content)
	var found []string
	for _, span := range spans {
		start, end := span.Pos, span.Pos+len(span.Word)
		if start < 0 || end > len(pos.original) {
			continue
		}
		for i := pos.original[start]; i <= pos.original[end-1]; i++ {
			runes[i] = m.censoredChar
		}
		found = append(found, m.words[string(span.Word)])
	}
	return string(runes), found
}

// ReplacementRune reads MODERATION_CHARACTER_REPLACEMENT, which must be exactly one character.
func ReplacementRune(s string) (rune, error) {
	r := []rune(s)
	if len(r) != 1 {
		return 0, fmt.Errorf("replacement must be a single character, got %q", s)
	}
	return r[0], nil
}

func normalize(input string) positions {
	runes := []rune(input)
	pos := positions{
		normalized: make([]rune, 0, len(runes)),
		original:   make([]int, 0, len(runes)),
	}
	for i, r := range runes {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		pos.normalized = append(pos.normalized, unicode.ToLower(clean))
		pos.original = append(pos.original, i)
	}
	return pos
}

func normalizeRunes(input []rune) []rune {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		clean := simplifyRune(r)
		if isNoise(clean) {
			continue
		}
		out = append(out, unicode.ToLower(clean))
	}
	return out
}

// simplifyRune undoes leet speak.
func simplifyRune(r rune) rune {
	switch r {
	case '4', '@':
		return 'a'
	case '3', '€':
		return 'e'
	case '1', '!', '|':
		return 'i'
	case '0':
		return 'o'
	case '5', '$':
		return 's'
	default:
		return r
	}
}

func isNoise(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r)
}
