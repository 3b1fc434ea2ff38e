package catalog

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Utterance is what a finished speech transcript asks to add.
type Utterance struct {
	Name     string
	Quantity string
}

var (
	addPatterns = []*regexp.Regexp{
		regexp.MustCompile(`add (.+)`),
		regexp.MustCompile(`buy (.+)`),
		regexp.MustCompile(`get (.+)`),
		regexp.MustCompile(`need (.+)`),
		regexp.MustCompile(`purchase (.+)`),
	}
	leadingCount = regexp.MustCompile(`^(\d+)\s*(.+)$`)
	leadingWord  = regexp.MustCompile(`(?i)^(of|the|a|an)\s+`)
)

// ParseUtterance extracts an item from text like "buy 2 cartons of milk".
// Without a recognised verb the whole text is the item. It reports false when
// nothing usable is left.
func ParseUtterance(text string) (Utterance, bool) {
	text = strings.TrimSpace(text)
	lower := strings.ToLower(text)

	phrase := ""
	for _, p := range addPatterns {
		if m := p.FindStringSubmatch(lower); m != nil {
			phrase = strings.TrimSpace(m[1])
			break
		}
	}
	if phrase == "" {
		phrase = text
	}

	var u Utterance
	if m := leadingCount.FindStringSubmatch(phrase); m != nil {
		u.Quantity = m[1]
		phrase = m[2]
	}

	name := strings.TrimSpace(leadingWord.ReplaceAllString(phrase, ""))
	if name == "" {
		return Utterance{}, false
	}
	u.Name = capitalize(name)
	return u, true
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
