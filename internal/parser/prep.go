package parser

import (
	"regexp"
	"strings"
)

// PrepSplitter pulls a leading preparation phrase ("finely chopped") out
// of annotation text.
type PrepSplitter struct {
	re *regexp.Regexp
}

// NewPrepSplitter builds a splitter from preparation states ("chopped")
// and the adverbs that may precede them ("finely").
func NewPrepSplitter(states, adverbs []string) *PrepSplitter {
	if len(states) == 0 {
		return &PrepSplitter{}
	}
	pattern := `(?i)^((?:(?:` + quoteAll(adverbs) + `)\s+)?(?:` + quoteAll(states) + `))\b,?\s*`
	if len(adverbs) == 0 {
		pattern = `(?i)^((?:` + quoteAll(states) + `))\b,?\s*`
	}
	return &PrepSplitter{re: regexp.MustCompile(pattern)}
}

// Split returns the preparation phrase at the start of text and the text
// after it. Without a phrase, prep is empty and rest is text.
func (s *PrepSplitter) Split(text string) (prep, rest string) {
	text = strings.TrimSpace(text)
	if s == nil || s.re == nil {
		return "", text
	}
	m := s.re.FindStringSubmatchIndex(text)
	if m == nil {
		return "", text
	}
	return text[m[2]:m[3]], strings.TrimSpace(text[m[1]:])
}

func quoteAll(words []string) string {
	quoted := make([]string, 0, len(words))
	for _, w := range words {
		quoted = append(quoted, regexp.QuoteMeta(w))
	}
	return strings.Join(quoted, "|")
}
