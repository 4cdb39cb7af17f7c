package parser

import (
	"regexp"
	"strings"
)

var (
	leadingOfRe = regexp.MustCompile(`(?i)^of\s+`)

	// parenRe finds an innermost parenthetical. Its content is limited to
	// word characters, whitespace and - ' " & * ! , \ ? .
	parenRe = regexp.MustCompile(`\(([\w\s\-'"&*!,\\?.]*)\)`)

	leadingOrRe      = regexp.MustCompile(`(?i)^or\s+`)
	innerListRe      = regexp.MustCompile(`(?i),|\sor\s`)
	alternativeSepRe = regexp.MustCompile(`(?i)\s*,\s*(?:or\s+)?|\s+or\s+`)
)

// parenKind classifies the content of a parenthetical.
type parenKind int

const (
	// parenNote is an annotation: "(optional)", "(about 3 medium)".
	parenNote parenKind = iota

	// parenAltSingle offers one alternative: "(or margarine)".
	parenAltSingle

	// parenAltList offers several: "(or margarine, or shortening)".
	parenAltList
)

func classifyParen(content string) parenKind {
	if !leadingOrRe.MatchString(content) {
		return parenNote
	}
	if innerListRe.MatchString(content[2:]) {
		return parenAltList
	}
	return parenAltSingle
}

// nameResult is what the name stage reads from the rest of the line.
type nameResult struct {
	names   []string
	details []string
}

// extractName splits the text after the measurements into ingredient names
// and annotations. Alternatives written inline or in parentheses become
// separate names. Parenthetical notes come first in details, followed by
// the text after the first comma that does not continue an "or" list.
func extractName(rest string) nameResult {
	var res nameResult

	s := leadingOfRe.ReplaceAllString(strings.TrimSpace(rest), "")

	for {
		m := parenRe.FindStringSubmatchIndex(s)
		if m == nil {
			break
		}
		before, after := s[:m[0]], s[m[1]:]
		content := strings.TrimSpace(s[m[2]:m[3]])

		switch classifyParen(content) {
		case parenAltList:
			s = joinText(before, ", "+content+" "+strings.TrimSpace(after))
		case parenAltSingle:
			s = joinText(joinText(before, content), after)
		default:
			if content != "" {
				res.details = append(res.details, content)
			}
			s = joinText(before, after)
		}
	}

	name, trailing := splitAnnotation(s)
	if trailing != "" {
		res.details = append(res.details, trailing)
	}

	for _, n := range alternativeSepRe.Split(name, -1) {
		if n = strings.TrimSpace(n); n != "" {
			res.names = append(res.names, n)
		}
	}
	return res
}

// splitAnnotation splits s at the first comma after which no comma-separated
// segment starts with "or". Commas inside an "or" list such as
// "salt, pepper, or paprika" therefore stay in the name.
func splitAnnotation(s string) (name, annotation string) {
	segments := strings.Split(s, ",")
	for i := 0; i < len(segments)-1; i++ {
		if continuesAlternatives(segments[i+1:]) {
			continue
		}
		name = strings.Join(segments[:i+1], ",")
		annotation = strings.Join(segments[i+1:], ",")
		return strings.TrimSpace(name), strings.TrimSpace(annotation)
	}
	return strings.TrimSpace(s), ""
}

func continuesAlternatives(segments []string) bool {
	for _, seg := range segments {
		if leadingOrRe.MatchString(strings.TrimSpace(seg)) {
			return true
		}
	}
	return false
}
