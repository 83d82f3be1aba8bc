// Package rosterdomain holds team, member and coach types and the name rules
// used to match attendance rows against the roster.
package rosterdomain

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	guestMarker  = regexp.MustCompile(`(?i)\(\s*guest\s*\)`)
	parenthetics = regexp.MustCompile(`\s*\([^)]*\)`)
	whitespace   = regexp.MustCompile(`\s+`)
	nonNameChars = regexp.MustCompile(`[^\p{L}\p{N}' -]+`)
)

// CleanName strips meeting-report decoration from an attendee name: guest
// markers, department codes in parentheses, quotes and extra whitespace.
// "Last, First" is reordered to "First Last".
func CleanName(name string) string {
	name = guestMarker.ReplaceAllString(name, "")
	name = parenthetics.ReplaceAllString(name, "")
	name = strings.NewReplacer(`"`, "", "‘", "'", "’", "'").Replace(name)
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), " ")

	if parts := strings.Split(name, ","); len(parts) == 2 {
		last, first := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if last != "" && first != "" {
			name = first + " " + last
		}
	}
	return name
}

// NormalizeForMatching folds a cleaned name to lowercase ASCII-ish form:
// accents removed, punctuation other than apostrophes and hyphens dropped.
func NormalizeForMatching(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, CleanName(name))
	if err != nil {
		folded = CleanName(name)
	}
	folded = nonNameChars.ReplaceAllString(folded, " ")
	return strings.ToLower(whitespace.ReplaceAllString(strings.TrimSpace(folded), " "))
}

// DisplayName is the presentation form of a member's full name: the first
// and last tokens of the cleaned name.
func DisplayName(fullName string) string {
	tokens := strings.Fields(CleanName(fullName))
	switch len(tokens) {
	case 0:
		return ""
	case 1:
		return tokens[0]
	default:
		return tokens[0] + " " + tokens[len(tokens)-1]
	}
}

// SharedTokens counts the distinct normalized name tokens a and b have in
// common. Single-letter tokens (initials) are ignored.
func SharedTokens(a, b string) int {
	seen := make(map[string]struct{})
	for _, tok := range strings.Fields(NormalizeForMatching(a)) {
		if len([]rune(tok)) > 1 {
			seen[tok] = struct{}{}
		}
	}
	shared := 0
	for _, tok := range strings.Fields(NormalizeForMatching(b)) {
		if _, ok := seen[tok]; ok {
			shared++
			delete(seen, tok)
		}
	}
	return shared
}

// MinFuzzyTokens is how many name tokens a fuzzy match must share.
const MinFuzzyTokens = 2
