package genre

import (
	"regexp"
	"strings"
)

// MixInfo is a track title split into its base name and the parenthesised
// mix annotation, e.g. "Strobe (Club Edit)" -> {"Strobe", "Club Edit"}.
type MixInfo struct {
	BaseTitle     string
	MixAnnotation string
}

var (
	mixAnnotationRe = regexp.MustCompile(`(?i)\(([^)]*(?:remix|mix|edit|dub|rework|bootleg|version|vip)[^)]*)\)`)
	parenGroupRe    = regexp.MustCompile(`\s*\([^)]*\)\s*`)
	fillerWordRe    = regexp.MustCompile(`\b(extended|original|radio)\b`)
	trailingMixRe   = regexp.MustCompile(`\s*(remix|mix|edit|dub|rework)\s*$`)
	ampersandRe     = regexp.MustCompile(`\s*&\s*`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
	stopwordRe      = regexp.MustCompile(`\b(feat\.?|ft\.?|featuring|the|a|an|of|in|on|at|to|for|and|vs\.?)\b`)
)

// genericMixNames are normalized mix names that carry no remixer identity.
var genericMixNames = map[string]bool{
	"":                  true,
	"original mix":      true,
	"extended mix":      true,
	"radio edit":        true,
	"radio mix":         true,
	"extended":          true,
	"original":          true,
	"club mix":          true,
	"extended club mix": true,
}

// ExtractMixInfo splits a title into its base name and mix annotation.
// The first parenthesised group containing a mix keyword becomes the
// annotation; all parenthesised groups are stripped from the base title.
func ExtractMixInfo(title string) MixInfo {
	var annotation string
	if m := mixAnnotationRe.FindStringSubmatch(title); m != nil {
		annotation = strings.TrimSpace(m[1])
	}
	base := parenGroupRe.ReplaceAllString(title, " ")
	base = strings.TrimSpace(whitespaceRe.ReplaceAllString(base, " "))
	return MixInfo{BaseTitle: base, MixAnnotation: annotation}
}

// NormalizeMix lowercases a mix name and strips filler words, a trailing
// mix keyword, and ampersands so that variant spellings compare equal.
func NormalizeMix(mix string) string {
	s := strings.ToLower(mix)
	s = strings.TrimSpace(fillerWordRe.ReplaceAllString(s, " "))
	s = strings.TrimSpace(trailingMixRe.ReplaceAllString(s, ""))
	s = ampersandRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
	return s
}

// IsGenericMix reports whether a mix name names no particular remixer.
func IsGenericMix(mix string) bool {
	return genericMixNames[strings.TrimSpace(strings.ToLower(mix))]
}

// RemixTokens returns the distinguishing words of a mix name, dropping
// stopwords and single-character leftovers. Used to test whether two mix
// names refer to the same remix when they do not compare exactly equal.
func RemixTokens(mix string) map[string]bool {
	s := NormalizeMix(mix)
	s = stopwordRe.ReplaceAllString(s, " ")
	tokens := make(map[string]bool)
	for _, word := range strings.Fields(s) {
		if len(word) > 1 {
			tokens[word] = true
		}
	}
	return tokens
}
