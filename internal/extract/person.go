package extract

import (
	"regexp"
	"strings"
)

// PersonOverride corrects a known contact-person mis-identification for one
// location: when the remark text for that location mentions the keyword, the
// configured name wins over whatever the patterns matched. Overrides are
// configuration data, not extractor logic.
type PersonOverride struct {
	Location string `yaml:"location"`
	Keyword  string `yaml:"keyword"`
	Name     string `yaml:"name"`
}

// personPatterns match capitalized name-like tokens adjacent to indicator
// verbs. Group 1 is always the candidate name.
var personPatterns = []*regexp.Regexp{
	regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)\s+(?i:is|was|will be|mentioned|said|still|handles|takes)\b`),
	regexp.MustCompile(`\b(?i:call|contact|speak with|talk to|meet with|schedule with)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`),
	regexp.MustCompile(`([A-Z][a-z]+)\s+(?i:the|a|an)\s+(?i:staff|manager|owner|contact|wife|husband)`),
	regexp.MustCompile(`(?i:signed\s+(?:consignment|agreement)\s+with)\s+([A-Z][a-z]+)`),
}

// personStoplist filters common capitalized non-names.
var personStoplist = map[string]bool{
	"the": true, "this": true, "that": true, "next": true, "last": true,
	"first": true, "her": true, "him": true, "them": true, "to": true,
	"call": true,
}

// OverrideFor returns the override name that applies to this shop and text,
// or "" when none does.
func OverrideFor(text, shopName string, overrides []PersonOverride) string {
	for _, o := range overrides {
		if strings.EqualFold(strings.TrimSpace(o.Location), strings.TrimSpace(shopName)) &&
			containsFold(text, o.Keyword) {
			return o.Name
		}
	}
	return ""
}

// ContactPerson extracts the contact's name from the remark text. Among
// multiple pattern matches, the earliest in document order wins. A matching
// override for the shop takes precedence over everything.
func ContactPerson(text, shopName string, overrides []PersonOverride) string {
	if name := OverrideFor(text, shopName, overrides); name != "" {
		return name
	}

	best := ""
	bestIdx := -1
	for _, pattern := range personPatterns {
		for _, m := range pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := m[2], m[3]
			name := strings.TrimSpace(text[start:end])
			if personStoplist[strings.ToLower(name)] {
				continue
			}
			if bestIdx < 0 || start < bestIdx {
				best = name
				bestIdx = start
			}
		}
	}
	return best
}

func containsFold(text, sub string) bool {
	if sub == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), strings.ToLower(sub))
}
