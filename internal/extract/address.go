package extract

import (
	"regexp"
	"strings"
)

var (
	statePattern = regexp.MustCompile(`\b([A-Z]{2})\b`)

	addressPattern = regexp.MustCompile(`(?i)(\d+\s+[A-Za-z0-9\s]+?(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Court|Ct|Place|Pl|Parkway|Pkwy))\b`)
)

// stateAbbrs is the set of two-letter tokens accepted as a US state, so that
// acronyms and time-of-day tokens ("AM", "OK"... well, OK is a state) don't
// leak into the state field.
var stateAbbrs = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// clockWords knock out the known street-address false positives like
// "10 o'clock" and "9 AM sharp".
var clockWords = map[string]bool{"o": true, "clock": true, "o'clock": true, "am": true, "pm": true}

// Address extracts a street address, city, and state from the text. The
// three parts are independent: any of them may come back empty. This is a
// best-effort heuristic, not a parser; adversarial prose yields empty
// strings, never an error.
func Address(text string) (address, city, state string) {
	for _, m := range statePattern.FindAllStringSubmatch(text, -1) {
		if stateAbbrs[m[1]] {
			state = m[1]
			break
		}
	}

	if m := addressPattern.FindStringSubmatch(text); m != nil {
		candidate := strings.TrimSpace(m[1])
		if plausibleAddress(candidate) {
			address = candidate
		}
	}

	if state != "" {
		cityPattern := regexp.MustCompile(`([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?),?\s*` + state + `\b`)
		if m := cityPattern.FindStringSubmatch(text); m != nil {
			city = strings.TrimSpace(m[1])
		}
	}

	return address, city, state
}

func plausibleAddress(candidate string) bool {
	words := strings.Fields(candidate)
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		if clockWords[strings.ToLower(strings.Trim(w, "'."))] {
			return false
		}
	}
	return true
}
