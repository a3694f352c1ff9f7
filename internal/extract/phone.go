// Package extract holds the pattern extractors that pull structured fields
// out of free-text visit remarks. Every extractor is a pure function
// returning "" when the text contains no recognizable value.
package extract

import (
	"regexp"
	"strings"
)

var (
	phonePattern = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10}`)
	cellPattern  = regexp.MustCompile(`(?i)(?:cell\s+phone|cell|mobile\s+phone|mobile)\s*:?\s*(\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}|\d{10})`)
	nonDigit     = regexp.MustCompile(`\D`)
)

// Phone finds the first 10-digit North-American number in the text, in
// parenthesized, hyphenated, dotted, spaced, or bare form, and normalizes it
// to "(XXX) XXX-XXXX". Matches with any other digit count are discarded.
func Phone(text string) string {
	for _, m := range phonePattern.FindAllString(text, -1) {
		if p := normalizePhone(m); p != "" {
			return p
		}
	}
	return ""
}

// CellPhone matches a phone number only when it is immediately preceded by a
// "cell"/"mobile" marker. A bare number is not a cell phone.
func CellPhone(text string) string {
	m := cellPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return normalizePhone(m[1])
}

func normalizePhone(raw string) string {
	digits := nonDigit.ReplaceAllString(raw, "")
	if len(digits) != 10 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(digits[:3])
	b.WriteString(") ")
	b.WriteString(digits[3:6])
	b.WriteByte('-')
	b.WriteString(digits[6:])
	return b.String()
}
