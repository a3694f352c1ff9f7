package extract

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	urlPatterns = []*regexp.Regexp{
		regexp.MustCompile(`https?://[^\s]+`),
		regexp.MustCompile(`www\.[^\s]+`),
		regexp.MustCompile(`\b[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:\.[a-zA-Z]{2,})?\b`),
	}

	instagramURL  = regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)`)
	// A handle's "@" must not be preceded by an email local part.
	handlePattern = regexp.MustCompile(`(?:^|[^A-Za-z0-9._%+-])@([a-zA-Z0-9_.]+)`)
)

// socialHosts are hosts that Website must not mistake for a site of the
// shop's own.
var socialHosts = []string{"instagram.com", "facebook.com", "tiktok.com", "twitter.com", "x.com"}

// Email returns the first email address in the text.
func Email(text string) string {
	return emailPattern.FindString(text)
}

// Website returns the first URL-looking token in the text, preferring
// absolute URLs over www-prefixed hosts over bare domains. Social-media
// profiles and anything containing "@" are rejected so that handles and
// emails are not misread as websites. Bare hosts get an "http://" scheme.
func Website(text string) string {
	for _, pattern := range urlPatterns {
		for _, loc := range pattern.FindAllStringIndex(text, -1) {
			// A domain touching an "@" on either side is part of an email or
			// handle, not a site.
			if loc[0] > 0 && text[loc[0]-1] == '@' {
				continue
			}
			if loc[1] < len(text) && text[loc[1]] == '@' {
				continue
			}
			url := strings.Trim(text[loc[0]:loc[1]], ".,;")
			if !strings.HasPrefix(url, "http") {
				url = "http://" + url
			}
			if isSocialOrHandle(url) {
				continue
			}
			return url
		}
	}
	return ""
}

func isSocialOrHandle(url string) bool {
	lower := strings.ToLower(url)
	if strings.Contains(lower, "@") {
		return true
	}
	for _, host := range socialHosts {
		if strings.Contains(lower, host) {
			return true
		}
	}
	return false
}

// Instagram returns the shop's Instagram handle, derived from a profile URL
// or from a bare @handle token. The result always carries a leading "@".
func Instagram(text string) string {
	if m := instagramURL.FindStringSubmatch(text); m != nil {
		return "@" + strings.Trim(m[1], ".")
	}
	if m := handlePattern.FindStringSubmatch(text); m != nil {
		return "@" + strings.Trim(m[1], ".")
	}
	return ""
}
