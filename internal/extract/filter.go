package extract

import (
	"strings"
	"unicode"

	"github.com/mlazarov/confminer/internal/textnorm"
)

// primaryBlacklist holds administrative and navigation section names
// that are never person entries. Rejects on exact match, or on substring
// match for short texts.
var primaryBlacklist = []string{
	"accepted papers", "call for papers", "code of conduct", "charter",
	"schedule", "speakers", "poster", "pictures", "sponsors", "partners",
	"proceedings", "registration", "venue", "travel",
	"accommodation", "contact", "about", "home", "news", "archive",
	"previous", "next", "program", "tutorials", "workshops",
	"members only", "login", "logout", "search",
}

// navBlacklist holds social platforms and committee-section names that
// appear in site navigation. Rejected more aggressively, unless the text
// otherwise looks like a capitalized personal name.
var navBlacklist = []string{
	"twitter", "youtube", "linkedin", "facebook", "instagram",
	"steering committee", "program committee", "organizing committee",
	"general chairs", "program chairs", "local arrangements",
}

// FilterEntry decides whether a raw entry can be a person record.
// Rejections are expected and frequent; they are dropped silently rather
// than reported as errors. Must run before field extraction, which is
// not defensive against navigation junk.
func FilterEntry(e RawEntry) bool {
	text := textnorm.Collapse(e.Text)
	if len(text) < 3 || len(text) > 300 {
		return false
	}

	if textnorm.IsAllUpper(text) {
		return false
	}

	if strings.Contains(text, "http://") || strings.Contains(text, "https://") || strings.Contains(text, "www.") {
		return false
	}

	if textnorm.AlphaCount(text) < 3 {
		return false
	}

	words := strings.Fields(text)
	if len(words) < 2 && !strings.Contains(text, "(") {
		return false
	}

	lower := strings.ToLower(text)

	for _, item := range navBlacklist {
		if strings.Contains(lower, item) && len(text) < 100 && !looksLikePersonName(words) {
			return false
		}
	}

	for _, item := range primaryBlacklist {
		if item == lower || (strings.Contains(lower, item) && len(text) < 30) {
			return false
		}
	}

	return true
}

// looksLikePersonName requires at least two words with at least one
// starting upper-case, which exempts entries such as
// "Jane Doe, Program Committee" from the navigation blacklist.
func looksLikePersonName(words []string) bool {
	if len(words) < 2 {
		return false
	}
	for _, w := range words {
		for _, r := range w {
			if unicode.IsUpper(r) {
				return true
			}
			break
		}
	}
	return false
}
