package extract

import (
	"strings"
	"unicode"

	"github.com/mlazarov/confminer/internal/textnorm"
)

// Fields is the result of splitting one entry into its parts.
// Affiliation may be empty; RoleText is whatever remains for the role
// classifier to scan.
type Fields struct {
	Name        string
	Affiliation string
	RoleText    string
}

// institutionKeywords mark where an affiliation starts inside an
// undelimited "Name Institution" run.
var institutionKeywords = map[string]bool{
	"university": true, "institute": true, "college": true, "laboratory": true,
	"center": true, "centre": true, "school": true, "department": true,
	"lab": true, "research": true, "academy": true, "national": true,
	"ministry": true, "agency": true, "corporation": true, "company": true,
	"foundation": true, "society": true, "organization": true,
	"organisation": true, "consortium": true, "jpmorgan": true,
	"amazon": true, "google": true, "microsoft": true, "ibm": true,
	"aws": true, "ntt": true, "cesga": true, "cnrs": true, "inria": true,
	"eth": true, "mit": true, "caltech": true, "weizmann": true,
	"fraunhofer": true, "hhh": true, "iis": true,
}

// Multi-word place names directly preceding an institution keyword are
// absorbed into the affiliation ("New York University", "Hong Kong
// University of Science and Technology").
var (
	geoPrefixTail = map[string]bool{
		"new": true, "york": true, "hong": true, "kong": true, "san": true,
		"los": true, "tel": true, "aviv": true, "rio": true, "cape": true,
		"town": true, "mexico": true, "city": true,
	}
	geoPrefixHead = map[string]bool{
		"new": true, "san": true, "hong": true, "tel": true, "rio": true, "cape": true,
	}
)

// roleMarkers decide whether the text after a delimiter is a role
// description rather than an affiliation.
var roleMarkers = []string{
	"chair", "member", "organizer",
	"webmaster", "registration", "publicity", "poster", "visa", "sponsor",
}

// splitRule is one delimiter pattern. Rules are evaluated top-down; the
// first matching rule wins, so the priority order is the table order.
type splitRule struct {
	name  string
	match func(text string) bool
	split func(text string) Fields
}

var splitRules = []splitRule{
	{"site", matchSite, splitSite},
	{"paren", matchParen, splitParen},
	{"dash", matchDash, splitDash},
	{"comma", matchComma, splitComma},
}

// SplitFields splits an entry into name, affiliation, and role text
// using the first matching delimiter rule. When no delimiter matches,
// the whole text serves as both name and role text, so a bare name is
// still scanned for inline role keywords. Returns false when the
// resulting name fails validation (length 3-100 after normalization,
// mixed case).
func SplitFields(text string) (Fields, bool) {
	text = textnorm.Collapse(text)

	var f Fields
	matched := false
	for _, rule := range splitRules {
		if rule.match(text) {
			f = rule.split(text)
			matched = true
			break
		}
	}
	if !matched {
		f = Fields{Name: text, RoleText: text}
	}

	f.Name = textnorm.CleanName(f.Name)
	f.Affiliation = textnorm.Affiliation(f.Affiliation)

	if len(f.Name) < 3 || len(f.Name) > 100 {
		return Fields{}, false
	}
	if textnorm.IsAllUpper(f.Name) || textnorm.IsAllLower(f.Name) {
		return Fields{}, false
	}
	return f, true
}

// " Site " delimiter: a site-template artifact of the form
// "Anne Broadbent University of Ottawa Site PC primary chair".

func matchSite(text string) bool { return strings.Contains(text, " Site ") }

func splitSite(text string) Fields {
	parts := strings.SplitN(text, " Site ", 2)
	before, after := parts[0], ""
	if len(parts) > 1 {
		after = parts[1]
	}

	words := strings.Fields(before)
	nameEnd := siteNameBoundary(words)

	f := Fields{
		Name:     strings.Join(words[:nameEnd], " "),
		RoleText: after,
	}
	if nameEnd < len(words) {
		f.Affiliation = strings.Join(words[nameEnd:], " ")
	}
	return f
}

// siteNameBoundary finds where the name stops and the affiliation
// begins: at the first institution keyword, pulled back over a
// geographic prefix when one precedes it. Without a keyword the name is
// the first one to three words, stopping at the first lowercase word.
func siteNameBoundary(words []string) int {
	for i := 1; i < len(words); i++ {
		if !institutionKeywords[strings.ToLower(words[i])] {
			continue
		}
		start := i
		if i > 2 && geoPrefixTail[strings.ToLower(words[i-1])] {
			start = i - 1
			if i > 3 && geoPrefixHead[strings.ToLower(words[i-2])] {
				start = i - 2
			}
		}
		return start
	}

	limit := min(3, len(words))
	for i := 1; i < min(4, len(words)); i++ {
		runes := []rune(words[i])
		if len(runes) > 0 && !unicode.IsUpper(runes[0]) {
			return i
		}
	}
	return limit
}

// Parenthetical delimiter: "Name (Affiliation)" or "Name (role)".

func matchParen(text string) bool {
	return strings.Contains(text, "(") && strings.Contains(text, ")")
}

func splitParen(text string) Fields {
	parts := strings.SplitN(text, "(", 2)
	f := Fields{Name: strings.TrimSpace(parts[0])}

	rest := parts[1]
	end := strings.Index(rest, ")")
	if end < 0 {
		return f
	}

	inParens := rest[:end]
	if containsRoleMarker(inParens) {
		f.RoleText = inParens
	} else {
		f.Affiliation = inParens
	}

	if after := strings.TrimSpace(rest[end+1:]); after != "" {
		if f.RoleText != "" {
			f.RoleText += " " + after
		} else {
			f.RoleText = after
		}
	}
	return f
}

// Dash delimiter: en-dash, em-dash, or hyphen with surrounding
// whitespace. A bare hyphen inside a hyphenated name never splits.

var dashSeparators = []string{" - ", " – ", " — "}

func matchDash(text string) bool {
	for _, sep := range dashSeparators {
		if strings.Contains(text, sep) {
			return true
		}
	}
	return false
}

func splitDash(text string) Fields {
	for _, sep := range dashSeparators {
		if idx := strings.Index(text, sep); idx >= 0 {
			return splitAtRest(text[:idx], text[idx+len(sep):])
		}
	}
	return Fields{Name: text}
}

// Comma delimiter: "Name, Affiliation" or "Name, role".

func matchComma(text string) bool { return strings.Contains(text, ",") }

func splitComma(text string) Fields {
	parts := strings.SplitN(text, ",", 2)
	rest := ""
	if len(parts) > 1 {
		rest = parts[1]
	}
	return splitAtRest(parts[0], rest)
}

// splitAtRest classifies the text after a dash or comma as role text
// when it carries a role keyword, otherwise as affiliation.
func splitAtRest(name, rest string) Fields {
	f := Fields{Name: strings.TrimSpace(name)}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return f
	}
	if containsRoleMarker(rest) {
		f.RoleText = rest
	} else {
		f.Affiliation = rest
	}
	return f
}

func containsRoleMarker(s string) bool {
	lower := strings.ToLower(s)
	for _, marker := range roleMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
