// Package textnorm reduces names, affiliations, and titles to canonical
// forms used for comparison. Normalized strings are never displayed;
// display fields keep their original casing and punctuation.
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	honorificRe     = regexp.MustCompile(`(?i)\b(Dr\.|Prof\.|Jr\.|Sr\.|Ph\.?D\.?|M\.?D\.?)\b`)
	bracketNoteRe   = regexp.MustCompile(`\s*\[[^\]]*\]\s*`)
	sessionPrefixRe = regexp.MustCompile(`(?i)^(TUTORIAL|PLENARY|SHORT PLENARY \d+|INVITED PLENARY \d*):?\s*`)
)

// Collapse trims and collapses all runs of whitespace to single spaces.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanName is the display form of a name: whitespace collapsed, casing
// and diacritics preserved.
func CleanName(name string) string {
	return Collapse(name)
}

// Name is the identity key for a person: honorifics stripped, whitespace
// collapsed, lower-cased, diacritics removed. Idempotent.
func Name(name string) string {
	name = honorificRe.ReplaceAllString(name, "")
	name = StripDiacritics(name)
	return strings.ToLower(Collapse(name))
}

// Affiliation collapses whitespace and maps blank strings to "".
func Affiliation(affiliation string) string {
	return Collapse(affiliation)
}

// Title is the comparison form of a talk or schedule title: bracketed
// annotations (e.g. "[remote]") removed, session-type prefixes stripped,
// NFD-decomposed with combining marks dropped, lower-cased, punctuation
// replaced by spaces, whitespace collapsed. Idempotent.
func Title(title string) string {
	title = bracketNoteRe.ReplaceAllString(title, " ")
	title = sessionPrefixRe.ReplaceAllString(title, "")
	title = StripDiacritics(title)
	title = strings.ToLower(title)

	var buf strings.Builder
	buf.Grow(len(title))
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			buf.WriteRune(r)
		} else {
			buf.WriteRune(' ')
		}
	}
	return Collapse(buf.String())
}

// StripDiacritics decomposes to NFD and drops combining marks, so
// "Schrödinger" and "Schrodinger" compare equal.
func StripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var buf strings.Builder
	buf.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf.WriteRune(r)
	}
	return buf.String()
}

// TokenSet returns the set of whitespace-separated tokens of a
// previously normalized string.
func TokenSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range strings.Fields(s) {
		set[tok] = struct{}{}
	}
	return set
}

// AlphaCount counts the alphabetic runes in a string.
func AlphaCount(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// IsAllUpper reports whether a string contains letters and none of them
// are lower-case. Digits and punctuation are ignored.
func IsAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsLower(r) {
				return false
			}
		}
	}
	return hasLetter
}

// IsAllLower reports whether a string contains letters and none of them
// are upper-case.
func IsAllLower(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}
