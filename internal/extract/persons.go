// Package extract turns parsed committee and programme pages into
// normalized person and talk records. The pipeline is pure and
// synchronous: it reads the document tree it is handed, holds no global
// mutable state, and is safe to invoke from concurrent callers.
package extract

import (
	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

// specificEntryClasses are container classes some sites use for person
// cards outside any labelled section.
var specificEntryClasses = []string{"committee-member", "person", "team-member", "member", "speaker"}

// structuredRoleMarkers decide which secondary line of a member card is
// the role description rather than the affiliation.
var structuredRoleMarkers = []string{"chair", "member", "co-chair", "area chair", "support"}

// Persons extracts the committee members of one committee type from a
// document. Strategy order follows the reliability of the cues:
// labelled heading sections first, then site-specific card classes, then
// generic list and paragraph selectors. A document with no matching
// region yields an empty slice, not an error.
func Persons(doc *html.Node, labels model.CommitteeLabels, ct model.CommitteeType) []model.PersonRecord {
	patterns := labels[ct]

	for _, region := range LocateRegions(doc, patterns) {
		var records []model.PersonRecord
		for _, entry := range SegmentRegion(region) {
			if rec, ok := ParseEntry(entry, region.HeadingText, ct); ok {
				records = append(records, rec)
			}
		}
		if len(records) > 0 {
			return DedupePersons(records)
		}
	}

	if records := personsByClass(doc, ct); len(records) > 0 {
		return DedupePersons(records)
	}

	return DedupePersons(personsGeneric(doc, ct))
}

// AllPersons runs Persons for every committee type with labels,
// concatenating results in a stable type order.
func AllPersons(doc *html.Node, labels model.CommitteeLabels) []model.PersonRecord {
	var records []model.PersonRecord
	for _, ct := range []model.CommitteeType{model.CommitteePC, model.CommitteeSC, model.CommitteeOC, model.CommitteeLocal} {
		if _, ok := labels[ct]; !ok {
			continue
		}
		records = append(records, Persons(doc, labels, ct)...)
	}
	return records
}

// personsByClass tries the site-specific card classes.
func personsByClass(doc *html.Node, ct model.CommitteeType) []model.PersonRecord {
	for _, class := range specificEntryClasses {
		nodes := dom.FindAll(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && dom.HasClass(n, class)
		})
		if len(nodes) == 0 {
			continue
		}

		var records []model.PersonRecord
		for _, n := range nodes {
			entry := RawEntry{Text: dom.Text(n), Source: SourceFreeform}
			if rec, ok := ParseEntry(entry, "", ct); ok {
				records = append(records, rec)
			}
		}
		if len(records) > 0 {
			return records
		}
	}
	return nil
}

// personsGeneric is the last resort: every list item and content
// paragraph in the document, relying on the entry filter to discard the
// navigation noise this inevitably picks up.
func personsGeneric(doc *html.Node, ct model.CommitteeType) []model.PersonRecord {
	var records []model.PersonRecord

	lis := dom.FindAll(doc, func(n *html.Node) bool { return dom.IsElement(n, "li") })
	paras := dom.FindAll(doc, func(n *html.Node) bool {
		if !dom.IsElement(n, "p") {
			return false
		}
		parent := n.Parent
		return parent != nil && (dom.HasClass(parent, "content") || dom.IsElement(parent, "article"))
	})

	for _, n := range append(lis, paras...) {
		entry := RawEntry{Text: dom.Text(n), Source: SourceFreeform}
		if rec, ok := ParseEntry(entry, "", ct); ok {
			records = append(records, rec)
		}
	}
	return records
}

// ParseEntry converts one raw entry into a person record. Structured
// card entries keep the markup's own name/affiliation split; text
// entries go through the filter and the delimiter rules.
func ParseEntry(e RawEntry, headingText string, ct model.CommitteeType) (model.PersonRecord, bool) {
	if e.Source == SourceStructured {
		return parseStructuredEntry(e, headingText, ct)
	}

	if !FilterEntry(e) {
		return model.PersonRecord{}, false
	}

	f, ok := SplitFields(e.Text)
	if !ok {
		return model.PersonRecord{}, false
	}

	position, title := ClassifyRole(e.Text+" "+f.RoleText, headingText)

	return model.PersonRecord{
		Name:        f.Name,
		Affiliation: f.Affiliation,
		Committee:   ct,
		Position:    position,
		RoleTitle:   title,
	}, true
}

func parseStructuredEntry(e RawEntry, headingText string, ct model.CommitteeType) (model.PersonRecord, bool) {
	name := textnorm.CleanName(e.Name)
	if len(name) < 3 || len(name) > 100 || textnorm.IsAllUpper(name) || textnorm.IsAllLower(name) {
		return model.PersonRecord{}, false
	}

	affiliation := ""
	roleText := ""
	for _, line := range e.Secondary {
		if containsAnyFold(line, structuredRoleMarkers) {
			roleText = line
		} else if affiliation == "" {
			affiliation = textnorm.Affiliation(line)
		}
	}

	position, title := ClassifyRole(roleText, headingText)

	return model.PersonRecord{
		Name:        name,
		Affiliation: affiliation,
		Committee:   ct,
		Position:    position,
		RoleTitle:   title,
	}, true
}
