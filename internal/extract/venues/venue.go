// Package venues holds the site-specific extraction rules. Each venue
// knows its page URLs across years and how to read that site's markup;
// the registry falls back to the generic heuristics for anything else.
package venues

import (
	"errors"
	"strings"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/extract"
	"github.com/mlazarov/confminer/internal/model"
)

// ErrUnknownVenueFormat reports that a venue or year has no parsing
// rule yet. Callers surface it as an explicit skip, never a crash.
var ErrUnknownVenueFormat = errors.New("no parsing rule for this venue/year")

// Venue defines the interface for site-specific extractors.
type Venue interface {
	// Name returns the canonical venue name.
	Name() string

	// CommitteeURL returns the committee page URL for a year.
	CommitteeURL(year int) (string, error)

	// ProgramURL returns the talk/schedule page URL for a year.
	ProgramURL(year int) (string, error)

	// ExtractPersons extracts committee members from the document.
	ExtractPersons(doc *html.Node) ([]model.PersonRecord, error)

	// ExtractTalks extracts invited and tutorial talks from the document.
	ExtractTalks(doc *html.Node) ([]model.TalkRecord, error)
}

// Registry manages venue extractors.
type Registry struct {
	venues  []Venue
	generic Venue
}

// NewRegistry creates a registry with the built-in venues registered.
func NewRegistry() *Registry {
	r := &Registry{}

	r.Register(NewQCrypt())
	r.Register(NewQIP())
	r.Register(NewTQC())

	r.generic = NewGeneric()

	return r
}

// Register adds a venue extractor.
func (r *Registry) Register(v Venue) {
	r.venues = append(r.venues, v)
}

// Find returns the venue registered under the given name, or the
// generic fallback when none matches.
func (r *Registry) Find(name string) Venue {
	for _, v := range r.venues {
		if strings.EqualFold(v.Name(), name) {
			return v
		}
	}
	return r.generic
}

// Names lists the registered venue names, generic last.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.venues)+1)
	for _, v := range r.venues {
		names = append(names, v.Name())
	}
	return append(names, r.generic.Name())
}

// dedupeByCommittee dedupes within each committee type separately, so a
// person serving on two committees keeps both records, and emits the
// groups in a stable type order.
func dedupeByCommittee(records []model.PersonRecord) []model.PersonRecord {
	byType := make(map[model.CommitteeType][]model.PersonRecord)
	for _, rec := range records {
		byType[rec.Committee] = append(byType[rec.Committee], rec)
	}

	var out []model.PersonRecord
	for _, ct := range []model.CommitteeType{model.CommitteePC, model.CommitteeSC, model.CommitteeOC, model.CommitteeLocal} {
		out = append(out, extract.DedupePersons(byType[ct])...)
	}
	return out
}

// containsAny reports whether any of the needles occurs in s.
func containsAny(s string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
