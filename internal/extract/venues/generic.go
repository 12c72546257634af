package venues

import (
	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/extract"
	"github.com/mlazarov/confminer/internal/model"
)

// Generic applies the label-driven heuristics with no site knowledge.
// It cannot guess page URLs, so the caller must supply one.
type Generic struct {
	labels model.CommitteeLabels
}

// NewGeneric creates the fallback extractor.
func NewGeneric() *Generic {
	return &Generic{labels: model.DefaultCommitteeLabels()}
}

// Name returns the venue name.
func (g *Generic) Name() string { return "generic" }

// CommitteeURL declines; there is no URL pattern for unknown venues.
func (g *Generic) CommitteeURL(year int) (string, error) {
	return "", ErrUnknownVenueFormat
}

// ProgramURL declines; there is no URL pattern for unknown venues.
func (g *Generic) ProgramURL(year int) (string, error) {
	return "", ErrUnknownVenueFormat
}

// ExtractPersons runs the generic region/segment/filter pipeline for
// every committee type.
func (g *Generic) ExtractPersons(doc *html.Node) ([]model.PersonRecord, error) {
	return extract.AllPersons(doc, g.labels), nil
}

// ExtractTalks declines; talk page layouts are too site-specific for a
// generic rule.
func (g *Generic) ExtractTalks(doc *html.Node) ([]model.TalkRecord, error) {
	return nil, ErrUnknownVenueFormat
}
