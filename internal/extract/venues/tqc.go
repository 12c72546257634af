package venues

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/model"
)

// TQC sites are rebuilt from scratch every year with no shared layout,
// so only the committee URL pattern is known. Both extractors decline
// until a year-specific rule lands.
type TQC struct{}

// NewTQC creates the TQC extractor.
func NewTQC() *TQC { return &TQC{} }

// Name returns the venue name.
func (t *TQC) Name() string { return "tqc" }

// CommitteeURL returns the committee page URL for a year.
func (t *TQC) CommitteeURL(year int) (string, error) {
	return fmt.Sprintf("https://tqc%d.org/committee.html", year), nil
}

// ProgramURL declines; programme page locations vary per year.
func (t *TQC) ProgramURL(year int) (string, error) {
	return "", ErrUnknownVenueFormat
}

// ExtractPersons declines pending a year-specific parsing rule.
func (t *TQC) ExtractPersons(doc *html.Node) ([]model.PersonRecord, error) {
	return nil, ErrUnknownVenueFormat
}

// ExtractTalks declines pending a year-specific parsing rule.
func (t *TQC) ExtractTalks(doc *html.Node) ([]model.TalkRecord, error) {
	return nil, ErrUnknownVenueFormat
}
