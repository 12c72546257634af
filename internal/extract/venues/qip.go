package venues

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
	"github.com/mlazarov/confminer/internal/extract"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

// QIP reads qip.iaqi.org pages. Content lives in div.ce-bodytext blocks
// whose <strong> paragraphs act as section headers, so both extractors
// are small state machines over the paragraph stream.
type QIP struct{}

// NewQIP creates the QIP extractor.
func NewQIP() *QIP { return &QIP{} }

// Name returns the venue name.
func (q *QIP) Name() string { return "qip" }

// CommitteeURL returns the programme committee page URL for a year.
func (q *QIP) CommitteeURL(year int) (string, error) {
	return fmt.Sprintf("https://qip.iaqi.org/%d/about/programme-committee/index.html", year), nil
}

// ProgramURL returns the tutorial programme page URL for a year.
func (q *QIP) ProgramURL(year int) (string, error) {
	return fmt.Sprintf("https://qip.iaqi.org/%d/programme/tutorial/index.html", year), nil
}

// ExtractPersons parses committee members from <br>-separated name
// lists. A <strong> header paragraph switches the current committee
// type and rank; chair headers carry the chair on the same line after
// a colon.
func (q *QIP) ExtractPersons(doc *html.Node) ([]model.PersonRecord, error) {
	main := dom.FindFirst(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "ce-bodytext")
	})
	if main == nil {
		return nil, ErrUnknownVenueFormat
	}

	var records []model.PersonRecord
	var ct model.CommitteeType
	position := model.PositionMember

	for _, p := range dom.FindAll(main, func(n *html.Node) bool { return dom.IsElement(n, "p") }) {
		if strong := dom.FindFirst(p, func(n *html.Node) bool { return dom.IsElement(n, "strong") }); strong != nil {
			header := strings.ToLower(dom.Text(strong))
			switch {
			case strings.Contains(header, "program committee chair"),
				strings.Contains(header, "programme committee chair"),
				strings.Contains(header, "technical operations chair"):
				ct, position = model.CommitteePC, model.PositionChair
				if rec, ok := q.chairLine(dom.Text(p), ct); ok {
					records = append(records, rec)
				}
				continue
			case strings.Contains(header, "topic chair"), strings.Contains(header, "area chair"):
				ct, position = model.CommitteePC, model.PositionAreaChair
				continue
			case strings.Contains(header, "program committee"), strings.Contains(header, "programme committee"):
				ct, position = model.CommitteePC, model.PositionMember
				continue
			case strings.Contains(header, "steering committee"):
				ct, position = model.CommitteeSC, model.PositionMember
				continue
			case strings.Contains(header, "organizing"),
				strings.Contains(header, "organising"),
				strings.Contains(header, "local"):
				ct, position = model.CommitteeLocal, model.PositionMember
				continue
			}
		}

		if ct == "" {
			continue
		}
		if dom.FindFirst(p, func(n *html.Node) bool { return dom.IsElement(n, "br") }) == nil {
			continue
		}
		for _, line := range dom.SplitOnBreaks(p) {
			if rec, ok := q.memberLine(line, ct, position); ok {
				records = append(records, rec)
			}
		}
	}
	return dedupeByCommittee(records), nil
}

// chairLine parses the "Header: Name, Affiliation" form.
func (q *QIP) chairLine(text string, ct model.CommitteeType) (model.PersonRecord, bool) {
	_, after, found := strings.Cut(text, ":")
	if !found {
		return model.PersonRecord{}, false
	}
	return q.memberLine(after, ct, model.PositionChair)
}

// topicMarkers flag "Topic: Name, Affiliation" area-chair lines.
var topicMarkers = []string{
	"quantum", "cryptography", "complexity", "theory",
	"tomography", "learning", "error correction", "foundations",
}

// memberLine parses one member from "Name, Affiliation" text. The last
// comma splits name from affiliation; names hyphenate and use commas in
// suffixes rarely enough that this holds across years.
func (q *QIP) memberLine(text string, ct model.CommitteeType, position model.Position) (model.PersonRecord, bool) {
	text = strings.TrimSpace(text)
	if len(text) < 3 {
		return model.PersonRecord{}, false
	}

	if strings.Contains(text, ":") && containsAny(strings.ToLower(text), topicMarkers) {
		_, after, _ := strings.Cut(text, ":")
		text = strings.TrimSpace(after)
		position = model.PositionAreaChair
	}

	name := text
	affiliation := ""
	if i := strings.LastIndex(text, ","); i >= 0 {
		name = text[:i]
		affiliation = textnorm.Affiliation(text[i+1:])
	}

	name = textnorm.CleanName(name)
	if len(name) < 3 || len(name) > 100 || textnorm.IsAllUpper(name) || textnorm.IsAllLower(name) {
		return model.PersonRecord{}, false
	}

	return model.PersonRecord{
		Name:        name,
		Affiliation: affiliation,
		Committee:   ct,
		Position:    position,
	}, true
}

// qipSkipWords mark date header paragraphs in tutorial pages.
var qipSkipWords = []string{"January", "Saturday", "Sunday"}

// qipDayWords reject weekday headings masquerading as talk titles.
var qipDayWords = []string{
	"January", "Saturday", "Sunday", "Monday",
	"Tuesday", "Wednesday", "Thursday", "Friday",
}

// tutorialTalk accumulates one talk while scanning the paragraph
// stream.
type tutorialTalk struct {
	speaker     string
	affiliation string
	title       string
	abstract    []string
}

func (t tutorialTalk) record() (model.TalkRecord, bool) {
	if t.speaker == "" || t.title == "" {
		return model.TalkRecord{}, false
	}
	talk := model.TalkRecord{
		Title:     t.title,
		Speakers:  []string{t.speaker},
		Abstract:  strings.Join(t.abstract, " "),
		ArxivIDs:  textnorm.ArxivIDs(strings.Join(t.abstract, " ")),
		PaperType: model.PaperTutorial,
	}
	if t.affiliation != "" {
		talk.Affiliations = []string{t.affiliation}
	}
	return talk, true
}

// ExtractTalks parses tutorial talks. A paragraph with both <strong>
// and <br> opens a talk (speaker above the break, affiliation below),
// a lone <strong> paragraph is the title, and plain paragraphs extend
// the abstract.
func (q *QIP) ExtractTalks(doc *html.Node) ([]model.TalkRecord, error) {
	var talks []model.TalkRecord

	sections := dom.FindAll(doc, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "ce-bodytext")
	})
	for _, section := range sections {
		var cur tutorialTalk
		flush := func() {
			if talk, ok := cur.record(); ok {
				talks = append(talks, talk)
			}
			cur = tutorialTalk{}
		}

		for _, p := range dom.FindAll(section, func(n *html.Node) bool { return dom.IsElement(n, "p") }) {
			text := dom.Text(p)
			if containsAny(text, qipSkipWords) {
				continue
			}

			strongs := dom.FindAll(p, func(n *html.Node) bool { return dom.IsElement(n, "strong") })
			hasBreak := dom.FindFirst(p, func(n *html.Node) bool { return dom.IsElement(n, "br") }) != nil

			if len(strongs) > 0 && hasBreak {
				if cur.speaker != "" {
					flush()
				}
				cur.speaker = textnorm.Collapse(dom.Text(strongs[0]))
				if lines := dom.SplitOnBreaks(p); len(lines) >= 2 {
					cur.affiliation = lines[1]
				}
				continue
			}

			if len(strongs) == 1 && !hasBreak {
				title := textnorm.Collapse(dom.Text(strongs[0]))
				if len(title) > 3 && !containsAny(title, qipDayWords) {
					cur.title = title
				}
				continue
			}

			if len(text) > 20 && !anyMeaningfulStrong(strongs) {
				cur.abstract = append(cur.abstract, text)
			}
		}
		flush()
	}
	return extract.DedupeTalks(talks), nil
}

// anyMeaningfulStrong reports whether any of the strong elements holds
// visible text. Some pages leave empty <strong></strong> artifacts in
// abstract paragraphs.
func anyMeaningfulStrong(strongs []*html.Node) bool {
	for _, s := range strongs {
		if dom.Text(s) != "" {
			return true
		}
	}
	return false
}
