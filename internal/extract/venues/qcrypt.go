package venues

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
	"github.com/mlazarov/confminer/internal/extract"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

// QCrypt reads qcrypt.net committee pages and the qcrypt.iaqi.org
// schedule archive. The site was rebuilt twice: modern years use
// <section class="members"> cards, 2012-2015 use plain lists under
// headings, and 2011 packs names into <br>-separated paragraphs under
// <p><em>/<p><strong> pseudo-headings.
type QCrypt struct{}

// NewQCrypt creates the QCrypt extractor.
func NewQCrypt() *QCrypt { return &QCrypt{} }

// Name returns the venue name.
func (q *QCrypt) Name() string { return "qcrypt" }

// CommitteeURL returns the committee page URL for a year.
func (q *QCrypt) CommitteeURL(year int) (string, error) {
	switch {
	case year >= 2016:
		return fmt.Sprintf("https://%d.qcrypt.net/committees/", year), nil
	case year >= 2011:
		return fmt.Sprintf("https://www.qcrypt.net/%d/committees.html", year), nil
	}
	return "", ErrUnknownVenueFormat
}

// ProgramURL returns the schedule archive URL for a year.
func (q *QCrypt) ProgramURL(year int) (string, error) {
	if year >= 2011 {
		return fmt.Sprintf("https://qcrypt.iaqi.org/%d/schedule/index.html", year), nil
	}
	return "", ErrUnknownVenueFormat
}

// legacyHeadingMarkers flag the <em>/<strong> pseudo-headings older
// QCrypt sites used instead of real heading elements.
var legacyHeadingMarkers = []string{"committee", "organizer", "organiser"}

// ExtractPersons walks every committee section of the page, real
// headings and legacy pseudo-headings alike.
func (q *QCrypt) ExtractPersons(doc *html.Node) ([]model.PersonRecord, error) {
	headings := dom.FindAll(doc, func(n *html.Node) bool {
		if lvl := dom.HeadingLevel(n); lvl >= 2 && lvl <= 4 {
			return true
		}
		return isLegacyHeading(n)
	})

	var records []model.PersonRecord
	for _, h := range headings {
		headingText := dom.Text(h)
		ct, ok := qcryptCommitteeType(headingText)
		if !ok {
			continue
		}
		records = append(records, q.sectionMembers(h, headingText, ct)...)
	}
	return dedupeByCommittee(records), nil
}

// qcryptCommitteeType maps a section heading to a committee type.
// Advisory boards file under steering.
func qcryptCommitteeType(heading string) (model.CommitteeType, bool) {
	lower := strings.ToLower(heading)
	switch {
	case strings.Contains(lower, "program committee"),
		strings.Contains(lower, "programme committee"),
		strings.Contains(lower, "pc members"):
		return model.CommitteePC, true
	case strings.Contains(lower, "steering committee"),
		strings.Contains(lower, "advisory committee"):
		return model.CommitteeSC, true
	case strings.Contains(lower, "organizing committee"),
		strings.Contains(lower, "organising committee"),
		strings.Contains(lower, "local"),
		strings.Contains(lower, "oc support"):
		return model.CommitteeLocal, true
	}
	return "", false
}

// isLegacyHeading detects <p> pseudo-headings whose <em> or <strong>
// child names a committee.
func isLegacyHeading(n *html.Node) bool {
	if !dom.IsElement(n, "p") {
		return false
	}
	marker := dom.FindFirst(n, func(c *html.Node) bool {
		return dom.IsElement(c, "em") || dom.IsElement(c, "strong")
	})
	if marker == nil {
		return false
	}
	return containsAny(strings.ToLower(dom.Text(marker)), legacyHeadingMarkers)
}

// sectionMembers collects the members between a heading and the next
// boundary. Real headings end at the next heading of the same or a more
// significant level, h2 always ends a section; legacy pseudo-headings
// end at the next pseudo-heading.
func (q *QCrypt) sectionMembers(heading *html.Node, headingText string, ct model.CommitteeType) []model.PersonRecord {
	legacy := dom.IsElement(heading, "p")
	level := dom.HeadingLevel(heading)

	var records []model.PersonRecord
	for n := heading.NextSibling; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		if lvl := dom.HeadingLevel(n); lvl > 0 {
			if lvl == 2 {
				break
			}
			if level > 0 && lvl <= level {
				break
			}
		}
		if legacy && isLegacyHeading(n) {
			break
		}

		for _, entry := range extract.SegmentBlock(n) {
			if rec, ok := extract.ParseEntry(entry, headingText, ct); ok {
				records = append(records, rec)
			}
		}
	}
	return records
}

// specialTalkMarkers identify schedule headings for non-contributed
// sessions.
var specialTalkMarkers = []string{
	"invited talk", "invited speaker",
	"tutorial talk", "tutorial",
	"keynote", "plenary",
	"distinguished lecture",
}

// talkPrefixRe strips the session prefix from a schedule heading,
// including the quote characters some years wrap titles in.
var talkPrefixRe = regexp.MustCompile(`(?i)^(tutorial|invited|keynote)\s+talk:\s*['"]*`)

// ExtractTalks pulls invited, tutorial and keynote talks out of a
// schedule page. Each talk is an <h4> inside an <a> session container
// that also carries the speaker list.
func (q *QCrypt) ExtractTalks(doc *html.Node) ([]model.TalkRecord, error) {
	var talks []model.TalkRecord

	for _, h4 := range dom.FindAll(doc, func(n *html.Node) bool { return dom.IsElement(n, "h4") }) {
		text := dom.Text(h4)
		if !containsAny(strings.ToLower(text), specialTalkMarkers) {
			continue
		}

		paperType := extract.DetectPaperType(text, "")
		title := textnorm.Collapse(strings.Trim(talkPrefixRe.ReplaceAllString(text, ""), `'" `))
		if title == "" {
			continue
		}

		talk := model.TalkRecord{
			Title:       title,
			PaperType:   paperType,
			SessionName: qcryptSessionName(paperType),
		}

		session := closestAncestor(h4, "a")
		if session == nil {
			talk.Notes = "no session container found"
			talks = append(talks, talk)
			continue
		}

		speakers := dom.FindFirst(session, func(n *html.Node) bool {
			return dom.IsElement(n, "ul") && dom.HasClass(n, "speakers")
		})
		if speakers != nil {
			for _, li := range dom.Children(speakers, "li") {
				nameEl := dom.FindFirst(li, func(n *html.Node) bool {
					return dom.IsElement(n, "strong") && dom.HasClass(n, "speaker-name")
				})
				if name := textnorm.CleanName(dom.Text(nameEl)); name != "" {
					talk.Speakers = append(talk.Speakers, name)
				}
			}
		}
		if href := dom.Attr(session, "href"); href != "" {
			talk.Notes = "session url: " + href
		}
		for _, link := range dom.FindAll(session, func(n *html.Node) bool { return dom.IsElement(n, "a") }) {
			href := dom.Attr(link, "href")
			if id := textnorm.YouTubeID(href); id != "" {
				talk.VideoURL = href
				talk.YouTubeID = id
				break
			}
		}

		talks = append(talks, talk)
	}
	return extract.DedupeTalks(talks), nil
}

func qcryptSessionName(pt model.PaperType) string {
	switch pt {
	case model.PaperTutorial:
		return "Tutorial Talk"
	case model.PaperKeynote:
		return "Keynote Talk"
	default:
		return "Invited Talk"
	}
}

// closestAncestor returns the nearest enclosing element with the tag.
func closestAncestor(n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if dom.IsElement(p, tag) {
			return p
		}
	}
	return nil
}
