// Package schedule parses conference programme pages into timed
// events. The layout is the day-header/sessions-table structure used by
// the iaqi.org sites: each day opens with <div class="day-header">
// and its talks live in the following <table class="sessions">.
package schedule

import (
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/textnorm"
)

// contributedTalkMinutes is the standard slot for a contributed talk
// when the synopsis carries no time of its own.
const contributedTalkMinutes = 20

// minTitleLength rejects bold author names and labels masquerading as
// paper titles inside session previews.
const minTitleLength = 15

// Parse extracts every timed event from a programme page. The result
// preserves document order. A page with no recognizable schedule markup
// yields an empty slice, not an error.
func Parse(doc *html.Node) []model.ScheduleEvent {
	var events []model.ScheduleEvent
	currentDate := ""

	nodes := dom.FindAll(doc, func(n *html.Node) bool {
		if dom.IsElement(n, "div") && dom.HasClass(n, "day-header") {
			return true
		}
		return dom.IsElement(n, "table") && dom.HasClass(n, "sessions")
	})

	for _, n := range nodes {
		if dom.IsElement(n, "div") {
			subtitle := dom.FindFirst(n, func(c *html.Node) bool {
				return dom.IsElement(c, "h3") && dom.HasClass(c, "day-header__subtitle")
			})
			if subtitle != nil {
				currentDate = dom.Text(subtitle)
			}
			continue
		}

		rows := dom.FindAll(n, func(c *html.Node) bool {
			return dom.IsElement(c, "tr") && dom.HasClass(c, "session")
		})
		for _, row := range rows {
			events = append(events, parseSessionRow(row, currentDate)...)
		}
	}
	return events
}

// parseSessionRow expands one session row into events. Plenary and
// tutorial sessions carry their talks in the preview paragraph;
// parallel tracks carry them in synopsis cards or time-marked preview
// lines.
func parseSessionRow(row *html.Node, date string) []model.ScheduleEvent {
	timeCell := dom.FindFirst(row, func(n *html.Node) bool {
		return dom.IsElement(n, "td") && dom.HasClass(n, "session__date")
	})
	start, end := parseTimeRange(dom.Text(timeCell))
	duration := durationMinutes(start, end)

	content := dom.FindFirst(row, func(n *html.Node) bool {
		return dom.IsElement(n, "td") && dom.HasClass(n, "session__content")
	})
	if content == nil {
		return nil
	}

	label := dom.FindFirst(content, func(n *html.Node) bool {
		return dom.IsElement(n, "span") && dom.HasClass(n, "session__label")
	})
	sessionType := strings.ToLower(dom.Text(label))

	track := dom.Text(dom.FindFirst(content, func(n *html.Node) bool {
		return dom.IsElement(n, "span") && dom.HasClass(n, "session__track")
	}))

	base := model.ScheduleEvent{
		Date:            date,
		StartTime:       start,
		DurationMinutes: duration,
		SessionType:     sessionType,
		Track:           track,
	}

	preview := dom.FindFirst(content, func(n *html.Node) bool {
		return dom.IsElement(n, "p") && dom.HasClass(n, "session__preview")
	})

	if sessionType == "plenary" || sessionType == "tutorial" {
		return parsePlenarySession(content, preview, base)
	}
	return parseParallelSession(content, preview, base)
}

// parsePlenarySession pulls each paper out of the preview paragraphs.
// A bold run longer than the title threshold is a paper title; the
// speaker is the next bold author, or failing that the first name in
// the author line.
func parsePlenarySession(content, preview *html.Node, base model.ScheduleEvent) []model.ScheduleEvent {
	var events []model.ScheduleEvent

	if preview != nil {
		for _, p := range dom.FindAll(preview, func(n *html.Node) bool { return dom.IsElement(n, "p") }) {
			strongs := dom.FindAll(p, func(n *html.Node) bool { return dom.IsElement(n, "strong") })
			if len(strongs) == 0 {
				continue
			}
			title := dom.Text(strongs[0])
			if len(title) <= minTitleLength {
				continue
			}

			ev := base
			ev.Title = title
			ev.NormalizedTitle = textnorm.Title(title)
			ev.Speaker = previewSpeaker(p, strongs, title)
			events = append(events, ev)
		}
	}

	if len(events) > 0 {
		return events
	}

	// No per-paper titles; the session heading is the talk.
	title := dom.Text(dom.FindFirst(content, func(n *html.Node) bool {
		return dom.IsElement(n, "h2") && dom.HasClass(n, "session__title")
	}))
	if title == "" {
		return nil
	}

	ev := base
	ev.Title = title
	ev.NormalizedTitle = textnorm.Title(title)
	if preview != nil {
		if lines := previewLines(preview); len(lines) > 0 {
			ev.Speaker = lines[0]
		}
	}
	return []model.ScheduleEvent{ev}
}

// parseParallelSession reads the synopsis cards of a parallel track, or
// falls back to the time-marked preview lines older pages use.
func parseParallelSession(content, preview *html.Node, base model.ScheduleEvent) []model.ScheduleEvent {
	var events []model.ScheduleEvent

	synopses := dom.FindAll(content, func(n *html.Node) bool {
		return dom.IsElement(n, "div") && dom.HasClass(n, "synopsis")
	})
	for _, syn := range synopses {
		title := dom.Text(dom.FindFirst(syn, func(n *html.Node) bool {
			return dom.IsElement(n, "div") && dom.HasClass(n, "synopsis__title")
		}))
		if len(title) < minTitleLength {
			continue
		}

		speaker := ""
		synPreview := dom.FindFirst(syn, func(n *html.Node) bool {
			return dom.IsElement(n, "div") && dom.HasClass(n, "synopsis__preview")
		})
		if synPreview != nil {
			if lines := previewLines(synPreview); len(lines) > 0 {
				speaker, _, _ = strings.Cut(lines[0], ",")
				speaker = strings.TrimSpace(speaker)
			}
		}

		ev := base
		ev.Title = title
		ev.NormalizedTitle = textnorm.Title(title)
		ev.Speaker = speaker
		ev.DurationMinutes = contributedTalkMinutes
		events = append(events, ev)
	}
	if len(events) > 0 || preview == nil {
		return events
	}

	return parseTimedPreview(preview, base)
}

// timeMarkRe matches the "HH:MM-HH:MM" prefix of a timed preview line.
var timeMarkRe = regexp.MustCompile(`^(\d{2}:\d{2})-(\d{2}:\d{2})\s*`)

// parseTimedPreview handles parallel sessions whose talks are listed as
// "HH:MM-HH:MM Title" paragraphs followed by an author line.
func parseTimedPreview(preview *html.Node, base model.ScheduleEvent) []model.ScheduleEvent {
	var events []model.ScheduleEvent

	for _, p := range dom.FindAll(preview, func(n *html.Node) bool { return dom.IsElement(n, "p") }) {
		text := dom.Text(p)
		m := timeMarkRe.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		start, end := m[1], m[2]
		rest := strings.TrimSpace(text[len(m[0]):])

		strongs := dom.FindAll(p, func(n *html.Node) bool { return dom.IsElement(n, "strong") })

		title := ""
		if len(strongs) > 0 {
			title = dom.Text(strongs[0])
		} else {
			title = rest
		}
		if len(title) < minTitleLength {
			continue
		}

		ev := base
		ev.Title = title
		ev.NormalizedTitle = textnorm.Title(title)
		ev.StartTime = start
		ev.DurationMinutes = durationMinutes(start, end)
		ev.Speaker = previewSpeaker(p, strongs, title)
		events = append(events, ev)
	}
	return events
}

// previewSpeaker finds the presenting author for a paper paragraph.
// The presenter is usually the second bold run; otherwise the first
// name of the comma-separated author line after the title.
func previewSpeaker(p *html.Node, strongs []*html.Node, title string) string {
	full := dom.Text(p)
	after := ""
	if i := strings.Index(full, title); i >= 0 {
		after = strings.TrimSpace(full[i+len(title):])
	}

	var authors []string
	for _, a := range strings.Split(after, ",") {
		if a = strings.TrimSpace(a); a != "" {
			authors = append(authors, a)
		}
	}

	for _, s := range strongs[min(1, len(strongs)):] {
		name := dom.Text(s)
		for _, a := range authors {
			if name == a {
				return name
			}
		}
	}
	if len(authors) > 0 {
		return authors[0]
	}
	return ""
}

// previewLines returns the break-separated lines of a preview element,
// falling back to the whole text when there are no breaks.
func previewLines(n *html.Node) []string {
	if lines := dom.SplitOnBreaks(n); len(lines) > 0 {
		return lines
	}
	if text := dom.Text(n); text != "" {
		return []string{text}
	}
	return nil
}

// parseTimeRange splits "09:30-11:00" into start and end.
func parseTimeRange(s string) (string, string) {
	start, end, found := strings.Cut(strings.TrimSpace(s), "-")
	if !found {
		return "", ""
	}
	return strings.TrimSpace(start), strings.TrimSpace(end)
}

// durationMinutes computes the slot length, 0 when either bound is
// missing or malformed.
func durationMinutes(start, end string) int {
	if start == "" || end == "" {
		return 0
	}
	s, err := time.Parse("15:04", start)
	if err != nil {
		return 0
	}
	e, err := time.Parse("15:04", end)
	if err != nil {
		return 0
	}
	return int(e.Sub(s).Minutes())
}
