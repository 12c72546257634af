package extract

import (
	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
)

// EntrySource records which structural cue produced a raw entry.
type EntrySource string

const (
	SourceStructured EntrySource = "structured" // member card with tagged sub-elements
	SourceList       EntrySource = "list"       // plain list item
	SourceBRSplit    EntrySource = "br-split"   // line-break-separated fragment
	SourceFreeform   EntrySource = "freeform"   // whole block text
)

// RawEntry is one candidate person entry cut out of a region. Ephemeral:
// consumed by the filter and field extractor, never persisted.
type RawEntry struct {
	Text   string
	Source EntrySource

	// Set only for SourceStructured, where the markup already separates
	// the name from the secondary lines (affiliation and/or role).
	Name      string
	Secondary []string
}

// listClassBlacklist marks list containers that hold navigation or
// social links rather than people.
var listClassBlacklist = []string{"menu", "nav", "social", "socials"}

// SegmentRegion walks the sibling range of a region and emits raw
// entries, probing structural cues in fixed priority per container:
// structured member card, plain list, line-break paragraph, freeform
// block. The walk never descends past the region boundary and stops
// immediately at any heading of the same or a more significant level.
func SegmentRegion(r Region) []RawEntry {
	var entries []RawEntry

	for n := r.Heading.NextSibling; n != nil; n = n.NextSibling {
		if n == r.End {
			break
		}
		if n.Type != html.ElementNode {
			continue
		}
		if lvl := dom.HeadingLevel(n); lvl > 0 && lvl <= r.Level {
			break
		}

		entries = append(entries, SegmentBlock(n)...)
	}
	return entries
}

// SegmentBlock emits the entries of a single sibling element.
func SegmentBlock(n *html.Node) []RawEntry {
	if card := findMemberCard(n); card != nil {
		return segmentMemberCard(card)
	}

	if dom.IsElement(n, "ul") || dom.IsElement(n, "ol") {
		if dom.HasAnyClass(n, listClassBlacklist...) {
			return nil
		}
		return segmentList(n)
	}

	if dom.IsElement(n, "p") && dom.FindFirst(n, func(c *html.Node) bool { return dom.IsElement(c, "br") }) != nil {
		var entries []RawEntry
		for _, frag := range dom.SplitOnBreaks(n) {
			entries = append(entries, RawEntry{Text: frag, Source: SourceBRSplit})
		}
		return entries
	}

	if text := dom.Text(n); text != "" {
		return []RawEntry{{Text: text, Source: SourceFreeform}}
	}
	return nil
}

// findMemberCard locates a <section class="members"> container, either
// the element itself or nested one level down (some sites wrap the card
// in a stray <p> or <div>).
func findMemberCard(n *html.Node) *html.Node {
	if dom.IsElement(n, "section") && dom.HasClass(n, "members") {
		return n
	}
	return dom.FindChild(n, func(c *html.Node) bool {
		return dom.IsElement(c, "section") && dom.HasClass(c, "members")
	})
}

// segmentMemberCard emits one entry per structured <li> card inside
// <ul class="members">. Cards carry a div.label with an h3 name and h4
// secondary lines; cards without a label fall back to list-item text.
func segmentMemberCard(card *html.Node) []RawEntry {
	list := dom.FindFirst(card, func(n *html.Node) bool {
		return dom.IsElement(n, "ul") && dom.HasClass(n, "members")
	})
	if list == nil {
		return nil
	}

	var entries []RawEntry
	for _, li := range dom.Children(list, "li") {
		label := dom.FindFirst(li, func(n *html.Node) bool {
			return dom.IsElement(n, "div") && dom.HasClass(n, "label")
		})
		if label == nil {
			if text := dom.Text(li); text != "" {
				entries = append(entries, RawEntry{Text: text, Source: SourceList})
			}
			continue
		}

		h3 := dom.FindFirst(label, func(n *html.Node) bool { return dom.IsElement(n, "h3") })
		if h3 == nil {
			continue
		}
		var secondary []string
		for _, h4 := range dom.FindAll(label, func(n *html.Node) bool { return dom.IsElement(n, "h4") }) {
			if text := dom.Text(h4); text != "" {
				secondary = append(secondary, text)
			}
		}

		entries = append(entries, RawEntry{
			Text:      dom.Text(li),
			Source:    SourceStructured,
			Name:      dom.Text(h3),
			Secondary: secondary,
		})
	}
	return entries
}

// segmentList emits one entry per direct list item.
func segmentList(list *html.Node) []RawEntry {
	var entries []RawEntry
	for _, li := range dom.Children(list, "li") {
		if text := dom.Text(li); text != "" {
			entries = append(entries, RawEntry{Text: text, Source: SourceList})
		}
	}
	return entries
}
