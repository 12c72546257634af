package extract

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/mlazarov/confminer/internal/dom"
)

// Region is a span of a document opened by a matching section heading.
// End is the first later heading at the same or a more significant level,
// used as an exclusive boundary; nil means the region runs to the end of
// the document.
type Region struct {
	Heading     *html.Node
	HeadingText string
	Level       int
	End         *html.Node
}

// LocateRegions finds every heading whose text contains one of the given
// label substrings (case-insensitive) and pairs it with its boundary.
// A document with no matching heading yields no regions, not an error;
// several matching headings yield several independent regions.
func LocateRegions(doc *html.Node, labels []string) []Region {
	if len(labels) == 0 {
		return nil
	}

	headings := dom.FindAll(doc, func(n *html.Node) bool {
		return dom.HeadingLevel(n) > 0
	})

	var regions []Region
	for i, h := range headings {
		text := dom.Text(h)
		if !containsAnyFold(text, labels) {
			continue
		}

		level := dom.HeadingLevel(h)
		var end *html.Node
		for _, next := range headings[i+1:] {
			if dom.HeadingLevel(next) <= level {
				end = next
				break
			}
		}

		regions = append(regions, Region{
			Heading:     h,
			HeadingText: text,
			Level:       level,
			End:         end,
		})
	}
	return regions
}

func containsAnyFold(text string, substrings []string) bool {
	lower := strings.ToLower(text)
	for _, s := range substrings {
		if strings.Contains(lower, strings.ToLower(s)) {
			return true
		}
	}
	return false
}
