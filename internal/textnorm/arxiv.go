package textnorm

import (
	"regexp"
	"strings"
)

var (
	arxivPrefixRe = regexp.MustCompile(`(?i)arXiv:\s*(\d{4}\.\d{4,5})`)
	arxivURLRe    = regexp.MustCompile(`(?i)arxiv\.org/(?:abs|pdf)/(\d{4}\.\d{4,5})`)
	arxivBareRe   = regexp.MustCompile(`(\d{4}\.\d{4,5})`)
	youtubeRes    = []*regexp.Regexp{
		regexp.MustCompile(`youtube\.com/watch\?v=([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
		regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
	}
)

// ArxivIDs extracts arXiv identifiers from free text. Accepted forms:
// "arXiv:2401.12345", "arxiv.org/abs/2401.12345", "arxiv.org/pdf/...",
// or a bare "2401.12345". DOI links and unrelated URLs are skipped.
// Order of first occurrence is preserved; duplicates are dropped.
func ArxivIDs(text string) []string {
	if text == "" {
		return nil
	}

	var ids []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lower := strings.ToLower(part)
		if strings.Contains(lower, "doi.org") {
			continue
		}
		if strings.HasPrefix(lower, "http") && !strings.Contains(lower, "arxiv") {
			continue
		}

		if m := arxivURLRe.FindStringSubmatch(part); m != nil {
			add(m[1])
			continue
		}
		if m := arxivPrefixRe.FindStringSubmatch(part); m != nil {
			add(m[1])
			continue
		}
		if m := arxivBareRe.FindStringSubmatch(part); m != nil {
			add(m[1])
		}
	}
	return ids
}

// YouTubeID extracts a video id from watch, short, or embed URLs.
func YouTubeID(url string) string {
	if url == "" {
		return ""
	}
	for _, re := range youtubeRes {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1]
		}
	}
	return ""
}
