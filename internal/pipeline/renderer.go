package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mlazarov/confminer/internal/model"
)

// Renderer writes extraction results in the formats the downstream
// importer expects. Column order is a contract; never reorder.
type Renderer struct {
	verbose bool
}

// NewRenderer creates a renderer.
func NewRenderer(verbose bool) *Renderer {
	return &Renderer{verbose: verbose}
}

var personColumns = []string{
	"venue", "year", "committee_type", "position",
	"full_name", "affiliation", "role_title",
}

var talkColumns = []string{
	"venue", "year", "paper_type", "title", "authors",
	"affiliations", "abstract", "arxiv_ids", "presentation_url",
	"video_url", "youtube_id", "session_name", "award", "notes",
	"speaker", "scheduled_date", "scheduled_time", "duration_minutes",
}

// WritePersonsCSV writes committee members to a CSV file.
func (r *Renderer) WritePersonsCSV(path, venue string, year int, persons []model.PersonRecord) error {
	rows := make([][]string, 0, len(persons))
	for _, p := range persons {
		rows = append(rows, []string{
			venue,
			strconv.Itoa(year),
			string(p.Committee),
			string(p.Position),
			p.Name,
			p.Affiliation,
			p.RoleTitle,
		})
	}
	return r.writeCSV(path, personColumns, rows)
}

// WriteTalksCSV writes talks to a CSV file. Multi-value fields join
// with ";" except arXiv ids, which the importer expects comma-joined.
func (r *Renderer) WriteTalksCSV(path, venue string, year int, talks []model.TalkRecord) error {
	rows := make([][]string, 0, len(talks))
	for _, t := range talks {
		duration := ""
		if t.DurationMinutes > 0 {
			duration = strconv.Itoa(t.DurationMinutes)
		}
		rows = append(rows, []string{
			venue,
			strconv.Itoa(year),
			string(t.PaperType),
			t.Title,
			strings.Join(t.Speakers, ";"),
			strings.Join(t.Affiliations, ";"),
			t.Abstract,
			strings.Join(t.ArxivIDs, ","),
			t.PresentationURL,
			t.VideoURL,
			t.YouTubeID,
			t.SessionName,
			t.Award,
			t.Notes,
			t.Speaker,
			t.ScheduledDate,
			t.ScheduledTime,
			duration,
		})
	}
	return r.writeCSV(path, talkColumns, rows)
}

func (r *Renderer) writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	if r.verbose {
		fmt.Printf("✓ Wrote %s (%d rows)\n", path, len(rows))
	}
	return nil
}

// WriteJSON writes any result value as indented JSON.
func (r *Renderer) WriteJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	if r.verbose {
		fmt.Printf("✓ Wrote %s\n", path)
	}
	return nil
}

// WriteReviewNotes writes the manual-review text file for unmatched
// talks. Skipped when there is nothing to review.
func (r *Renderer) WriteReviewNotes(path, notes string) error {
	if notes == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(notes+"\n"), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if r.verbose {
		fmt.Printf("✓ Wrote %s\n", path)
	}
	return nil
}
