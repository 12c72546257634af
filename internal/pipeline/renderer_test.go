package pipeline

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mlazarov/confminer/internal/model"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestWritePersonsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "persons.csv")
	persons := []model.PersonRecord{
		{Name: "Jane Doe", Affiliation: "MIT", Committee: model.CommitteePC, Position: model.PositionChair, RoleTitle: "Program Chair"},
		{Name: "John Smith", Committee: model.CommitteeSC, Position: model.PositionMember},
	}

	r := NewRenderer(false)
	if err := r.WritePersonsCSV(path, "qcrypt", 2023, persons); err != nil {
		t.Fatalf("WritePersonsCSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	wantHeader := []string{"venue", "year", "committee_type", "position", "full_name", "affiliation", "role_title"}
	if !reflect.DeepEqual(rows[0], wantHeader) {
		t.Errorf("header = %v", rows[0])
	}

	want := []string{"qcrypt", "2023", "PC", "chair", "Jane Doe", "MIT", "Program Chair"}
	if !reflect.DeepEqual(rows[1], want) {
		t.Errorf("row = %v, want %v", rows[1], want)
	}
}

func TestWriteTalksCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "talks.csv")
	talks := []model.TalkRecord{
		{
			Title:           "Twin-Field QKD",
			Speakers:        []string{"Jane Doe", "John Smith"},
			Affiliations:    []string{"MIT", "Waterloo"},
			ArxivIDs:        []string{"2401.12345", "2402.00001"},
			PaperType:       model.PaperInvited,
			SessionName:     "Invited Talk",
			Speaker:         "Jane Doe",
			ScheduledDate:   "Monday",
			ScheduledTime:   "09:30",
			DurationMinutes: 60,
		},
		{Title: "Unscheduled", PaperType: model.PaperTutorial},
	}

	r := NewRenderer(false)
	if err := r.WriteTalksCSV(path, "qcrypt", 2024, talks); err != nil {
		t.Fatalf("WriteTalksCSV: %v", err)
	}

	rows := readCSV(t, path)
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}

	header := rows[0]
	if header[0] != "venue" || header[len(header)-1] != "duration_minutes" {
		t.Errorf("header = %v", header)
	}

	row := rows[1]
	if row[4] != "Jane Doe;John Smith" {
		t.Errorf("authors = %q, want semicolon join", row[4])
	}
	if row[7] != "2401.12345,2402.00001" {
		t.Errorf("arxiv_ids = %q, want comma join", row[7])
	}
	if row[len(row)-1] != "60" {
		t.Errorf("duration = %q", row[len(row)-1])
	}

	// Zero duration renders as empty, not "0".
	if last := rows[2][len(rows[2])-1]; last != "" {
		t.Errorf("unscheduled duration = %q, want empty", last)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	r := NewRenderer(false)

	if err := r.WriteJSON(path, map[string]int{"talks": 3}); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		t.Error("JSON output should end with a newline")
	}
}

func TestWriteReviewNotesSkipsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.txt")
	r := NewRenderer(false)

	if err := r.WriteReviewNotes(path, ""); err != nil {
		t.Fatalf("WriteReviewNotes: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("empty notes must not create a file")
	}

	if err := r.WriteReviewNotes(path, "check talk 3"); err != nil {
		t.Fatalf("WriteReviewNotes: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "check talk 3\n" {
		t.Errorf("notes = %q", data)
	}
}
