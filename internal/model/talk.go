package model

// PaperType classifies how a talk was presented
type PaperType string

const (
	PaperInvited      PaperType = "invited"
	PaperTutorial     PaperType = "tutorial"
	PaperKeynote      PaperType = "keynote"
	PaperRegular      PaperType = "regular"
	PaperPlenaryLong  PaperType = "plenary_long"
	PaperPlenaryShort PaperType = "plenary_short"
)

// TalkRecord is one extracted talk or accepted paper. Created once per
// detected talk block; only the schedule fields (Speaker, ScheduledDate,
// ScheduledTime, DurationMinutes) are attached later, by the matcher.
type TalkRecord struct {
	Title        string    `json:"title"`
	Speakers     []string  `json:"speakers,omitempty"`
	Affiliations []string  `json:"affiliations,omitempty"` // parallel to Speakers
	Abstract     string    `json:"abstract,omitempty"`
	ArxivIDs     []string  `json:"arxiv_ids,omitempty"`
	PaperType    PaperType `json:"paper_type"`

	PresentationURL string `json:"presentation_url,omitempty"`
	VideoURL        string `json:"video_url,omitempty"`
	YouTubeID       string `json:"youtube_id,omitempty"`
	SessionName     string `json:"session_name,omitempty"`
	Award           string `json:"award,omitempty"`
	Notes           string `json:"notes,omitempty"`

	// Schedule enrichment, empty until matched.
	Speaker         string `json:"speaker,omitempty"`
	ScheduledDate   string `json:"scheduled_date,omitempty"`
	ScheduledTime   string `json:"scheduled_time,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
}

// ScheduleEvent is one slot parsed from a schedule document. Read-only
// input to the matcher.
type ScheduleEvent struct {
	Title           string   `json:"title"`
	NormalizedTitle string   `json:"normalized_title"`
	Date            string   `json:"date"`
	StartTime       string   `json:"start_time"`
	DurationMinutes int      `json:"duration_minutes"`
	Speaker         string   `json:"speaker,omitempty"`
	SessionType     string   `json:"session_type,omitempty"`
	Track           string   `json:"track,omitempty"`
	ArxivIDs        []string `json:"arxiv_ids,omitempty"`
}

// MatchResult pairs a talk with at most one schedule event.
// EventIndex is -1 when no event scored above the acceptance threshold;
// such talks are surfaced for manual review, not treated as failures.
type MatchResult struct {
	TalkIndex  int     `json:"talk_index"`
	EventIndex int     `json:"event_index"`
	Score      float64 `json:"score"`
}

// Matched reports whether a schedule event was attached.
func (m MatchResult) Matched() bool { return m.EventIndex >= 0 }
