package model

// CommitteeType groups a conference's organizing bodies
type CommitteeType string

const (
	CommitteePC    CommitteeType = "PC"    // Program Committee
	CommitteeSC    CommitteeType = "SC"    // Steering Committee
	CommitteeOC    CommitteeType = "OC"    // Organizing Committee
	CommitteeLocal CommitteeType = "Local" // Local arrangements
)

// Position is the canonical rank within a committee
type Position string

const (
	PositionMember    Position = "member"
	PositionChair     Position = "chair"
	PositionCoChair   Position = "co_chair"
	PositionAreaChair Position = "area_chair"
)

// PersonRecord is one extracted committee membership.
// Name is always non-empty and mixed-case; records violating that are
// rejected during extraction, never emitted.
type PersonRecord struct {
	Name        string        `json:"name"`
	Affiliation string        `json:"affiliation,omitempty"`
	Committee   CommitteeType `json:"committee"`
	Position    Position      `json:"position"`
	RoleTitle   string        `json:"role_title,omitempty"` // e.g. "Publicity Chair", distinct from rank
}

// CommitteeLabels maps each committee type to the heading substrings that
// open its section on a committee page. Matching is case-insensitive.
type CommitteeLabels map[CommitteeType][]string

// DefaultCommitteeLabels returns the label sets observed across conference
// sites. Construct once at startup; never mutate.
func DefaultCommitteeLabels() CommitteeLabels {
	return CommitteeLabels{
		CommitteePC: {
			"program committee",
			"programme committee",
			"pc members",
		},
		CommitteeSC: {
			"steering committee",
			"sc members",
		},
		CommitteeOC: {
			"organizing committee",
			"organising committee",
			"local organizing committee",
			"local organising committee",
			"organization",
			"organisers",
			"organizers",
		},
		CommitteeLocal: {
			"local committee",
			"local arrangements",
		},
	}
}
