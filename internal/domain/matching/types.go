package matching

import "github.com/google/uuid"

// Member is the slice of a profile the scorers read. Callers map their
// storage entities into this shape so the engine stays free of I/O types.
type Member struct {
	ID             uuid.UUID
	Skills         []string
	Organization   string
	GraduationYear *int
}

type YearGapRange struct {
	Min int
	Max int
}

// Preferences are seeker-supplied overrides. Every field is optional;
// validation happens at the request boundary, not here.
type Preferences struct {
	PreferredSkills       []string
	PreferredIndustries   []string
	ExperienceLevel       string
	PreferredLocationHint string
	YearGapRange          *YearGapRange
}

const (
	ExperienceLevelEntry     = "entry"
	ExperienceLevelMid       = "mid"
	ExperienceLevelSenior    = "senior"
	ExperienceLevelExecutive = "executive"
)

func ValidExperienceLevel(level string) bool {
	switch level {
	case "", ExperienceLevelEntry, ExperienceLevelMid, ExperienceLevelSenior, ExperienceLevelExecutive:
		return true
	}
	return false
}

// Match is one scored candidate. Score is a pure function of
// (seeker, candidate, preferences, now); it never depends on the rest of
// the pool or the order candidates were scored in.
type Match struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
}
