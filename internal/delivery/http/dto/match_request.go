package dto

import "github.com/google/uuid"

type MatchRequest struct {
	SeekerID    uuid.UUID                `json:"seeker_id"`
	Preferences *MatchPreferencesRequest `json:"preferences"`
	Limit       int                      `json:"limit"`
}

type MatchPreferencesRequest struct {
	PreferredSkills       []string      `json:"preferred_skills"`
	PreferredIndustries   []string      `json:"preferred_industries"`
	ExperienceLevel       string        `json:"experience_level"`
	PreferredLocationHint string        `json:"preferred_location_hint"`
	GraduationYearGap     *YearGapRange `json:"graduation_year_gap_range"`
}

type YearGapRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}
