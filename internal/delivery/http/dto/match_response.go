package dto

import "github.com/google/uuid"

type MatchResponse struct {
	CandidateID uuid.UUID `json:"candidate_id"`
	Score       float64   `json:"score"`
	Reasons     []string  `json:"reasons"`
}

type MatchListResponse struct {
	SeekerID uuid.UUID       `json:"seeker_id"`
	Matches  []MatchResponse `json:"matches"`
}
