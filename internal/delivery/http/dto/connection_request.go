package dto

import (
	"time"

	"github.com/google/uuid"
)

type ConnectionRequest struct {
	SeekerID uuid.UUID `json:"seeker_id"`
	Message  string    `json:"message"`
}

type ConnectionResponse struct {
	ID          uuid.UUID `json:"id"`
	SeekerID    uuid.UUID `json:"seeker_id"`
	CandidateID uuid.UUID `json:"candidate_id"`
	Message     *string   `json:"message"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
