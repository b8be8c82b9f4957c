package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"mentor-match/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const ConnectionStatusPending = "pending"

type ConnectionRequest struct {
	ID          uuid.UUID
	SeekerID    uuid.UUID
	CandidateID uuid.UUID
	Message     *string
	Status      string
	CreatedAt   time.Time
}

type ConnectionRepository interface {
	Create(ctx context.Context, req ConnectionRequest) error
	ExistsPending(ctx context.Context, seekerID, candidateID uuid.UUID) (bool, error)
}

type PostgresConnectionRepository struct {
	db database.DB
}

func NewPostgresConnectionRepository(db database.DB) *PostgresConnectionRepository {
	return &PostgresConnectionRepository{db: db}
}

func (r *PostgresConnectionRepository) Create(ctx context.Context, req ConnectionRequest) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO connection_requests (id, seeker_id, candidate_id, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		req.ID, req.SeekerID, req.CandidateID, req.Message, req.Status, req.CreatedAt,
	)
	return err
}

func (r *PostgresConnectionRepository) ExistsPending(ctx context.Context, seekerID, candidateID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS(
			SELECT 1 FROM connection_requests
			WHERE seeker_id = $1 AND candidate_id = $2 AND status = $3
		)`,
		seekerID, candidateID, ConnectionStatusPending,
	)
	if err := row.Scan(&exists); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}
