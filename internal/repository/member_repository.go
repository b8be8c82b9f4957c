package repository

import (
	"context"
	"database/sql"
	"errors"

	"mentor-match/internal/database"
	"mentor-match/internal/domain/member"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrMemberNotFound = errors.New("member not found")
)

type MemberRepository interface {
	GetProfile(ctx context.Context, id uuid.UUID) (member.Profile, error)
	ListCandidates(ctx context.Context, scopeID, excludeID uuid.UUID) ([]member.Profile, error)
}

type PostgresMemberRepository struct {
	db database.DB
}

func NewPostgresMemberRepository(db database.DB) *PostgresMemberRepository {
	return &PostgresMemberRepository{db: db}
}

// current_role is quoted because it collides with the SQL keyword.
const memberColumns = `id, display_name, skills, "current_role", current_organization,
	graduation_year, bio, available_as_candidate, scope_id, created_at, updated_at`

func (r *PostgresMemberRepository) GetProfile(ctx context.Context, id uuid.UUID) (member.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+memberColumns+` FROM member_profiles WHERE id = $1`, id)

	p, err := scanProfile(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return member.Profile{}, ErrMemberNotFound
		}
		return member.Profile{}, err
	}
	return p, nil
}

func (r *PostgresMemberRepository) ListCandidates(ctx context.Context, scopeID, excludeID uuid.UUID) ([]member.Profile, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+memberColumns+`
		 FROM member_profiles
		 WHERE scope_id = $1
		   AND available_as_candidate = TRUE
		   AND id <> $2
		 ORDER BY created_at ASC`,
		scopeID, excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]member.Profile, 0)
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProfile(s scanner) (member.Profile, error) {
	var p member.Profile
	if err := s.Scan(
		&p.ID,
		&p.DisplayName,
		&p.Skills,
		&p.CurrentRole,
		&p.CurrentOrganization,
		&p.GraduationYear,
		&p.Bio,
		&p.AvailableAsCandidate,
		&p.ScopeID,
		&p.CreatedAt,
		&p.UpdatedAt,
	); err != nil {
		return member.Profile{}, err
	}
	if p.Skills == nil {
		p.Skills = []string{}
	}
	return p, nil
}
