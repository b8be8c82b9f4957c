package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrConnectionExists     = errors.New("connection request already pending")
	ErrInvalidConnection    = errors.New("invalid connection request")
	ErrCandidateUnavailable = errors.New("candidate not available")
)

type ConnectionUsecase interface {
	RequestConnection(ctx context.Context, seekerID, candidateID uuid.UUID, message string) (repository.ConnectionRequest, error)
}

// ConnectionInvalidator drops cached match lists for a member after a
// connection request changes what should be recommended.
type ConnectionInvalidator interface {
	InvalidateMatches(ctx context.Context, memberID string) error
}

type Connection struct {
	members     repository.MemberRepository
	connections repository.ConnectionRepository
	invalidator ConnectionInvalidator
	logger      *zap.Logger
	now         func() time.Time
}

func NewConnectionUsecase(
	members repository.MemberRepository,
	connections repository.ConnectionRepository,
	invalidator ConnectionInvalidator,
	logger *zap.Logger,
) *Connection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Connection{
		members:     members,
		connections: connections,
		invalidator: invalidator,
		logger:      logger,
		now:         time.Now,
	}
}

func (u *Connection) RequestConnection(ctx context.Context, seekerID, candidateID uuid.UUID, message string) (repository.ConnectionRequest, error) {
	if seekerID == uuid.Nil || candidateID == uuid.Nil {
		return repository.ConnectionRequest{}, ErrInvalidConnection
	}
	if seekerID == candidateID {
		return repository.ConnectionRequest{}, ErrInvalidConnection
	}

	if _, err := u.members.GetProfile(ctx, seekerID); err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return repository.ConnectionRequest{}, ErrMemberNotFound
		}
		return repository.ConnectionRequest{}, ErrInternal
	}
	candidate, err := u.members.GetProfile(ctx, candidateID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return repository.ConnectionRequest{}, ErrMemberNotFound
		}
		return repository.ConnectionRequest{}, ErrInternal
	}
	if !candidate.AvailableAsCandidate {
		return repository.ConnectionRequest{}, ErrCandidateUnavailable
	}

	pending, err := u.connections.ExistsPending(ctx, seekerID, candidateID)
	if err != nil {
		return repository.ConnectionRequest{}, ErrInternal
	}
	if pending {
		return repository.ConnectionRequest{}, ErrConnectionExists
	}

	req := repository.ConnectionRequest{
		ID:          uuid.New(),
		SeekerID:    seekerID,
		CandidateID: candidateID,
		Status:      repository.ConnectionStatusPending,
		CreatedAt:   u.now(),
	}
	if msg := strings.TrimSpace(message); msg != "" {
		req.Message = &msg
	}

	if err := u.connections.Create(ctx, req); err != nil {
		return repository.ConnectionRequest{}, ErrInternal
	}

	if u.invalidator != nil {
		if err := u.invalidator.InvalidateMatches(ctx, seekerID.String()); err != nil {
			u.logger.Debug("match cache invalidation failed",
				zap.String("seeker_id", seekerID.String()),
				zap.Error(err))
		}
	}
	return req, nil
}
