package usecase

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"mentor-match/internal/domain/matching"
	"mentor-match/internal/domain/member"
	"mentor-match/internal/pool"
	"mentor-match/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrSeekerNotFound     = errors.New("seeker not found")
	ErrInvalidPreferences = errors.New("invalid match preferences")
	ErrInternal           = errors.New("internal error")
)

const (
	DefaultLimit         = 10
	MaxLimit             = 50
	RecommendationsLimit = 5

	maxWorkers = 8

	// The semantic bonus only fires when the provider is confident; weaker
	// similarities are indistinguishable from noise on short excerpts.
	semanticSimilarityFloor = 0.6

	excerptLimit = 400
)

// SimilarityProvider scores how close two profile excerpts are, in [0,1].
type SimilarityProvider interface {
	Similarity(ctx context.Context, a, b string) (float64, error)
}

// MatchCache is the slice of the cache the match flow needs.
type MatchCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
}

type MatchUsecase interface {
	FindMatches(ctx context.Context, seekerID uuid.UUID, prefs matching.Preferences, limit int) ([]matching.Match, error)
	GetRecommendations(ctx context.Context, seekerID uuid.UUID) ([]matching.Match, error)
}

type Match struct {
	members    repository.MemberRepository
	similarity SimilarityProvider
	cache      MatchCache
	engine     *matching.Engine
	logger     *zap.Logger

	workers           int
	cacheTTL          time.Duration
	similarityTimeout time.Duration
	now               func() time.Time
}

func NewMatchUsecase(
	members repository.MemberRepository,
	similarity SimilarityProvider,
	cache MatchCache,
	logger *zap.Logger,
	workers int,
	cacheTTL time.Duration,
	similarityTimeout time.Duration,
) *Match {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}
	if cacheTTL <= 0 {
		cacheTTL = 300 * time.Second
	}
	if similarityTimeout <= 0 {
		similarityTimeout = 1500 * time.Millisecond
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Match{
		members:           members,
		similarity:        similarity,
		cache:             cache,
		engine:            matching.NewEngine(matching.DefaultWeights(), nil, nil),
		logger:            logger,
		workers:           workers,
		cacheTTL:          cacheTTL,
		similarityTimeout: similarityTimeout,
		now:               time.Now,
	}
}

func (u *Match) FindMatches(ctx context.Context, seekerID uuid.UUID, prefs matching.Preferences, limit int) ([]matching.Match, error) {
	if seekerID == uuid.Nil {
		return nil, fmt.Errorf("%w: seeker_id is required", ErrInvalidPreferences)
	}
	if err := validatePreferences(prefs); err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	key := matchesCacheKey(seekerID, prefs, limit)
	if u.cache != nil {
		var cached []matching.Match
		if hit, err := u.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	seeker, err := u.members.GetProfile(ctx, seekerID)
	if err != nil {
		if errors.Is(err, repository.ErrMemberNotFound) {
			return nil, ErrSeekerNotFound
		}
		return nil, ErrInternal
	}

	candidates, err := u.members.ListCandidates(ctx, seeker.ScopeID, seekerID)
	if err != nil {
		return nil, ErrInternal
	}
	if len(candidates) == 0 {
		return []matching.Match{}, nil
	}

	scored, err := u.scorePool(ctx, seeker, candidates, prefs)
	if err != nil {
		return nil, err
	}

	ranked := matching.Rank(scored, seekerID, limit)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, ranked, u.cacheTTL); err != nil {
			u.logger.Debug("match cache store failed", zap.Error(err))
		}
	}
	return ranked, nil
}

func (u *Match) GetRecommendations(ctx context.Context, seekerID uuid.UUID) ([]matching.Match, error) {
	return u.FindMatches(ctx, seekerID, matching.Preferences{}, RecommendationsLimit)
}

// scorePool fans the candidates out over a bounded worker pool. Each task
// writes its result into a pre-sized slot, so no ordering is imposed by the
// pool itself. A cancelled context aborts the whole run; partial results
// are never returned.
func (u *Match) scorePool(ctx context.Context, seeker member.Profile, candidates []member.Profile, prefs matching.Preferences) ([]matching.Match, error) {
	now := u.now()
	seekerMember := toEngineMember(seeker)
	seekerExcerpt := seeker.Excerpt(excerptLimit)

	results := make([]matching.Match, len(candidates))
	p := pool.New(u.workers, len(candidates))
	for i, c := range candidates {
		i, c := i, c
		p.Submit(func(ctx context.Context) error {
			results[i] = u.scoreCandidate(ctx, seekerMember, seekerExcerpt, c, prefs, now)
			return nil
		})
	}
	p.Close()

	for range p.Run(ctx) {
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("match scoring aborted: %w", err)
	}
	return results, nil
}

func (u *Match) scoreCandidate(ctx context.Context, seeker matching.Member, seekerExcerpt string, candidate member.Profile, prefs matching.Preferences, now time.Time) matching.Match {
	sub := u.engine.Evaluate(seeker, toEngineMember(candidate), prefs, now)

	bonus := false
	if len(sub.SharedSkills) == 0 && u.similarity != nil {
		bonus = u.semanticBonus(ctx, seekerExcerpt, candidate)
	}
	return u.engine.Combine(sub, bonus)
}

// semanticBonus consults the external provider only when lexical skill
// overlap found nothing. Provider failure means no bonus, never a failed
// match request.
func (u *Match) semanticBonus(ctx context.Context, seekerExcerpt string, candidate member.Profile) bool {
	candidateExcerpt := candidate.Excerpt(excerptLimit)
	if seekerExcerpt == "" || candidateExcerpt == "" {
		return false
	}

	callCtx, cancel := context.WithTimeout(ctx, u.similarityTimeout)
	defer cancel()

	sim, err := u.similarity.Similarity(callCtx, seekerExcerpt, candidateExcerpt)
	if err != nil {
		u.logger.Debug("similarity call failed, skipping bonus",
			zap.String("candidate_id", candidate.ID.String()),
			zap.Error(err))
		return false
	}
	return sim > semanticSimilarityFloor
}

func validatePreferences(prefs matching.Preferences) error {
	if !matching.ValidExperienceLevel(prefs.ExperienceLevel) {
		return fmt.Errorf("%w: unknown experience_level %q", ErrInvalidPreferences, prefs.ExperienceLevel)
	}
	if r := prefs.YearGapRange; r != nil {
		if r.Min < 0 {
			return fmt.Errorf("%w: graduation_year_gap_range.min must be >= 0", ErrInvalidPreferences)
		}
		if r.Min > r.Max {
			return fmt.Errorf("%w: graduation_year_gap_range is inverted", ErrInvalidPreferences)
		}
	}
	return nil
}

func toEngineMember(p member.Profile) matching.Member {
	return matching.Member{
		ID:             p.ID,
		Skills:         p.Skills,
		Organization:   p.Organization(),
		GraduationYear: p.GraduationYear,
	}
}
