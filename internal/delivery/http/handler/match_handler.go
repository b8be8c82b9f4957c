package handler

import (
	"errors"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/domain/matching"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.MatchUsecase
}

func NewMatchHandler(uc usecase.MatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/matches", h.FindMatches)
	r.Get("/members/:member_id/recommendations", h.GetRecommendations)
}

func (h *MatchHandler) FindMatches(c fiber.Ctx) error {
	var req dto.MatchRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.SeekerID == uuid.Nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "seeker_id is required", nil, nil)
	}

	matches, err := h.uc.FindMatches(c.Context(), req.SeekerID, toPreferences(req.Preferences), req.Limit)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchListResponse(req.SeekerID, matches))
}

func (h *MatchHandler) GetRecommendations(c fiber.Ctx) error {
	memberID, err := uuid.Parse(c.Params("member_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid member_id", nil, err)
	}

	matches, err := h.uc.GetRecommendations(c.Context(), memberID)
	if err != nil {
		return mapMatchUsecaseError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, toMatchListResponse(memberID, matches))
}

func toPreferences(in *dto.MatchPreferencesRequest) matching.Preferences {
	if in == nil {
		return matching.Preferences{}
	}
	prefs := matching.Preferences{
		PreferredSkills:       in.PreferredSkills,
		PreferredIndustries:   in.PreferredIndustries,
		ExperienceLevel:       in.ExperienceLevel,
		PreferredLocationHint: in.PreferredLocationHint,
	}
	if r := in.GraduationYearGap; r != nil {
		prefs.YearGapRange = &matching.YearGapRange{Min: r.Min, Max: r.Max}
	}
	return prefs
}

func toMatchListResponse(seekerID uuid.UUID, matches []matching.Match) dto.MatchListResponse {
	out := make([]dto.MatchResponse, 0, len(matches))
	for _, m := range matches {
		reasons := m.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		out = append(out, dto.MatchResponse{
			CandidateID: m.CandidateID,
			Score:       m.Score,
			Reasons:     reasons,
		})
	}
	return dto.MatchListResponse{SeekerID: seekerID, Matches: out}
}

func mapMatchUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrSeekerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Seeker not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidPreferences):
		return middleware.NewAppError(fiber.StatusBadRequest, err.Error(), nil, err)
	case errors.Is(err, usecase.ErrInternal):
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
