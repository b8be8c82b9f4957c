package handler

import (
	"errors"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/delivery/http/middleware"
	"mentor-match/internal/pkg/response"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type ConnectionHandler struct {
	uc usecase.ConnectionUsecase
}

func NewConnectionHandler(uc usecase.ConnectionUsecase) *ConnectionHandler {
	return &ConnectionHandler{uc: uc}
}

func (h *ConnectionHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Post("/matches/:candidate_id/connect", h.RequestConnection)
}

func (h *ConnectionHandler) RequestConnection(c fiber.Ctx) error {
	candidateID, err := uuid.Parse(c.Params("candidate_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid candidate_id", nil, err)
	}

	var req dto.ConnectionRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	created, err := h.uc.RequestConnection(c.Context(), req.SeekerID, candidateID, req.Message)
	if err != nil {
		return mapConnectionUsecaseError(err)
	}

	data := dto.ConnectionResponse{
		ID:          created.ID,
		SeekerID:    created.SeekerID,
		CandidateID: created.CandidateID,
		Message:     created.Message,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
	}
	return response.Success(c, fiber.StatusCreated, response.MessageCreated, data)
}

func mapConnectionUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrMemberNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Member not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidConnection):
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid connection request", nil, err)
	case errors.Is(err, usecase.ErrCandidateUnavailable):
		return middleware.NewAppError(fiber.StatusConflict, "Candidate not available", nil, err)
	case errors.Is(err, usecase.ErrConnectionExists):
		return middleware.NewAppError(fiber.StatusConflict, "Connection request already pending", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
