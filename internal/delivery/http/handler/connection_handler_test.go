package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"mentor-match/internal/delivery/http/dto"
	"mentor-match/internal/repository"
	"mentor-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type fakeConnectionUsecase struct {
	created repository.ConnectionRequest
	err     error

	gotSeekerID    uuid.UUID
	gotCandidateID uuid.UUID
	gotMessage     string
}

func (f *fakeConnectionUsecase) RequestConnection(_ context.Context, seekerID, candidateID uuid.UUID, message string) (repository.ConnectionRequest, error) {
	f.gotSeekerID = seekerID
	f.gotCandidateID = candidateID
	f.gotMessage = message
	return f.created, f.err
}

func TestConnectionHandler_RequestConnection(t *testing.T) {
	seekerID := uuid.New()
	candidateID := uuid.New()
	msg := "would love to connect"
	uc := &fakeConnectionUsecase{created: repository.ConnectionRequest{
		ID:          uuid.New(),
		SeekerID:    seekerID,
		CandidateID: candidateID,
		Message:     &msg,
		Status:      repository.ConnectionStatusPending,
		CreatedAt:   time.Now().UTC(),
	}}
	app := newTestApp(NewConnectionHandler(uc))

	body, _ := json.Marshal(dto.ConnectionRequest{SeekerID: seekerID, Message: msg})
	req := httptest.NewRequest("POST", "/api/v1/matches/"+candidateID.String()+"/connect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	if uc.gotSeekerID != seekerID || uc.gotCandidateID != candidateID {
		t.Fatalf("ids not forwarded: seeker=%s candidate=%s", uc.gotSeekerID, uc.gotCandidateID)
	}

	var sr semanticResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	var data dto.ConnectionResponse
	if err := json.Unmarshal(sr.Data, &data); err != nil {
		t.Fatalf("data unmarshal error: %v", err)
	}
	if data.Status != repository.ConnectionStatusPending {
		t.Fatalf("expected pending status, got %q", data.Status)
	}
}

func TestConnectionHandler_BadCandidateID(t *testing.T) {
	app := newTestApp(NewConnectionHandler(&fakeConnectionUsecase{}))

	body, _ := json.Marshal(dto.ConnectionRequest{SeekerID: uuid.New()})
	req := httptest.NewRequest("POST", "/api/v1/matches/nope/connect", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestConnectionHandler_UsecaseErrorsMapToStatus(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"member not found", usecase.ErrMemberNotFound, fiber.StatusNotFound},
		{"invalid", usecase.ErrInvalidConnection, fiber.StatusBadRequest},
		{"unavailable", usecase.ErrCandidateUnavailable, fiber.StatusConflict},
		{"duplicate", usecase.ErrConnectionExists, fiber.StatusConflict},
		{"internal", usecase.ErrInternal, fiber.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newTestApp(NewConnectionHandler(&fakeConnectionUsecase{err: tc.err}))

			body, _ := json.Marshal(dto.ConnectionRequest{SeekerID: uuid.New()})
			req := httptest.NewRequest("POST", "/api/v1/matches/"+uuid.NewString()+"/connect", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			if err != nil {
				t.Fatalf("request error: %v", err)
			}
			defer resp.Body.Close()

			if resp.StatusCode != tc.wantStatus {
				t.Fatalf("expected %d, got %d", tc.wantStatus, resp.StatusCode)
			}
		})
	}
}
