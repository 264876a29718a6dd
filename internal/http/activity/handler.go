package activity

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/http/auth"
)

type Handler struct {
	engine *engine.Engine
	auth   *auth.Handler
}

func NewHandler(eng *engine.Engine, authH *auth.Handler) *Handler {
	return &Handler{engine: eng, auth: authH}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)

	r.Group(func(r chi.Router) {
		r.Use(h.auth.RequireMember)
		r.Post("/{id}/approve", h.approve)
		r.Post("/{id}/reject", h.reject)
	})
}

type splitRequest struct {
	Mode                  activity.SplitMode  `json:"mode"`
	CustomAmountsByMember map[uuid.UUID]int64 `json:"custom_amounts_by_member,omitempty"`
	PayerMemberID         uuid.UUID           `json:"payer_member_id,omitempty"`
	RequiresApprovals     bool                `json:"requires_approvals"`
}

type createActivityRequest struct {
	Title      string              `json:"title"`
	Vertical   activity.Vertical   `json:"vertical"`
	StartAt    time.Time           `json:"start_at"`
	AmountQAR  int64               `json:"amount_qar"`
	Recurrence activity.Recurrence `json:"recurrence"`
	Count      int                 `json:"count"`
	Split      *splitRequest       `json:"split,omitempty"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := activity.CreateParams{
		Title:      req.Title,
		Vertical:   req.Vertical,
		StartAt:    req.StartAt,
		AmountQAR:  req.AmountQAR,
		Recurrence: req.Recurrence,
		Count:      req.Count,
	}

	if req.Split != nil {
		params.Split = &activity.SplitParams{
			Mode:                  req.Split.Mode,
			CustomAmountsByMember: req.Split.CustomAmountsByMember,
			PayerMemberID:         req.Split.PayerMemberID,
			RequiresApprovals:     req.Split.RequiresApprovals,
		}
	}

	acts, err := h.engine.CreateActivity(r.Context(), params)
	if err != nil {
		status := http.StatusInternalServerError

		switch {
		case errors.Is(err, activity.ErrEmptyTitle),
			errors.Is(err, activity.ErrInvalidAmount),
			errors.Is(err, activity.ErrMissingDate):
			status = http.StatusBadRequest
		case errors.Is(err, activity.ErrBudgetExceeded):
			status = http.StatusConflict
		}

		http.Error(w, err.Error(), status)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponseList(acts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	acts, err := h.engine.Activities(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(acts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	a, err := h.engine.Activity(r.Context(), id)
	if err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(a)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) approve(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.engine.ApproveSplit)
}

func (h *Handler) reject(w http.ResponseWriter, r *http.Request) {
	h.setApproval(w, r, h.engine.RejectSplit)
}

func (h *Handler) setApproval(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, activityID, memberID uuid.UUID) error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	memberID, ok := auth.MemberID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := op(r.Context(), id, memberID); err != nil {
		if errors.Is(err, activity.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
