package plan

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Steve0012345/Snoonu-App/internal/clock"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
)

type Handler struct {
	engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/activate", h.activate)
	r.Post("/deactivate", h.deactivate)
	r.Post("/speed", h.setSpeed)
}

type planResponse struct {
	IsActive           bool        `json:"is_active"`
	VirtualNow         time.Time   `json:"virtual_now"`
	Speed              clock.Speed `json:"speed"`
	MonthlyBudgetQAR   int64       `json:"monthly_budget_qar"`
	TotalAllocatedQAR  int64       `json:"total_allocated_qar"`
	RemainingBudgetQAR int64       `json:"remaining_budget_qar"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	allocated, err := h.engine.TotalAllocated(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	remaining, err := h.engine.RemainingBudget(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	resp := planResponse{
		IsActive:           h.engine.PlanActive(),
		VirtualNow:         h.engine.VirtualNow(),
		Speed:              h.engine.Speed(),
		MonthlyBudgetQAR:   h.engine.MonthlyBudget(),
		TotalAllocatedQAR:  allocated,
		RemainingBudgetQAR: remaining,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) activate(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.ActivatePlan(r.Context()); err != nil {
		if errors.Is(err, engine.ErrNoActivities) || errors.Is(err, engine.ErrPendingApprovals) {
			http.Error(w, err.Error(), http.StatusConflict)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deactivate(w http.ResponseWriter, _ *http.Request) {
	h.engine.DeactivatePlan()
	w.WriteHeader(http.StatusNoContent)
}

type setSpeedRequest struct {
	Speed clock.Speed `json:"speed"`
}

func (h *Handler) setSpeed(w http.ResponseWriter, r *http.Request) {
	var req setSpeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.engine.SetSpeed(req.Speed); err != nil {
		if errors.Is(err, engine.ErrInvalidSpeed) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
