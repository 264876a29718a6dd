package household

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/household"
)

type Handler struct {
	engine *engine.Engine
}

func NewHandler(eng *engine.Engine) *Handler {
	return &Handler{engine: eng}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Get("/feed", h.feed)
	r.Post("/invites", h.invite)
	r.Post("/invites/{id}/accept", h.acceptInvite)
	r.Delete("/members/{id}", h.removeMember)
}

type memberResponse struct {
	ID         uuid.UUID      `json:"id"`
	Name       string         `json:"name"`
	Role       household.Role `json:"role"`
	AvatarSeed string         `json:"avatar_seed"`
}

type inviteResponse struct {
	ID        uuid.UUID              `json:"id"`
	Contact   string                 `json:"contact"`
	Status    household.InviteStatus `json:"status"`
	CreatedAt time.Time              `json:"created_at"`
}

type householdResponse struct {
	Name    string           `json:"name"`
	Members []memberResponse `json:"members"`
	Invites []inviteResponse `json:"invites"`
}

func (h *Handler) get(w http.ResponseWriter, _ *http.Request) {
	resp := householdResponse{Name: h.engine.HouseholdName()}

	for _, m := range h.engine.Members() {
		resp.Members = append(resp.Members, memberResponse{ID: m.ID, Name: m.Name, Role: m.Role, AvatarSeed: m.AvatarSeed})
	}

	for _, inv := range h.engine.Invites() {
		resp.Invites = append(resp.Invites, inviteResponse{ID: inv.ID, Contact: inv.Contact, Status: inv.Status, CreatedAt: inv.CreatedAt})
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type feedEntryResponse struct {
	ID   uuid.UUID `json:"id"`
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

func (h *Handler) feed(w http.ResponseWriter, _ *http.Request) {
	feed := h.engine.Feed()

	out := make([]feedEntryResponse, len(feed))
	for i, entry := range feed {
		out[i] = feedEntryResponse{ID: entry.ID, At: entry.At, Text: entry.Text}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type inviteRequest struct {
	Contact string `json:"contact"`
}

func (h *Handler) invite(w http.ResponseWriter, r *http.Request) {
	var req inviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	inv, err := h.engine.InviteMember(req.Contact)
	if err != nil {
		if errors.Is(err, household.ErrInvalidContact) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(inviteResponse{ID: inv.ID, Contact: inv.Contact, Status: inv.Status, CreatedAt: inv.CreatedAt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type acceptInviteRequest struct {
	Name string `json:"name"`
}

func (h *Handler) acceptInvite(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req acceptInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	m, err := h.engine.AcceptInvite(id, req.Name)
	if err != nil {
		if errors.Is(err, household.ErrInviteNotFound) {
			http.Error(w, "invite not found", http.StatusNotFound)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(memberResponse{ID: m.ID, Name: m.Name, Role: m.Role, AvatarSeed: m.AvatarSeed}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) removeMember(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.engine.RemoveMember(id); err != nil {
		switch {
		case errors.Is(err, household.ErrOwnerImmutable):
			http.Error(w, err.Error(), http.StatusForbidden)
		case errors.Is(err, household.ErrMemberNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.WriteHeader(http.StatusNoContent)
}
