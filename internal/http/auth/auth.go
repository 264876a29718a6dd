// Package auth issues and verifies household member tokens. Approvals
// are per member, so the approve/reject endpoints need to know who is
// calling; a member exchanges their ID for a short-lived HS256 token
// and the middleware puts the verified ID on the request context.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/household"
)

type contextKey struct{}

// MemberSource verifies that a member ID belongs to the household.
type MemberSource interface {
	Members() []*household.Member
}

type Handler struct {
	secret  []byte
	ttl     time.Duration
	members MemberSource
}

func NewHandler(secret string, ttl time.Duration, members MemberSource) *Handler {
	return &Handler{secret: []byte(secret), ttl: ttl, members: members}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/token", h.issueToken)
}

type tokenRequest struct {
	MemberID uuid.UUID `json:"member_id"`
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !h.isMember(req.MemberID) {
		http.Error(w, "unknown member", http.StatusNotFound)
		return
	}

	expiresAt := time.Now().Add(h.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   req.MemberID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.secret)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(tokenResponse{Token: signed, ExpiresAt: expiresAt}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// RequireMember rejects requests without a valid bearer token for a
// current household member.
func (h *Handler) RequireMember(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		memberID, err := h.verify(r)
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), contextKey{}, memberID)))
	})
}

var errBadToken = errors.New("invalid token")

func (h *Handler) verify(r *http.Request) (uuid.UUID, error) {
	raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !ok {
		return uuid.Nil, errBadToken
	}

	var claims jwt.RegisteredClaims

	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return uuid.Nil, errBadToken
	}

	memberID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, errBadToken
	}

	if !h.isMember(memberID) {
		return uuid.Nil, errBadToken
	}

	return memberID, nil
}

func (h *Handler) isMember(id uuid.UUID) bool {
	for _, m := range h.members.Members() {
		if m.ID == id {
			return true
		}
	}

	return false
}

// MemberID returns the authenticated member from the request context.
func MemberID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}
