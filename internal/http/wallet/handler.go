package wallet

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/export"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

type Handler struct {
	engine *engine.Engine
	export *export.Service
}

func NewHandler(eng *engine.Engine, exportSvc *export.Service) *Handler {
	return &Handler{engine: eng, export: exportSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/topup", h.topUp)
	r.Get("/transactions", h.transactions)
	r.Get("/transactions/export", h.exportCSV)
}

type walletResponse struct {
	BalanceQAR int64   `json:"balance_qar"`
	Presets    []int64 `json:"presets"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	balance, err := h.engine.Balance(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(walletResponse{BalanceQAR: balance, Presets: ledger.TopUpPresets}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type topUpRequest struct {
	AmountQAR int64 `json:"amount_qar"`
}

func (h *Handler) topUp(w http.ResponseWriter, r *http.Request) {
	var req topUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	txn, err := h.engine.TopUpPreset(r.Context(), req.AmountQAR)
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toTxnResponse(txn)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) transactions(w http.ResponseWriter, r *http.Request) {
	txns, err := h.engine.Transactions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	out := make([]txnResponse, len(txns))
	for i, txn := range txns {
		out[i] = toTxnResponse(txn)
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(out); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="statement.csv"`)

	if err := h.export.WriteCSV(r.Context(), w); err != nil {
		slog.Error("failed to write statement", "error", err)
	}
}

type txnMetaResponse struct {
	ActivityID    uuid.UUID `json:"activity_id"`
	PayerMemberID uuid.UUID `json:"payer_member_id"`
	SplitSummary  string    `json:"split_summary"`
}

type txnResponse struct {
	ID        uuid.UUID        `json:"id"`
	At        time.Time        `json:"at"`
	Kind      ledger.Kind      `json:"kind"`
	Title     string           `json:"title"`
	AmountQAR int64            `json:"amount_qar"`
	Vertical  *string          `json:"vertical,omitempty"`
	Meta      *txnMetaResponse `json:"meta,omitempty"`
}

func toTxnResponse(txn *ledger.Transaction) txnResponse {
	resp := txnResponse{
		ID:        txn.ID,
		At:        txn.At,
		Kind:      txn.Kind,
		Title:     txn.Title,
		AmountQAR: txn.AmountQAR,
	}

	if txn.Vertical != nil {
		v := string(*txn.Vertical)
		resp.Vertical = &v
	}

	if txn.Meta != nil {
		resp.Meta = &txnMetaResponse{
			ActivityID:    txn.Meta.ActivityID,
			PayerMemberID: txn.Meta.PayerMemberID,
			SplitSummary:  txn.Meta.SplitSummary,
		}
	}

	return resp
}
