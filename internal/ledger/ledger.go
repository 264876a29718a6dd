package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

// Kind represents the direction of a wallet movement.
type Kind string

const (
	KindTopUp Kind = "topup"
	KindDebit Kind = "debit"
)

// Meta links a transaction back to the activity that produced it.
type Meta struct {
	ActivityID    uuid.UUID
	PayerMemberID uuid.UUID
	SplitSummary  string
}

// Transaction is an immutable record of money movement, stamped with
// the virtual time of settlement.
type Transaction struct {
	ID        uuid.UUID
	At        time.Time
	Kind      Kind
	Title     string
	AmountQAR int64 // dirhams, always positive
	Vertical  *activity.Vertical
	Meta      *Meta
}

func (t *Transaction) Clone() *Transaction {
	if t == nil {
		return nil
	}

	out := *t

	if t.Vertical != nil {
		v := *t.Vertical
		out.Vertical = &v
	}

	if t.Meta != nil {
		m := *t.Meta
		out.Meta = &m
	}

	return &out
}

var (
	// ErrInvalidAmount rejects top-ups outside the preset allow-list.
	ErrInvalidAmount = errors.New("amount is not a top-up preset")

	// ErrInsufficientFunds is the recoverable per-activity settlement
	// condition: the wallet is untouched and the caller retries later.
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)

// TopUpPresets is the allow-list for the preset entry point, in
// dirhams (QAR 100, 200, 500, 1000).
var TopUpPresets = []int64{10_000, 20_000, 50_000, 100_000}

func validPreset(amount int64) bool {
	for _, p := range TopUpPresets {
		if amount == p {
			return true
		}
	}

	return false
}
