package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=ledger
type Repository interface {
	AppendTransaction(ctx context.Context, txn *Transaction) error
	ListTransactions(ctx context.Context) ([]*Transaction, error)
	Balance(ctx context.Context) (int64, error)
	SetBalance(ctx context.Context, balance int64) error
	Reset(ctx context.Context, balance int64) error
}

// Service owns the wallet balance and the append-only transaction log.
// Every successful operation is observable through the log; nothing
// else mutates it.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TopUpPreset credits the wallet with one of the fixed presets and
// appends a TopUp transaction stamped with the given virtual time.
func (s *Service) TopUpPreset(ctx context.Context, at time.Time, amountQAR int64) (*Transaction, error) {
	if !validPreset(amountQAR) {
		return nil, ErrInvalidAmount
	}

	balance, err := s.repo.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading balance: %w", err)
	}

	if err := s.repo.SetBalance(ctx, balance+amountQAR); err != nil {
		return nil, fmt.Errorf("crediting wallet: %w", err)
	}

	txn := &Transaction{
		ID:        uuid.New(),
		At:        at,
		Kind:      KindTopUp,
		Title:     "Wallet top-up",
		AmountQAR: amountQAR,
	}

	if err := s.repo.AppendTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording top-up: %w", err)
	}

	return txn, nil
}

type DebitParams struct {
	Title     string
	AmountQAR int64
	Vertical  activity.Vertical
	Meta      Meta
}

// Debit settles an amount against the wallet. On insufficient funds it
// returns ErrInsufficientFunds and performs no mutation at all; the
// caller leaves the activity untouched and retries on a later tick.
func (s *Service) Debit(ctx context.Context, at time.Time, params DebitParams) (*Transaction, error) {
	balance, err := s.repo.Balance(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading balance: %w", err)
	}

	if balance < params.AmountQAR {
		return nil, ErrInsufficientFunds
	}

	if err := s.repo.SetBalance(ctx, balance-params.AmountQAR); err != nil {
		return nil, fmt.Errorf("debiting wallet: %w", err)
	}

	txn := s.debitTransaction(at, params)

	if err := s.repo.AppendTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording debit: %w", err)
	}

	return txn, nil
}

// FamilyDebit records a settlement paid by another household member.
// External payers are assumed always solvent in this simulation, so
// the owner's wallet balance is never touched and the debit always
// succeeds.
func (s *Service) FamilyDebit(ctx context.Context, at time.Time, params DebitParams) (*Transaction, error) {
	txn := s.debitTransaction(at, params)

	if err := s.repo.AppendTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("recording family debit: %w", err)
	}

	return txn, nil
}

func (s *Service) debitTransaction(at time.Time, params DebitParams) *Transaction {
	vertical := params.Vertical
	meta := params.Meta

	return &Transaction{
		ID:        uuid.New(),
		At:        at,
		Kind:      KindDebit,
		Title:     params.Title,
		AmountQAR: params.AmountQAR,
		Vertical:  &vertical,
		Meta:      &meta,
	}
}

func (s *Service) Balance(ctx context.Context) (int64, error) {
	return s.repo.Balance(ctx)
}

// Transactions returns the log most-recent-first.
func (s *Service) Transactions(ctx context.Context) ([]*Transaction, error) {
	return s.repo.ListTransactions(ctx)
}

// SetBalance overwrites the wallet without logging a transaction;
// scenario and demo plumbing only.
func (s *Service) SetBalance(ctx context.Context, balance int64) error {
	return s.repo.SetBalance(ctx, balance)
}

// Reset clears the log and seeds a fresh balance.
func (s *Service) Reset(ctx context.Context, balance int64) error {
	return s.repo.Reset(ctx, balance)
}
