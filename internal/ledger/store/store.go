// Package store keeps the wallet balance and transaction log in
// process memory, newest entry first.
package store

import (
	"context"

	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

type Store struct {
	balance int64
	txns    []*ledger.Transaction
}

func New(balance int64) *Store {
	return &Store{balance: balance}
}

// AppendTransaction prepends so the log reads most-recent-first.
func (s *Store) AppendTransaction(_ context.Context, txn *ledger.Transaction) error {
	s.txns = append([]*ledger.Transaction{txn.Clone()}, s.txns...)
	return nil
}

func (s *Store) ListTransactions(_ context.Context) ([]*ledger.Transaction, error) {
	out := make([]*ledger.Transaction, len(s.txns))
	for i, txn := range s.txns {
		out[i] = txn.Clone()
	}

	return out, nil
}

func (s *Store) Balance(_ context.Context) (int64, error) {
	return s.balance, nil
}

func (s *Store) SetBalance(_ context.Context, balance int64) error {
	s.balance = balance
	return nil
}

func (s *Store) Reset(_ context.Context, balance int64) error {
	s.balance = balance
	s.txns = nil

	return nil
}
