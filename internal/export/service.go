// Package export writes the wallet's transaction log out as a CSV
// statement.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

// TransactionSource is the read side of the ledger; the engine
// satisfies it.
type TransactionSource interface {
	Transactions(ctx context.Context) ([]*ledger.Transaction, error)
}

type Service struct {
	transactions TransactionSource
}

func NewService(transactions TransactionSource) *Service {
	return &Service{transactions: transactions}
}

var header = []string{"at", "kind", "title", "vertical", "amount_qar", "activity_id", "payer_member_id", "split"}

// WriteCSV streams the statement, most recent transaction first, the
// same order the wallet screen shows.
func (s *Service) WriteCSV(ctx context.Context, w io.Writer) error {
	txns, err := s.transactions.Transactions(ctx)
	if err != nil {
		return fmt.Errorf("listing transactions: %w", err)
	}

	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, txn := range txns {
		if err := cw.Write(row(txn)); err != nil {
			return fmt.Errorf("writing transaction %s: %w", txn.ID, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// ExportFile writes the statement into dir and returns the file path.
func (s *Service) ExportFile(ctx context.Context, dir string, at time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("statement_%s.csv", at.Format("20060102_150405")))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	if err := s.WriteCSV(ctx, f); err != nil {
		return "", err
	}

	return path, nil
}

func row(txn *ledger.Transaction) []string {
	var vertical, activityID, payer, split string

	if txn.Vertical != nil {
		vertical = string(*txn.Vertical)
	}

	if txn.Meta != nil {
		activityID = txn.Meta.ActivityID.String()
		payer = txn.Meta.PayerMemberID.String()
		split = txn.Meta.SplitSummary
	}

	return []string{
		txn.At.Format(time.RFC3339),
		string(txn.Kind),
		txn.Title,
		vertical,
		fmt.Sprintf("%.2f", float64(txn.AmountQAR)/100),
		activityID,
		payer,
		split,
	}
}
