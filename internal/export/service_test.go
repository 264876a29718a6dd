package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/export"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

type staticSource struct {
	txns []*ledger.Transaction
	err  error
}

func (s *staticSource) Transactions(_ context.Context) ([]*ledger.Transaction, error) {
	return s.txns, s.err
}

func TestService_WriteCSV(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	vertical := activity.VerticalGroceries
	activityID := uuid.New()
	payerID := uuid.New()

	src := &staticSource{txns: []*ledger.Transaction{
		{
			ID:        uuid.New(),
			At:        at.Add(time.Minute),
			Kind:      ledger.KindDebit,
			Title:     "Groceries run",
			AmountQAR: 22_000,
			Vertical:  &vertical,
			Meta: &ledger.Meta{
				ActivityID:    activityID,
				PayerMemberID: payerID,
				SplitSummary:  "equal",
			},
		},
		{
			ID:        uuid.New(),
			At:        at,
			Kind:      ledger.KindTopUp,
			Title:     "Wallet top-up",
			AmountQAR: 50_000,
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, export.NewService(src).WriteCSV(context.Background(), &buf))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"at", "kind", "title", "vertical", "amount_qar", "activity_id", "payer_member_id", "split"}, records[0])

	assert.Equal(t, []string{
		"2024-05-01T12:01:00Z",
		"debit",
		"Groceries run",
		"Groceries",
		"220.00",
		activityID.String(),
		payerID.String(),
		"equal",
	}, records[1])

	// Top-ups carry no vertical or settlement metadata.
	assert.Equal(t, []string{"2024-05-01T12:00:00Z", "topup", "Wallet top-up", "", "500.00", "", "", ""}, records[2])
}

func TestService_WriteCSVSourceError(t *testing.T) {
	src := &staticSource{err: errors.New("source error")}

	var buf bytes.Buffer
	err := export.NewService(src).WriteCSV(context.Background(), &buf)
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestService_ExportFile(t *testing.T) {
	dir := t.TempDir()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	path, err := export.NewService(&staticSource{}).ExportFile(context.Background(), dir, at)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "statement_20240501_120000.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "at,kind,title,vertical,amount_qar,activity_id,payer_member_id,split\n", string(data))
}
