package scenario_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/scenario"
)

const familyDemo = `
name: Family demo
household:
  name: Nday Family
  members:
    - key: ahmed
      name: Ahmed
monthly_budget_qar: 2500
wallet_balance_qar: 1800
activities:
  - title: Groceries run
    vertical: Groceries
    start_in: 15m
    amount_qar: 220
    split:
      mode: equal
      requires_approvals: true
      approvals:
        owner: approved
        ahmed: pending
  - title: Dinner with friends
    vertical: Dining
    start_in: 1h15m
    amount_qar: 140
`

func TestParse(t *testing.T) {
	doc, err := scenario.Parse(strings.NewReader(familyDemo))
	require.NoError(t, err)

	assert.Equal(t, "Family demo", doc.Name)
	assert.Equal(t, "Nday Family", doc.Household.Name)
	assert.Equal(t, int64(2500), doc.MonthlyBudgetQAR)
	assert.Equal(t, int64(1800), doc.WalletBalanceQAR)

	require.Len(t, doc.Activities, 2)
	assert.Equal(t, "Groceries run", doc.Activities[0].Title)
	assert.Equal(t, scenario.Duration(15*time.Minute), doc.Activities[0].StartIn)
	require.NotNil(t, doc.Activities[0].Split)
	assert.True(t, doc.Activities[0].Split.RequiresApprovals)
	assert.Nil(t, doc.Activities[1].Split)
}

func TestParse_UTF8BOM(t *testing.T) {
	doc, err := scenario.Parse(strings.NewReader("\xEF\xBB\xBF" + familyDemo))
	require.NoError(t, err)
	assert.Equal(t, "Family demo", doc.Name)
}

func TestParse_UnknownFieldRejected(t *testing.T) {
	_, err := scenario.Parse(strings.NewReader("name: x\nbogus_field: 1\n"))
	assert.Error(t, err)
}

func TestParse_BadDuration(t *testing.T) {
	_, err := scenario.Parse(strings.NewReader(`
name: x
activities:
  - title: y
    vertical: Dining
    start_in: soon
    amount_qar: 10
`))
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	eng := engine.New(engine.Params{Now: now, HouseholdName: "placeholder"})

	doc, err := scenario.Parse(strings.NewReader(familyDemo))
	require.NoError(t, err)
	require.NoError(t, doc.Apply(context.Background(), eng, now))

	assert.Equal(t, "Nday Family", eng.HouseholdName())
	assert.Equal(t, int64(250_000), eng.MonthlyBudget())

	balance, err := eng.Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(180_000), balance)

	members := eng.Members()
	require.Len(t, members, 2)
	assert.Equal(t, "Ahmed", members[1].Name)

	acts, err := eng.Activities(context.Background())
	require.NoError(t, err)
	require.Len(t, acts, 2)

	groceries := acts[0]
	assert.Equal(t, "Groceries run", groceries.Title)
	assert.Equal(t, int64(22_000), groceries.AmountQAR)
	assert.Equal(t, now.Add(15*time.Minute), groceries.StartAt)
	assert.Equal(t, activity.StatusScheduled, groceries.Status)

	require.NotNil(t, groceries.Split)
	assert.Equal(t, activity.SplitModeEqual, groceries.Split.Mode)
	assert.Equal(t, eng.OwnerID(), groceries.Split.PayerMemberID)
	assert.Equal(t, activity.ApprovalApproved, groceries.Split.Approvals[eng.OwnerID()])
	assert.Equal(t, activity.ApprovalPending, groceries.Split.Approvals[members[1].ID])

	assert.Nil(t, acts[1].Split)
}

func TestApply_UnknownMember(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	eng := engine.New(engine.Params{Now: now})

	doc, err := scenario.Parse(strings.NewReader(`
name: x
household:
  name: Nday Family
monthly_budget_qar: 2500
wallet_balance_qar: 1800
activities:
  - title: Groceries run
    vertical: Groceries
    start_in: 15m
    amount_qar: 220
    split:
      mode: equal
      payer: nobody
`))
	require.NoError(t, err)

	err = doc.Apply(context.Background(), eng, now)
	assert.ErrorIs(t, err, scenario.ErrUnknownMember)
}

func TestApply_UnknownVertical(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	eng := engine.New(engine.Params{Now: now})

	doc, err := scenario.Parse(strings.NewReader(`
name: x
household:
  name: Nday Family
monthly_budget_qar: 2500
wallet_balance_qar: 1800
activities:
  - title: Groceries run
    vertical: rockets
    start_in: 15m
    amount_qar: 220
`))
	require.NoError(t, err)

	err = doc.Apply(context.Background(), eng, now)
	assert.ErrorIs(t, err, scenario.ErrUnknownVertical)
}

func TestApply_BudgetCeilingEnforced(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	eng := engine.New(engine.Params{Now: now})

	doc, err := scenario.Parse(strings.NewReader(`
name: x
household:
  name: Nday Family
monthly_budget_qar: 100
wallet_balance_qar: 1800
activities:
  - title: Groceries run
    vertical: Groceries
    start_in: 15m
    amount_qar: 220
`))
	require.NoError(t, err)

	err = doc.Apply(context.Background(), eng, now)
	assert.ErrorIs(t, err, activity.ErrBudgetExceeded)
}
