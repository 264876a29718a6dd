// Package scenario loads named demo scenarios: YAML documents that
// seed a fresh engine with a household, budget, wallet balance and
// scheduled activities. Applying a scenario replaces all simulation
// state.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
)

var (
	ErrUnknownMember   = errors.New("scenario references an unknown member key")
	ErrUnknownVertical = errors.New("scenario references an unknown vertical")
)

// ownerKey refers to the plan owner in payer and approval maps.
const ownerKey = "owner"

// Document is one scenario file. Amounts are whole QAR; start instants
// are offsets from the virtual now at load time, so a scenario behaves
// the same whenever it is loaded.
type Document struct {
	Name      string `yaml:"name"`
	Household struct {
		Name    string       `yaml:"name"`
		Members []MemberSpec `yaml:"members"`
	} `yaml:"household"`
	MonthlyBudgetQAR int64          `yaml:"monthly_budget_qar"`
	WalletBalanceQAR int64          `yaml:"wallet_balance_qar"`
	Activities       []ActivitySpec `yaml:"activities"`
}

// MemberSpec declares a household member beyond the owner. The key
// names the member inside this file only.
type MemberSpec struct {
	Key  string `yaml:"key"`
	Name string `yaml:"name"`
}

type ActivitySpec struct {
	Title      string     `yaml:"title"`
	Vertical   string     `yaml:"vertical"`
	StartIn    Duration   `yaml:"start_in"`
	AmountQAR  int64      `yaml:"amount_qar"`
	Recurrence string     `yaml:"recurrence"`
	Count      int        `yaml:"count"`
	Split      *SplitSpec `yaml:"split"`
}

// Duration accepts Go duration strings ("15m", "1h30m") in YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parsing duration %q: %w", raw, err)
	}

	*d = Duration(parsed)

	return nil
}

type SplitSpec struct {
	Mode              string            `yaml:"mode"`
	Payer             string            `yaml:"payer"`
	RequiresApprovals bool              `yaml:"requires_approvals"`
	Approvals         map[string]string `yaml:"approvals"`
}

// Parse decodes a scenario document, normalizing the input to UTF-8
// first.
func Parse(r io.Reader) (*Document, error) {
	decoded, err := utf8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	dec := yaml.NewDecoder(decoded)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}

	return &doc, nil
}

// Load reads a scenario file from disk.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scenario: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Apply resets the engine and seeds it from the document. Activities
// go through the engine's own creation path, so scenario content obeys
// the same validation and budget ceiling as user input.
func (d *Document) Apply(ctx context.Context, e *engine.Engine, now time.Time) error {
	if err := e.Reset(ctx, now, d.Household.Name); err != nil {
		return fmt.Errorf("resetting engine: %w", err)
	}

	e.SetMonthlyBudget(d.MonthlyBudgetQAR * 100)

	if err := e.SetWalletBalance(ctx, d.WalletBalanceQAR*100); err != nil {
		return fmt.Errorf("seeding wallet: %w", err)
	}

	memberIDs := map[string]uuid.UUID{ownerKey: e.OwnerID()}

	for _, spec := range d.Household.Members {
		m := e.AddMember(spec.Name)
		memberIDs[spec.Key] = m.ID
	}

	for _, spec := range d.Activities {
		params, err := spec.createParams(now, memberIDs)
		if err != nil {
			return fmt.Errorf("activity %q: %w", spec.Title, err)
		}

		if _, err := e.CreateActivity(ctx, params); err != nil {
			return fmt.Errorf("activity %q: %w", spec.Title, err)
		}
	}

	return nil
}

func (spec ActivitySpec) createParams(now time.Time, memberIDs map[string]uuid.UUID) (activity.CreateParams, error) {
	vertical := activity.Vertical(spec.Vertical)
	if !vertical.Valid() {
		return activity.CreateParams{}, fmt.Errorf("%w: %q", ErrUnknownVertical, spec.Vertical)
	}

	recurrence := activity.Recurrence(spec.Recurrence)
	if spec.Recurrence == "" {
		recurrence = activity.RecurrenceNone
	}

	params := activity.CreateParams{
		Title:      spec.Title,
		Vertical:   vertical,
		StartAt:    now.Add(time.Duration(spec.StartIn)),
		AmountQAR:  spec.AmountQAR * 100,
		Recurrence: recurrence,
		Count:      spec.Count,
	}

	if spec.Split == nil {
		return params, nil
	}

	payer, err := resolveMember(spec.Split.Payer, memberIDs)
	if err != nil {
		return activity.CreateParams{}, err
	}

	split := &activity.SplitParams{
		Mode:              activity.SplitMode(spec.Split.Mode),
		PayerMemberID:     payer,
		RequiresApprovals: spec.Split.RequiresApprovals,
	}

	if spec.Split.Approvals != nil {
		split.Approvals = make(map[uuid.UUID]activity.Approval, len(spec.Split.Approvals))

		for key, state := range spec.Split.Approvals {
			id, err := resolveMember(key, memberIDs)
			if err != nil {
				return activity.CreateParams{}, err
			}

			split.Approvals[id] = activity.Approval(state)
		}
	}

	params.Split = split

	return params, nil
}

func resolveMember(key string, memberIDs map[string]uuid.UUID) (uuid.UUID, error) {
	if key == "" {
		key = ownerKey
	}

	id, ok := memberIDs[key]
	if !ok {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrUnknownMember, key)
	}

	return id, nil
}
