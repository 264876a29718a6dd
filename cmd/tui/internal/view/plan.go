package view

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/clock"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
)

type planState int

const (
	planStateBrowse planState = iota
	planStateAdd
)

type PlanModel struct {
	CommonModel
	engine *engine.Engine

	state planState
	table table.Model
	form  *huh.Form

	status string
	err    error

	// Form bindings
	formTitle      string
	formVertical   activity.Vertical
	formStartMins  string
	formAmount     string
	formRecurrence activity.Recurrence
	formCount      string
	formSplit      bool
	formApprovals  bool
	formPayer      uuid.UUID
}

func NewPlanModel(eng *engine.Engine) PlanModel {
	columns := []table.Column{
		{Title: "Title", Width: 24},
		{Title: "Vertical", Width: 10},
		{Title: "Start", Width: 14},
		{Title: "Amount", Width: 12},
		{Title: "Status", Width: 10},
		{Title: "Split", Width: 10},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	m := PlanModel{engine: eng, table: t}
	m.refreshTable()

	return m
}

func (m PlanModel) Title() string { return "Plan" }
func (m PlanModel) ShortHelp() string {
	if m.state == planStateAdd {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | a: add activity | p: activate/pause | s: speed"
}

func (m PlanModel) Init() tea.Cmd {
	return nil
}

func (m PlanModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 12)
		return m, nil
	}

	switch m.state {
	case planStateBrowse:
		return m.updateBrowse(msg)
	case planStateAdd:
		return m.updateAdd(msg)
	}

	return m, nil
}

func (m PlanModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)

		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		return m, Back
	case "a":
		return m.openAddForm()
	case "p":
		if m.engine.PlanActive() {
			m.engine.DeactivatePlan()
			m.status = "Plan paused."
		} else if err := m.engine.ActivatePlan(context.Background()); err != nil {
			m.status = err.Error()
		} else {
			m.status = "Plan activated. Auto-pay simulation enabled."
		}

		return m, nil
	case "s":
		m.cycleSpeed()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *PlanModel) cycleSpeed() {
	next := clock.SpeedNormal

	switch m.engine.Speed() {
	case clock.SpeedNormal:
		next = clock.SpeedFast
	case clock.SpeedFast:
		next = clock.SpeedFastest
	}

	if err := m.engine.SetSpeed(next); err != nil {
		m.status = err.Error()
		return
	}

	m.status = fmt.Sprintf("Speed x%d", next)
}

func (m PlanModel) openAddForm() (tea.Model, tea.Cmd) {
	m.formTitle = ""
	m.formVertical = activity.VerticalGroceries
	m.formStartMins = "60"
	m.formAmount = ""
	m.formRecurrence = activity.RecurrenceNone
	m.formCount = "1"
	m.formSplit = false
	m.formApprovals = false
	m.formPayer = m.engine.OwnerID()

	verticalOptions := make([]huh.Option[activity.Vertical], 0, len(activity.Verticals()))
	for _, v := range activity.Verticals() {
		verticalOptions = append(verticalOptions, huh.NewOption(string(v), v))
	}

	memberOptions := make([]huh.Option[uuid.UUID], 0)
	for _, member := range m.engine.Members() {
		memberOptions = append(memberOptions, huh.NewOption(member.Name, member.ID))
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("title").
				Title("Title").
				Value(&m.formTitle).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("title cannot be empty")
					}
					return nil
				}),

			huh.NewSelect[activity.Vertical]().
				Key("vertical").
				Title("Vertical").
				Options(verticalOptions...).
				Value(&m.formVertical),

			huh.NewInput().
				Key("start").
				Title("Starts in (minutes, virtual)").
				Value(&m.formStartMins),

			huh.NewInput().
				Key("amount").
				Title("Amount (QAR)").
				Placeholder("220").
				Value(&m.formAmount),

			huh.NewSelect[activity.Recurrence]().
				Key("recurrence").
				Title("Recurrence").
				Options(
					huh.NewOption("None", activity.RecurrenceNone),
					huh.NewOption("Weekly", activity.RecurrenceWeekly),
					huh.NewOption("Biweekly", activity.RecurrenceBiweekly),
					huh.NewOption("Monthly", activity.RecurrenceMonthly),
				).
				Value(&m.formRecurrence),

			huh.NewInput().
				Key("count").
				Title("Occurrences").
				Value(&m.formCount),

			huh.NewConfirm().
				Key("split").
				Title("Split with family?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formSplit),

			huh.NewSelect[uuid.UUID]().
				Key("payer").
				Title("Who pays?").
				Options(memberOptions...).
				Value(&m.formPayer),

			huh.NewConfirm().
				Key("approvals").
				Title("Require family approvals?").
				Affirmative("Yes").
				Negative("No").
				Value(&m.formApprovals),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = planStateAdd

	return m, m.form.Init()
}

func (m PlanModel) updateAdd(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = planStateBrowse
			m.form = nil

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.submitAdd()
	m.state = planStateBrowse
	m.form = nil
	m.refreshTable()

	return m, nil
}

func (m *PlanModel) submitAdd() {
	mins, err := strconv.Atoi(strings.TrimSpace(m.formStartMins))
	if err != nil {
		m.status = "Starts-in must be a number of minutes."
		return
	}

	amount, err := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	if err != nil {
		m.status = "Amount must be a number."
		return
	}

	count, err := strconv.Atoi(strings.TrimSpace(m.formCount))
	if err != nil {
		count = 1
	}

	params := activity.CreateParams{
		Title:      m.formTitle,
		Vertical:   m.formVertical,
		StartAt:    m.engine.VirtualNow().Add(time.Duration(mins) * time.Minute),
		AmountQAR:  int64(amount * 100),
		Recurrence: m.formRecurrence,
		Count:      count,
	}

	if m.formSplit {
		params.Split = &activity.SplitParams{
			Mode:              activity.SplitModeEqual,
			PayerMemberID:     m.formPayer,
			RequiresApprovals: m.formApprovals,
		}
	}

	if _, err := m.engine.CreateActivity(context.Background(), params); err != nil {
		m.status = err.Error()
		return
	}

	m.status = fmt.Sprintf("Added %s.", params.Title)
}

func (m *PlanModel) refreshTable() {
	acts, err := m.engine.Activities(context.Background())
	if err != nil {
		m.err = err
		return
	}

	rows := make([]table.Row, len(acts))
	for i, a := range acts {
		split := "-"
		if a.Split != nil {
			split = string(a.Split.Mode)
		}

		rows[i] = table.Row{
			a.Title,
			string(a.Vertical),
			FormatInstant(a.StartAt),
			FormatQAR(a.AmountQAR),
			string(a.Status),
			split,
		}
	}

	m.table.SetRows(rows)
}

func (m PlanModel) View() string {
	if m.state == planStateAdd {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	allocated, _ := m.engine.TotalAllocated(context.Background())
	remaining, _ := m.engine.RemainingBudget(context.Background())

	state := "paused"
	if m.engine.PlanActive() {
		state = "active"
	}

	header := fmt.Sprintf(
		"Monthly budget %s | Allocated %s | Remaining %s\nVirtual now %s | Plan %s | Speed x%d",
		FormatQAR(m.engine.MonthlyBudget()),
		FormatQAR(allocated),
		FormatQAR(remaining),
		m.engine.VirtualNow().Format("Jan 02 15:04:05"),
		state,
		m.engine.Speed(),
	)

	out := header + "\n\n" + m.table.View()
	if m.status != "" {
		out += "\n\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1).Render(out)
}
