package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/Steve0012345/Snoonu-App/internal/activity"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
)

type familyState int

const (
	familyStateBrowse familyState = iota
	familyStateInvite
)

// pendingApproval is one (activity, member) pair still waiting on a verdict.
type pendingApproval struct {
	activityID uuid.UUID
	memberID   uuid.UUID
}

type FamilyModel struct {
	CommonModel
	engine *engine.Engine

	state   familyState
	table   table.Model
	pending []pendingApproval
	form    *huh.Form

	formContact string
	status      string
	err         error
}

func NewFamilyModel(eng *engine.Engine) FamilyModel {
	columns := []table.Column{
		{Title: "Activity", Width: 26},
		{Title: "Amount", Width: 12},
		{Title: "Waiting on", Width: 18},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(6),
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

	m := FamilyModel{engine: eng, table: t}
	m.refresh()

	return m
}

func (m FamilyModel) Title() string { return "Family" }
func (m FamilyModel) ShortHelp() string {
	if m.state == familyStateInvite {
		return "Enter: send | Esc: cancel"
	}

	return "Esc: back | a: approve | r: reject | i: invite"
}

func (m FamilyModel) Init() tea.Cmd {
	return nil
}

func (m FamilyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.refresh()
		return m, nil
	}

	switch m.state {
	case familyStateBrowse:
		return m.updateBrowse(msg)
	case familyStateInvite:
		return m.updateInvite(msg)
	}

	return m, nil
}

func (m FamilyModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
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
		m.setVerdict(true)
		m.refresh()

		return m, nil
	case "r":
		m.setVerdict(false)
		m.refresh()

		return m, nil
	case "i":
		return m.openInviteForm()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *FamilyModel) setVerdict(approve bool) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.pending) {
		m.status = "Nothing to approve."
		return
	}

	p := m.pending[idx]

	var err error
	if approve {
		err = m.engine.ApproveSplit(context.Background(), p.activityID, p.memberID)
	} else {
		err = m.engine.RejectSplit(context.Background(), p.activityID, p.memberID)
	}

	if err != nil {
		m.status = err.Error()
		return
	}

	if approve {
		m.status = "Approved."
	} else {
		m.status = "Rejected."
	}
}

func (m FamilyModel) openInviteForm() (tea.Model, tea.Cmd) {
	m.formContact = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("contact").
				Title("Phone or email").
				Placeholder("ahmed@example.com").
				Value(&m.formContact),
		),
	).WithWidth(40).WithShowHelp(false)

	m.state = familyStateInvite

	return m, m.form.Init()
}

func (m FamilyModel) updateInvite(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = familyStateBrowse
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

	if _, err := m.engine.InviteMember(m.formContact); err != nil {
		m.status = err.Error()
	} else {
		m.status = fmt.Sprintf("Invite sent to %s.", strings.TrimSpace(m.formContact))
	}

	m.state = familyStateBrowse
	m.form = nil
	m.refresh()

	return m, nil
}

func (m *FamilyModel) refresh() {
	acts, err := m.engine.Activities(context.Background())
	if err != nil {
		m.err = err
		return
	}

	m.pending = m.pending[:0]

	rows := []table.Row{}
	for _, a := range acts {
		if a.Split == nil || !a.Split.RequiresApprovals || a.Status.Terminal() {
			continue
		}

		for memberID, verdict := range a.Split.Approvals {
			if verdict != activity.ApprovalPending {
				continue
			}

			m.pending = append(m.pending, pendingApproval{activityID: a.ID, memberID: memberID})
			rows = append(rows, table.Row{
				a.Title,
				FormatQAR(a.AmountQAR),
				m.engine.MemberName(memberID),
			})
		}
	}

	m.table.SetRows(rows)
}

func (m FamilyModel) View() string {
	if m.state == familyStateInvite {
		return lipgloss.NewStyle().Padding(1).Render(m.form.View())
	}

	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\nMembers:\n", m.engine.HouseholdName())
	for _, member := range m.engine.Members() {
		fmt.Fprintf(&b, "  %s (%s)\n", member.Name, member.Role)
	}

	invites := m.engine.Invites()
	if len(invites) > 0 {
		b.WriteString("\nInvites:\n")
		for _, inv := range invites {
			fmt.Fprintf(&b, "  %s [%s]\n", inv.Contact, inv.Status)
		}
	}

	b.WriteString("\nPending approvals:\n")
	b.WriteString(m.table.View())

	feed := m.engine.Feed()
	if len(feed) > 0 {
		b.WriteString("\n\nFeed:\n")

		max := 5
		if len(feed) < max {
			max = len(feed)
		}

		for _, entry := range feed[:max] {
			fmt.Fprintf(&b, "  %s  %s\n", FormatInstant(entry.At), entry.Text)
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status)
	}

	return lipgloss.NewStyle().Padding(1).Render(b.String())
}
