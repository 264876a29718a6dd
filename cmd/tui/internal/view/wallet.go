package view

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/export"
	"github.com/Steve0012345/Snoonu-App/internal/ledger"
)

type WalletModel struct {
	CommonModel
	engine   *engine.Engine
	exporter *export.Service

	table  table.Model
	status string
	err    error
}

func NewWalletModel(eng *engine.Engine) WalletModel {
	columns := []table.Column{
		{Title: "When", Width: 14},
		{Title: "Kind", Width: 7},
		{Title: "Title", Width: 28},
		{Title: "Amount", Width: 12},
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

	m := WalletModel{engine: eng, exporter: export.NewService(eng)}
	m.table = t
	m.refreshTable()

	return m
}

func (m WalletModel) Title() string { return "Wallet" }
func (m WalletModel) ShortHelp() string {
	return "Esc: back | 1-4: top up | e: export CSV"
}

func (m WalletModel) Init() tea.Cmd {
	return nil
}

func (m WalletModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.refreshTable()
		return m, nil

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "1", "2", "3", "4":
			m.topUp(int(msg.String()[0] - '1'))
			m.refreshTable()

			return m, nil
		case "e":
			m.exportStatement()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m *WalletModel) topUp(idx int) {
	if idx < 0 || idx >= len(ledger.TopUpPresets) {
		return
	}

	amount := ledger.TopUpPresets[idx]

	if _, err := m.engine.TopUpPreset(context.Background(), amount); err != nil {
		m.status = err.Error()
		return
	}

	m.status = fmt.Sprintf("Topped up %s.", FormatQAR(amount))
}

func (m *WalletModel) exportStatement() {
	dir, err := os.Getwd()
	if err != nil {
		m.status = err.Error()
		return
	}

	path, err := m.exporter.ExportFile(context.Background(), dir, m.engine.VirtualNow())
	if err != nil {
		m.status = err.Error()
		return
	}

	m.status = fmt.Sprintf("Statement written to %s.", path)
}

func (m *WalletModel) refreshTable() {
	txs, err := m.engine.Transactions(context.Background())
	if err != nil {
		m.err = err
		return
	}

	rows := make([]table.Row, len(txs))
	for i, tx := range txs {
		amount := FormatQAR(tx.AmountQAR)
		if tx.Kind == ledger.KindDebit {
			amount = "-" + amount
		}

		rows[i] = table.Row{
			FormatInstant(tx.At),
			string(tx.Kind),
			tx.Title,
			amount,
		}
	}

	m.table.SetRows(rows)
}

func (m WalletModel) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v", m.err)
	}

	balance, _ := m.engine.Balance(context.Background())

	presets := ""
	for i, p := range ledger.TopUpPresets {
		if i > 0 {
			presets += "  "
		}

		presets += fmt.Sprintf("[%d] %s", i+1, FormatQAR(p))
	}

	header := fmt.Sprintf("Balance %s\nTop up: %s", FormatQAR(balance), presets)

	out := header + "\n\n" + m.table.View()
	if m.status != "" {
		out += "\n\n" + m.status
	}

	return lipgloss.NewStyle().Padding(1).Render(out)
}
