package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/Steve0012345/Snoonu-App/cmd/tui/internal/view"
	"github.com/Steve0012345/Snoonu-App/internal/config"
	"github.com/Steve0012345/Snoonu-App/internal/engine"
	"github.com/Steve0012345/Snoonu-App/internal/scenario"
)

type model struct {
	engine *engine.Engine

	currentView View

	planView   view.PlanModel
	walletView view.WalletModel
	familyView view.FamilyModel
}

type View int

const (
	ViewMenu   View = 0
	ViewPlan   View = 1
	ViewWallet View = 2
	ViewFamily View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	eng := engine.New(engine.Params{
		HouseholdName:    cfg.Plan.HouseholdName,
		MonthlyBudgetQAR: cfg.Plan.MonthlyBudgetQAR * 100,
		WalletBalanceQAR: cfg.Plan.WalletBalanceQAR * 100,
	})

	if cfg.Plan.Scenario != "" {
		doc, err := scenario.Load(cfg.Plan.Scenario)
		if err != nil {
			slog.Error("failed to load scenario", "path", cfg.Plan.Scenario, "error", err)
			os.Exit(1)
		}

		if err := doc.Apply(context.Background(), eng, eng.VirtualNow()); err != nil {
			slog.Error("failed to apply scenario", "name", doc.Name, "error", err)
			os.Exit(1)
		}
	}

	return model{
		engine:      eng,
		currentView: ViewMenu,
		planView:    view.NewPlanModel(eng),
		walletView:  view.NewWalletModel(eng),
		familyView:  view.NewFamilyModel(eng),
	}
}

// tick drives the engine once per real second while the TUI runs.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return view.TickMsg{At: t}
	})
}

func (m model) Init() tea.Cmd {
	return tick()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case view.TickMsg:
		if err := m.engine.Tick(context.Background(), time.Second); err != nil {
			slog.Error("tick failed", "error", err)
		}

		// Every view refreshes from the same tick.
		var planModel, walletModel, familyModel tea.Model
		planModel, _ = m.planView.Update(msg)
		m.planView = planModel.(view.PlanModel)
		walletModel, _ = m.walletView.Update(msg)
		m.walletView = walletModel.(view.WalletModel)
		familyModel, _ = m.familyView.Update(msg)
		m.familyView = familyModel.(view.FamilyModel)

		return m, tick()

	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewPlan
				return m, m.planView.Init()
			case "2":
				m.currentView = ViewWallet
				return m, m.walletView.Init()
			case "3":
				m.currentView = ViewFamily
				return m, m.familyView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewPlan:
		var newModel tea.Model
		newModel, cmd = m.planView.Update(msg)
		m.planView = newModel.(view.PlanModel)
	case ViewWallet:
		var newModel tea.Model
		newModel, cmd = m.walletView.Update(msg)
		m.walletView = newModel.(view.WalletModel)
	case ViewFamily:
		var newModel tea.Model
		newModel, cmd = m.familyView.Update(msg)
		m.familyView = newModel.(view.FamilyModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Snoonu Plan\n\n" +
				"1. Plan & Activities\n" +
				"2. Wallet\n" +
				"3. Family\n\n" +
				"q. Quit",
		)
	case ViewPlan:
		return m.planView.View()
	case ViewWallet:
		return m.walletView.View()
	case ViewFamily:
		return m.familyView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
