package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/cfed-mr/backoffice/cmd/tui/internal/view"
	"github.com/cfed-mr/backoffice/internal/activity"
	activityStore "github.com/cfed-mr/backoffice/internal/activity/store"
	"github.com/cfed-mr/backoffice/internal/config"
	"github.com/cfed-mr/backoffice/internal/dashboard"
	"github.com/cfed-mr/backoffice/internal/database"
	"github.com/cfed-mr/backoffice/internal/expense"
	expenseStore "github.com/cfed-mr/backoffice/internal/expense/store"
	"github.com/cfed-mr/backoffice/internal/mission"
	missionStore "github.com/cfed-mr/backoffice/internal/mission/store"
	"github.com/cfed-mr/backoffice/internal/rubric"
	rubricStore "github.com/cfed-mr/backoffice/internal/rubric/store"
)

type model struct {
	rubricService   *rubric.Service
	missionService  *mission.Service
	activityService *activity.Service
	expenseService  *expense.Service
	dashService     *dashboard.Service

	currentView View

	dashboardView view.DashboardModel
	rubricsView   view.RubricsModel
	missionsView  view.MissionsModel
	expenseView   view.ExpenseModel
}

type View int

const (
	ViewMenu      View = 0
	ViewDashboard View = 1
	ViewRubrics   View = 2
	ViewMissions  View = 3
	ViewExpense   View = 4
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString(), database.Pool{
		MaxOpenConns:    cfg.DB.MaxOpenConns,
		MaxIdleConns:    cfg.DB.MaxIdleConns,
		ConnMaxLifetime: cfg.DB.ConnMaxLifetime,
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	rubricSvc := rubric.NewService(rubricStore.New(db))
	missionSvc := mission.NewService(missionStore.New(db))
	activitySvc := activity.NewService(activityStore.New(db))
	expenseSvc := expense.NewService(expenseStore.New(db))
	dashSvc := dashboard.NewService(rubricSvc, activitySvc, missionSvc, expenseSvc)

	return model{
		rubricService:   rubricSvc,
		missionService:  missionSvc,
		activityService: activitySvc,
		expenseService:  expenseSvc,
		dashService:     dashSvc,
		currentView:     ViewMenu,
		dashboardView:   view.NewDashboardModel(dashSvc),
		rubricsView:     view.NewRubricsModel(rubricSvc, activitySvc),
		missionsView:    view.NewMissionsModel(missionSvc),
		expenseView:     view.NewExpenseModel(expenseSvc, missionSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewDashboard
				m.dashboardView = view.NewDashboardModel(m.dashService)

				return m, m.dashboardView.Init()
			case "2":
				m.currentView = ViewRubrics
				m.rubricsView = view.NewRubricsModel(m.rubricService, m.activityService)

				return m, m.rubricsView.Init()
			case "3":
				m.currentView = ViewMissions
				m.missionsView = view.NewMissionsModel(m.missionService)

				return m, m.missionsView.Init()
			case "4":
				m.currentView = ViewExpense
				m.expenseView = view.NewExpenseModel(m.expenseService, m.missionService)

				return m, m.expenseView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.dashboardView.Update(msg)
		m.dashboardView = newModel.(view.DashboardModel)
	case ViewRubrics:
		var newModel tea.Model
		newModel, cmd = m.rubricsView.Update(msg)
		m.rubricsView = newModel.(view.RubricsModel)
	case ViewMissions:
		var newModel tea.Model
		newModel, cmd = m.missionsView.Update(msg)
		m.missionsView = newModel.(view.MissionsModel)
	case ViewExpense:
		var newModel tea.Model
		newModel, cmd = m.expenseView.Update(msg)
		m.expenseView = newModel.(view.ExpenseModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"CFED Back Office\n\n" +
				"1. Dashboard\n" +
				"2. Rubrics\n" +
				"3. Missions\n" +
				"4. New Expense\n\n" +
				"q. Quit",
		)
	case ViewDashboard:
		return m.dashboardView.View()
	case ViewRubrics:
		return m.rubricsView.View()
	case ViewMissions:
		return m.missionsView.View()
	case ViewExpense:
		return m.expenseView.View()
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
