package view

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/dashboard"
)

const trendMonths = 6

type DashboardModel struct {
	CommonModel
	dashSvc *dashboard.Service

	overview *dashboard.Overview
	loading  bool
	err      error
}

func NewDashboardModel(dashSvc *dashboard.Service) DashboardModel {
	return DashboardModel{dashSvc: dashSvc, loading: true}
}

func (m DashboardModel) Title() string     { return "Dashboard" }
func (m DashboardModel) ShortHelp() string { return "Esc: back | r: refresh" }

func (m DashboardModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDashboardMsg:
		m.loading = false
		m.overview = msg.overview
		m.err = msg.err

		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		}
	}

	return m, nil
}

func (m DashboardModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading dashboard...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	ov := m.overview

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))

	b.WriteString(titleStyle.Render("Global Budget"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Budget:    %s\n", FormatAmount(ov.Stats.TotalBudget)))
	b.WriteString(fmt.Sprintf("Committed: %s\n", FormatAmount(ov.Stats.TotalCommitted)))
	b.WriteString(fmt.Sprintf("Disbursed: %s\n", FormatAmount(ov.Stats.TotalDisbursed)))
	b.WriteString(fmt.Sprintf("Remaining: %s\n", FormatAmount(ov.Stats.Remaining)))
	b.WriteString(fmt.Sprintf("Consumption: %.1f%% over %d rubrics\n", ov.Stats.ConsumptionRate, ov.Stats.RubricCount))

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Rubrics"))
	b.WriteString("\n\n")

	for _, s := range ov.Rubrics {
		b.WriteString(fmt.Sprintf("%-24s %s %5.1f%%  %s / %s\n",
			truncate(s.Name, 24),
			progressBar(s.Progression),
			s.Progression,
			FormatAmount(s.Committed),
			FormatAmount(s.Planned),
		))
	}

	if len(ov.Trend) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Expenses by Month"))
		b.WriteString("\n\n")

		for _, bucket := range ov.Trend {
			b.WriteString(fmt.Sprintf("%s  %12s  (%d)  %+.1f%%\n",
				bucket.Month, FormatAmount(bucket.Total), bucket.Count, bucket.Evolution))
		}
	}

	if len(ov.TopMissions) > 0 {
		b.WriteString("\n")
		b.WriteString(titleStyle.Render("Most Expensive Missions"))
		b.WriteString("\n\n")

		for _, mc := range ov.TopMissions {
			b.WriteString(fmt.Sprintf("%-24s %12s\n", truncate(mc.Mission.Missionnaire, 24), FormatAmount(mc.Total)))
		}
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

const barWidth = 20

// progressBar renders an already clamped percentage, so the bar can never
// overflow its width.
func progressBar(pct float64) string {
	filled := int(pct / 100 * barWidth)

	bar := strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)

	color := lipgloss.Color("42")
	if pct >= 90 {
		color = lipgloss.Color("196")
	}

	return lipgloss.NewStyle().Foreground(color).Render(bar)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	return s[:n-1] + "…"
}

type loadDashboardMsg struct {
	overview *dashboard.Overview
	err      error
}

func (m DashboardModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		ov, err := m.dashSvc.Overview(ctx, trendMonths, budget.SortAscending)

		return loadDashboardMsg{overview: ov, err: err}
	}
}
