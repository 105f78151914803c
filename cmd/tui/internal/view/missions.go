package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/mission"
)

type MissionsModel struct {
	CommonModel
	missionSvc *mission.Service

	table    table.Model
	missions []*mission.Mission

	statusFilterIdx int
	filter          mission.ListFilter

	loading bool
	err     error
	status  string
}

func NewMissionsModel(missionSvc *mission.Service) MissionsModel {
	columns := []table.Column{
		{Title: "Missionnaire", Width: 22},
		{Title: "Start", Width: 12},
		{Title: "End", Width: 12},
		{Title: "Days", Width: 5},
		{Title: "Rate", Width: 12},
		{Title: "Total", Width: 14},
		{Title: "Payment", Width: 10},
		{Title: "Status", Width: 11},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
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

	return MissionsModel{
		missionSvc: missionSvc,
		table:      t,
		loading:    true,
	}
}

func (m MissionsModel) Title() string { return "Missions" }
func (m MissionsModel) ShortHelp() string {
	return "Esc: back | s: status filter | v: validate | j: reject | r: refresh"
}

func (m MissionsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m MissionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadMissionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.missions = msg.missions
		m.refreshTable()

		return m, nil

	case missionStatusMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.status = ""

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "s":
			m.statusFilterIdx = (m.statusFilterIdx + 1) % 4
			m.applyFilter()

			return m, m.loadCmd()
		case "v":
			return m, m.setStatusCmd(mission.StatusValidated)
		case "j":
			return m, m.setStatusCmd(mission.StatusRejected)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m MissionsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading missions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	statusLabels := []string{"All", "Pending", "Validated", "Rejected"}

	header := fmt.Sprintf("Filter: [s] Status: %s",
		lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Render(statusLabels[m.statusFilterIdx]))

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *MissionsModel) applyFilter() {
	switch m.statusFilterIdx {
	case 1:
		m.filter.ValidationStatus = new(mission.StatusPending)
	case 2:
		m.filter.ValidationStatus = new(mission.StatusValidated)
	case 3:
		m.filter.ValidationStatus = new(mission.StatusRejected)
	default:
		m.filter.ValidationStatus = nil
	}
}

func (m *MissionsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.missions))
	for _, ms := range m.missions {
		rows = append(rows, table.Row{
			ms.Missionnaire,
			FormatDate(ms.DateStart),
			FormatDate(ms.DateEnd),
			fmt.Sprintf("%d", ms.DayCount),
			FormatAmount(ms.RatePerDay),
			FormatAmount(budget.MissionTotal(*ms)),
			string(ms.PaymentMode),
			string(ms.ValidationStatus),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadMissionsMsg struct {
	missions []*mission.Mission
	err      error
}

func (m MissionsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		missions, err := m.missionSvc.List(ctx, m.filter)

		return loadMissionsMsg{missions: missions, err: err}
	}
}

type missionStatusMsg struct {
	err error
}

func (m MissionsModel) setStatusCmd(status mission.ValidationStatus) tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.missions) {
		return nil
	}

	id := m.missions[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return missionStatusMsg{err: m.missionSvc.UpdateValidationStatus(ctx, id, status)}
	}
}
