package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/expense"
	"github.com/cfed-mr/backoffice/internal/mission"
)

// ExpenseModel records a single expense against a mission. Every expense
// needs a receipt reference, the form will not submit without one.
type ExpenseModel struct {
	CommonModel
	expenseSvc *expense.Service
	missionSvc *mission.Service

	form     *huh.Form
	missions []*mission.Mission

	saved   bool
	loading bool
	err     error

	// Form bindings
	formMission string
	formName    string
	formDate    string
	formAmount  string
	formReceipt string
}

func NewExpenseModel(expenseSvc *expense.Service, missionSvc *mission.Service) ExpenseModel {
	return ExpenseModel{
		expenseSvc: expenseSvc,
		missionSvc: missionSvc,
		loading:    true,
	}
}

func (m ExpenseModel) Title() string     { return "New Expense" }
func (m ExpenseModel) ShortHelp() string { return "Navigate form | Esc: back" }

func (m ExpenseModel) Init() tea.Cmd {
	return m.loadMissionsCmd()
}

func (m ExpenseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case expenseMissionsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.missions = msg.missions
		m.buildForm()

		return m, m.form.Init()

	case expenseSaveMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.saved = true

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc {
			return m, Back
		}

		if m.saved || m.err != nil {
			return m, nil
		}
	}

	if m.form == nil {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.saveCmd()
}

func (m ExpenseModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading missions...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v\n\nEsc: back", m.err))
	}

	if m.saved {
		return lipgloss.NewStyle().Padding(2).Render("Expense saved.\n\nEsc: back")
	}

	if len(m.missions) == 0 {
		return lipgloss.NewStyle().Padding(2).Render("No missions yet. Create a mission first.\n\nEsc: back")
	}

	panel := lipgloss.NewStyle().
		Padding(1, 2).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Width(52).
		Render("New Expense\n\n" + m.form.View())

	return lipgloss.NewStyle().Padding(1).Render(panel)
}

func (m *ExpenseModel) buildForm() {
	options := make([]huh.Option[string], 0, len(m.missions))
	for _, ms := range m.missions {
		label := fmt.Sprintf("%s (%s)", ms.Missionnaire, FormatDate(ms.DateStart))
		options = append(options, huh.NewOption(label, ms.ID.String()))
	}

	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("mission").
				Title("Mission").
				Options(options...).
				Value(&m.formMission),

			huh.NewInput().
				Key("name").
				Title("Description").
				Value(&m.formName).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(v string) error {
					if _, err := time.Parse(time.DateOnly, strings.TrimSpace(v)); err != nil {
						return fmt.Errorf("enter a date as YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount (MRU)").
				Value(&m.formAmount).
				Validate(func(v string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive whole MRU amount")
					}
					return nil
				}),

			huh.NewInput().
				Key("receipt").
				Title("Receipt Reference").
				Placeholder("JUSTIF-...").
				Value(&m.formReceipt).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("a receipt reference is required")
					}
					return nil
				}),
		),
	).WithWidth(48).WithShowHelp(false)
}

// Messages

type expenseMissionsMsg struct {
	missions []*mission.Mission
	err      error
}

func (m ExpenseModel) loadMissionsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		missions, err := m.missionSvc.List(ctx, mission.ListFilter{})

		return expenseMissionsMsg{missions: missions, err: err}
	}
}

type expenseSaveMsg struct {
	err error
}

func (m ExpenseModel) saveCmd() tea.Cmd {
	missionID := m.formMission
	name := strings.TrimSpace(m.formName)
	date, _ := time.Parse(time.DateOnly, strings.TrimSpace(m.formDate))
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.formAmount), 10, 64)
	receipt := strings.TrimSpace(m.formReceipt)

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		id, err := uuid.Parse(missionID)
		if err != nil {
			return expenseSaveMsg{err: err}
		}

		_, err = m.expenseSvc.Create(ctx, expense.CreateParams{
			Name:       name,
			Date:       date,
			Amount:     amount,
			ReceiptRef: receipt,
			MissionID:  id,
		})

		return expenseSaveMsg{err: err}
	}
}
