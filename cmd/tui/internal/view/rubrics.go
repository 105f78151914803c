package view

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/cfed-mr/backoffice/internal/activity"
	"github.com/cfed-mr/backoffice/internal/budget"
	"github.com/cfed-mr/backoffice/internal/rubric"
)

type rubricsState int

const (
	rubricsStateBrowse rubricsState = iota
	rubricsStateEdit
)

type RubricsModel struct {
	CommonModel
	rubricSvc   *rubric.Service
	activitySvc *activity.Service

	state     rubricsState
	table     table.Model
	summaries []budget.RubricSummary
	form      *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	editingID  *uuid.UUID
	formName   string
	formDesc   string
	formBudget string
}

func NewRubricsModel(rubricSvc *rubric.Service, activitySvc *activity.Service) RubricsModel {
	columns := []table.Column{
		{Title: "Rubric", Width: 24},
		{Title: "Budget", Width: 14},
		{Title: "Committed", Width: 14},
		{Title: "Remaining", Width: 14},
		{Title: "Progress", Width: 10},
		{Title: "Activities", Width: 10},
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

	return RubricsModel{
		rubricSvc:   rubricSvc,
		activitySvc: activitySvc,
		table:       t,
		loading:     true,
	}
}

func (m RubricsModel) Title() string { return "Rubrics" }
func (m RubricsModel) ShortHelp() string {
	if m.state == rubricsStateEdit {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | x: delete | r: refresh"
}

func (m RubricsModel) Init() tea.Cmd {
	return m.loadCmd()
}

func (m RubricsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRubricsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.summaries = msg.summaries
		m.refreshTable()

		return m, nil

	case rubricSaveMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = ""
		}

		m.state = rubricsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case rubricsStateBrowse:
		return m.updateBrowse(msg)
	case rubricsStateEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m RubricsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadCmd()
		case "n":
			return m.enterEditMode(nil)
		case "e":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.summaries) {
				return m, nil
			}

			return m.enterEditMode(&m.summaries[idx])
		case "x":
			return m, m.deleteCmd()
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

// enterEditMode opens the form either blank for a new rubric or pre-filled
// from the selected row.
func (m RubricsModel) enterEditMode(s *budget.RubricSummary) (tea.Model, tea.Cmd) {
	m.editingID = nil
	m.formName = ""
	m.formDesc = ""
	m.formBudget = ""

	if s != nil {
		id := s.ID
		m.editingID = &id
		m.formName = s.Name
		m.formDesc = s.Description
		m.formBudget = strconv.FormatInt(s.Planned, 10)
	}

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Name").
				Value(&m.formName).
				Validate(func(v string) error {
					if strings.TrimSpace(v) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("budget").
				Title("Budget (MRU)").
				Value(&m.formBudget).
				Validate(func(v string) error {
					n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
					if err != nil || n < 0 {
						return fmt.Errorf("enter a whole MRU amount")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = rubricsStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m RubricsModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = rubricsStateBrowse
			m.form = nil
			m.table.Focus()

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

	return m, m.saveCmd()
}

func (m RubricsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading rubrics...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := tableView

	if m.state == rubricsStateEdit && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render("Edit Rubric\n\n" + m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RubricsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.summaries))
	for _, s := range m.summaries {
		rows = append(rows, table.Row{
			s.Name,
			FormatAmount(s.Planned),
			FormatAmount(s.Committed),
			FormatAmount(s.Remaining),
			fmt.Sprintf("%.1f%%", s.Progression),
			strconv.Itoa(s.ActivityCount),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadRubricsMsg struct {
	summaries []budget.RubricSummary
	err       error
}

func (m RubricsModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		rubrics, err := m.rubricSvc.List(ctx)
		if err != nil {
			return loadRubricsMsg{err: err}
		}

		summaries := make([]budget.RubricSummary, 0, len(rubrics))

		for _, r := range rubrics {
			activities, err := m.activitySvc.ListByRubric(ctx, r.ID)
			if err != nil {
				return loadRubricsMsg{err: err}
			}

			summaries = append(summaries, budget.RubricRollup(*r, activities))
		}

		return loadRubricsMsg{summaries: summaries}
	}
}

type rubricSaveMsg struct {
	err error
}

func (m RubricsModel) saveCmd() tea.Cmd {
	name := strings.TrimSpace(m.formName)
	desc := m.formDesc
	amount, _ := strconv.ParseInt(strings.TrimSpace(m.formBudget), 10, 64)
	editingID := m.editingID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if editingID != nil {
			r, err := m.rubricSvc.Get(ctx, *editingID)
			if err != nil {
				return rubricSaveMsg{err: err}
			}

			r.Name = name
			r.Description = desc
			r.Budget = amount

			return rubricSaveMsg{err: m.rubricSvc.Update(ctx, r)}
		}

		_, err := m.rubricSvc.Create(ctx, rubric.CreateParams{
			Name:        name,
			Description: desc,
			Budget:      amount,
		})

		return rubricSaveMsg{err: err}
	}
}

func (m RubricsModel) deleteCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.summaries) {
		return nil
	}

	id := m.summaries[idx].ID

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		err := m.rubricSvc.Delete(ctx, id)
		if errors.Is(err, rubric.ErrHasDocuments) {
			return rubricSaveMsg{err: fmt.Errorf("rubric still has documents attached")}
		}

		return rubricSaveMsg{err: err}
	}
}
