package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hostup/hostup/internal/provision"
)

// StepView is one plan step's display state.
type StepView struct {
	Name    string
	Active  bool
	Done    bool
	Results []provision.Result
}

// Model is the Bubble Tea model for the apply dashboard.
type Model struct {
	Domain string
	Steps  []StepView

	StartTime    time.Time
	SpinnerFrame int

	Width  int
	Height int

	Err    error
	Done   bool
	Report *provision.Report
}

// NewApplyModel creates a model for the apply command TUI.
func NewApplyModel(domain string, stepNames []string) Model {
	steps := make([]StepView, len(stepNames))
	for i, name := range stepNames {
		steps[i] = StepView{Name: name}
	}
	return Model{
		Domain:    domain,
		Steps:     steps,
		StartTime: time.Now(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case StepStartedMsg:
		m.markStarted(msg.Step)

	case ResultMsg:
		m.appendResult(msg.Result)

	case TickMsg:
		m.SpinnerFrame++
		return m, tickCmd()

	case ErrMsg:
		m.Err = msg.Err
		return m, tea.Quit

	case DoneMsg:
		m.Done = true
		m.Report = msg.Report
		for i := range m.Steps {
			m.Steps[i].Active = false
			m.Steps[i].Done = true
		}
		return m, tea.Quit
	}

	return m, nil
}

// markStarted activates the named step and settles every earlier one.
func (m *Model) markStarted(step string) {
	for i := range m.Steps {
		if m.Steps[i].Name == step {
			m.Steps[i].Active = true
			return
		}
		m.Steps[i].Active = false
		m.Steps[i].Done = true
	}
}

func (m *Model) appendResult(r provision.Result) {
	for i := range m.Steps {
		if m.Steps[i].Name == r.Step {
			m.Steps[i].Results = append(m.Steps[i].Results, r)
			return
		}
	}
}

// partialReport collects the results received so far into a report,
// used when the run was interrupted before the final report arrived.
func (m Model) partialReport() *provision.Report {
	r := &provision.Report{Started: m.StartTime, Finished: time.Now()}
	for _, s := range m.Steps {
		r.Results = append(r.Results, s.Results...)
	}
	return r
}

// failed reports whether any recorded result failed.
func (m Model) failed() bool {
	for _, s := range m.Steps {
		for _, r := range s.Results {
			if r.Status == provision.StatusFailed {
				return true
			}
		}
	}
	return false
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View implements tea.Model.
func (m Model) View() string {
	return renderView(m)
}
