package play

import (
	"context"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepak/quizdeck/internal/quizgen"
	"github.com/deepak/quizdeck/internal/ui/components"
	"github.com/deepak/quizdeck/internal/ui/theme"
)

// Loader produces the questions for a play session. It runs once, off the
// UI loop, and may take several seconds when questions are generated live.
type Loader func(ctx context.Context) (title string, questions []quizgen.Question, err error)

type phase int

const (
	phaseLoading phase = iota
	phaseQuestion
	phaseFeedback
	phaseSummary
	phaseError
)

// Model is the root Bubble Tea model for an interactive quiz session.
type Model struct {
	loader Loader

	title     string
	questions []quizgen.Question

	index    int
	correct  int
	answered int

	choice  components.MultiChoice
	spin    spinner.Model
	phase   phase
	loadErr error

	width  int
	height int
}

// New creates a play session model. Questions are fetched by the loader
// after the program starts.
func New(loader Loader) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary)),
	)
	return Model{
		loader: loader,
		spin:   sp,
		phase:  phaseLoading,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadQuestions())
}

func (m Model) loadQuestions() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		title, questions, err := loader(context.Background())
		return questionsReadyMsg{Title: title, Questions: questions, Err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case questionsReadyMsg:
		if msg.Err != nil {
			m.loadErr = msg.Err
			m.phase = phaseError
			return m, nil
		}
		if len(msg.Questions) == 0 {
			m.loadErr = errNoQuestions
			m.phase = phaseError
			return m, nil
		}
		m.title = msg.Title
		m.questions = msg.Questions
		m.index = 0
		m.choice = newChoice(msg.Questions[0])
		m.phase = phaseQuestion
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.phase {
	case phaseQuestion:
		var cmd tea.Cmd
		m.choice, cmd = m.choice.Update(msg)
		if m.choice.Submitted {
			m.answered++
			if m.choice.IsCorrect() {
				m.correct++
			}
			m.phase = phaseFeedback
		}
		return m, cmd

	case phaseFeedback:
		if m.index+1 < len(m.questions) {
			m.index++
			m.choice = newChoice(m.questions[m.index])
			m.phase = phaseQuestion
		} else {
			m.phase = phaseSummary
		}
		return m, nil

	case phaseSummary, phaseError:
		switch msg.String() {
		case "q", "enter", "esc":
			return m, tea.Quit
		}
	}

	return m, nil
}

func newChoice(q quizgen.Question) components.MultiChoice {
	return components.NewMultiChoice(q.Text, q.Options, q.Answer)
}

// Run starts the Bubble Tea program for one play session and blocks until
// the user quits or finishes.
func Run(loader Loader) error {
	p := tea.NewProgram(New(loader))
	_, err := p.Run()
	return err
}
