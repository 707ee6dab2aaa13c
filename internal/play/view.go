package play

import (
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/deepak/quizdeck/internal/ui/components"
	"github.com/deepak/quizdeck/internal/ui/layout"
	"github.com/deepak/quizdeck/internal/ui/theme"
)

var errNoQuestions = errors.New("study set has no questions")

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.headerTitle(), m.correct, m.answered, m.width)
	footer := layout.RenderFooter(m.keyHints(), m.width)

	var content string
	switch m.phase {
	case phaseLoading:
		content = m.renderLoading()
	case phaseQuestion, phaseFeedback:
		content = m.renderQuestion()
	case phaseSummary:
		content = m.renderSummary()
	case phaseError:
		content = m.renderError()
	}

	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

func (m Model) headerTitle() string {
	if m.title != "" {
		return m.title
	}
	return "Quiz"
}

func (m Model) keyHints() []layout.KeyHint {
	switch m.phase {
	case phaseQuestion:
		return []layout.KeyHint{
			{Key: "↑↓/A-D", Description: "Select"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	case phaseSummary, phaseError:
		return []layout.KeyHint{
			{Key: "Q", Description: "Exit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (m Model) renderLoading() string {
	msg := m.spin.View() + "  Preparing your questions..."
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + msg)
}

func (m Model) renderQuestion() string {
	q := m.questions[m.index]

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Question %d of %d", m.index+1, len(m.questions)))
	if q.Category != "" {
		info += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("   " + q.Category)
	}
	b.WriteString(info)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.choice.View()))

	if m.phase == phaseFeedback {
		b.WriteString("\n")
		b.WriteString(m.renderFeedback(q.Explanation))
	}

	return b.String()
}

func (m Model) renderFeedback(explanation string) string {
	var b strings.Builder

	verdictStyle := lipgloss.NewStyle().Width(m.width).Align(lipgloss.Center).Bold(true)
	if m.choice.IsCorrect() {
		b.WriteString(verdictStyle.Foreground(theme.Success).Render("Correct!"))
	} else {
		b.WriteString(verdictStyle.Foreground(theme.Error).Render("Not quite"))
	}

	if explanation != "" {
		b.WriteString("\n\n")
		card := theme.Card.Width(min(m.width-8, 72)).Render(
			lipgloss.NewStyle().Foreground(theme.Text).Render(explanation),
		)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, card))
	}

	return b.String()
}

func (m Model) renderSummary() string {
	total := len(m.questions)
	pct := 0.0
	if total > 0 {
		pct = float64(m.correct) / float64(total)
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(theme.Title.Width(m.width).Render("Session complete"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("You scored %d out of %d", m.correct, total)))
	b.WriteString("\n\n")

	bar := components.NewProgressBar("", pct, true, min(m.width-20, 50))
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	var remark string
	switch {
	case pct == 1:
		remark = "Perfect score!"
	case pct >= 0.8:
		remark = "Great work."
	case pct >= 0.5:
		remark = "Solid effort. Worth another pass."
	default:
		remark = "Tough set. Try it again soon."
	}
	b.WriteString(theme.Subtitle.Width(m.width).Render(remark))

	return b.String()
}

func (m Model) renderError() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n\n" + fmt.Sprintf("Could not start the session: %v", m.loadErr))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
