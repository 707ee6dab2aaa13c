package play

import (
	"context"
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/deepak/quizdeck/internal/quizgen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{
			Text:        "What is 2 + 2?",
			Options:     quizgen.Options{"4", "3", "5", "22"},
			Answer:      "4",
			Category:    "Arithmetic",
			Explanation: "Adding two and two gives four.",
		},
		{
			Text:        "What is 3 x 3?",
			Options:     quizgen.Options{"6", "9", "12", "33"},
			Answer:      "9",
			Category:    "Arithmetic",
			Explanation: "Three groups of three make nine.",
		},
	}
}

func readyModel(t *testing.T) Model {
	t.Helper()
	m := New(func(context.Context) (string, []quizgen.Question, error) {
		return "Test Set", testQuestions(), nil
	})
	updated, _ := m.Update(questionsReadyMsg{Title: "Test Set", Questions: testQuestions()})
	return updated.(Model)
}

func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestLoaderErrorShowsError(t *testing.T) {
	m := New(nil)
	m, _ = step(t, m, questionsReadyMsg{Err: errors.New("provider down")})
	if m.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError", m.phase)
	}
}

func TestEmptySetShowsError(t *testing.T) {
	m := New(nil)
	m, _ = step(t, m, questionsReadyMsg{Title: "Empty"})
	if m.phase != phaseError {
		t.Fatalf("phase = %d, want phaseError", m.phase)
	}
}

func TestQuestionsReadyStartsFirstQuestion(t *testing.T) {
	m := readyModel(t)
	if m.phase != phaseQuestion {
		t.Fatalf("phase = %d, want phaseQuestion", m.phase)
	}
	if m.choice.Question != "What is 2 + 2?" {
		t.Errorf("choice question = %q", m.choice.Question)
	}
	if m.choice.CorrectIndex != 0 {
		t.Errorf("correct index = %d, want 0", m.choice.CorrectIndex)
	}
}

func TestCorrectAnswerScores(t *testing.T) {
	m := readyModel(t)

	m, _ = step(t, m, specialKey(tea.KeyEnter))
	if m.phase != phaseFeedback {
		t.Fatalf("phase = %d, want phaseFeedback", m.phase)
	}
	if m.correct != 1 || m.answered != 1 {
		t.Errorf("score = %d/%d, want 1/1", m.correct, m.answered)
	}
}

func TestWrongAnswerDoesNotScore(t *testing.T) {
	m := readyModel(t)

	m, _ = step(t, m, keyPress('j'))
	m, _ = step(t, m, specialKey(tea.KeyEnter))
	if m.correct != 0 || m.answered != 1 {
		t.Errorf("score = %d/%d, want 0/1", m.correct, m.answered)
	}
}

func TestFullSessionReachesSummary(t *testing.T) {
	m := readyModel(t)

	m, _ = step(t, m, specialKey(tea.KeyEnter)) // answer Q1
	m, _ = step(t, m, keyPress(' '))            // continue
	if m.phase != phaseQuestion || m.index != 1 {
		t.Fatalf("phase = %d index = %d, want question 2", m.phase, m.index)
	}

	m, _ = step(t, m, keyPress('b')) // select option B (correct)
	m, _ = step(t, m, specialKey(tea.KeyEnter))
	m, _ = step(t, m, keyPress(' '))

	if m.phase != phaseSummary {
		t.Fatalf("phase = %d, want phaseSummary", m.phase)
	}
	if m.correct != 2 {
		t.Errorf("correct = %d, want 2", m.correct)
	}
}

func TestSummaryQuitKey(t *testing.T) {
	m := readyModel(t)
	m, _ = step(t, m, specialKey(tea.KeyEnter))
	m, _ = step(t, m, keyPress(' '))
	m, _ = step(t, m, specialKey(tea.KeyEnter))
	m, _ = step(t, m, keyPress(' '))

	_, cmd := step(t, m, keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command from summary")
	}
}
