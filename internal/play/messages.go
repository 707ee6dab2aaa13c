package play

import (
	"github.com/deepak/quizdeck/internal/quizgen"
)

// questionsReadyMsg is sent when the question loader finishes.
type questionsReadyMsg struct {
	Title     string
	Questions []quizgen.Question
	Err       error
}
