package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a study assistant creating multiple-choice questions for learners reviewing a subject.

Rules:
- Generate exactly the requested number of questions for the given subject and difficulty.
- Each question has exactly 4 mutually exclusive options with exactly one correct answer.
- The answer field must repeat the text of the correct option verbatim.
- Assign each question a short category label describing its topic within the subject.
- In the explanation, say why the answer is correct and why each distractor is wrong.
- No duplicate or near-duplicate questions within the set.
- Use plain text. No markdown, no numbering inside the question text.`

// buildUserMessage constructs the generation request for one question set.
func buildUserMessage(subject string, difficulty Difficulty, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	fmt.Fprintf(&b, "Difficulty: %s\n", difficulty)
	fmt.Fprintf(&b, "Number of questions: %d\n", count)
	return b.String()
}
