package quizgen

import (
	"fmt"

	"github.com/deepak/quizdeck/internal/samples"
)

// Synthesize produces count syntactically valid fallback questions for the
// subject, rotating through categories starting at rotation index start.
// Exemplars from the sample bank are reused verbatim with the category
// overridden; subjects with no exemplar get a fully generic record. Every
// synthesized record satisfies answer ∈ options by construction.
func Synthesize(subject string, categories []string, difficulty Difficulty, start, count int) []Question {
	if count <= 0 || len(categories) == 0 {
		return nil
	}

	exemplars := samples.Match(subject)

	out := make([]Question, 0, count)
	for i := 0; i < count; i++ {
		idx := start + i
		category := categories[idx%len(categories)]

		if len(exemplars) > 0 {
			ex := exemplars[idx%len(exemplars)]
			out = append(out, Question{
				Text:        ex.Question,
				Options:     ex.Options,
				Answer:      ex.Answer,
				Category:    category,
				Explanation: ex.Explanation,
			})
			continue
		}

		out = append(out, genericQuestion(subject, category))
	}
	return out
}

// genericQuestion builds a templated record for subjects with no exemplar.
// The option templates embed subject and category so all four are textually
// distinct.
func genericQuestion(subject, category string) Question {
	correct := fmt.Sprintf("The %s principle", category)
	return Question{
		Text:   fmt.Sprintf("Which concept is most central to %s within %s?", category, subject),
		Answer: correct,
		Options: Options{
			correct,
			fmt.Sprintf("An unrelated aspect of %s", subject),
			fmt.Sprintf("A common misconception about %s", category),
			fmt.Sprintf("A topic outside %s", subject),
		},
		Category: category,
		Explanation: fmt.Sprintf(
			"Study of %s in %s centers on the %s principle; the other options describe things outside that topic.",
			category, subject, category),
	}
}
