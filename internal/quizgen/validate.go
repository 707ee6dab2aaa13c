package quizgen

// structurallyValid reports whether a candidate is a well-formed question
// record: non-empty text, exactly 4 distinct options, and an answer that
// matches one option verbatim. Violating records are dropped, never
// silently renumbered.
func structurallyValid(q Question) bool {
	if q.Text == "" {
		return false
	}
	if len(q.Options) != 4 {
		return false
	}

	seen := make(map[string]bool, 4)
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" || seen[opt] {
			return false
		}
		seen[opt] = true
		if opt == q.Answer {
			answerFound = true
		}
	}
	return answerFound
}
