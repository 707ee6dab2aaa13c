package quizgen

import "encoding/json"

// envelopeMatcher attempts to extract question candidates from one known
// response shape. It reports false when the payload does not match.
type envelopeMatcher func(raw json.RawMessage) ([]Question, bool)

// envelopeMatchers lists the known response shapes in priority order:
// the preferred top-level key, then a bare array, then historical aliases.
var envelopeMatchers = []envelopeMatcher{
	objectKey("study_questions"),
	bareArray,
	objectKey("questions"),
	objectKey("quiz_questions"),
}

// decodeCandidates extracts question candidates from whatever envelope the
// model returned. Total parse failure yields zero candidates, never an error.
func decodeCandidates(raw json.RawMessage) []Question {
	for _, match := range envelopeMatchers {
		if qs, ok := match(raw); ok {
			return qs
		}
	}
	return nil
}

// objectKey matches an object whose named field holds the question array.
func objectKey(name string) envelopeMatcher {
	return func(raw json.RawMessage) ([]Question, bool) {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return nil, false
		}
		field, ok := obj[name]
		if !ok {
			return nil, false
		}
		var qs []Question
		if err := json.Unmarshal(field, &qs); err != nil {
			return nil, false
		}
		return qs, true
	}
}

// bareArray matches a top-level question array with no wrapping object.
func bareArray(raw json.RawMessage) ([]Question, bool) {
	var qs []Question
	if err := json.Unmarshal(raw, &qs); err != nil {
		return nil, false
	}
	return qs, true
}
