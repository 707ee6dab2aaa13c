package quizgen

import "encoding/json"

// Question is one candidate multiple-choice item prior to persistence.
type Question struct {
	// Text is the question prompt.
	Text string `json:"question"`

	// Options holds the four answer options in display order.
	Options Options `json:"options"`

	// Answer is the correct option, matching one Options element verbatim.
	Answer string `json:"answer"`

	// Category is a free-text category label assigned by the model or the
	// synthesizer's rotation.
	Category string `json:"category"`

	// Explanation says why the answer is correct and the distractors are not.
	Explanation string `json:"explanation"`
}

// Options is an ordered list of answer options. Models occasionally return
// the array serialized inside a JSON string, so decoding accepts both shapes;
// anything else degrades to empty rather than failing the whole record.
type Options []string

func (o *Options) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*o = arr
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			*o = arr
			return nil
		}
	}

	*o = nil
	return nil
}

// Difficulty is the requested difficulty of a generated set.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty normalizes a difficulty string, defaulting to medium.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), true
	case "":
		return DifficultyMedium, true
	default:
		return DifficultyMedium, false
	}
}
