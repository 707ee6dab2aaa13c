package samples

import "strings"

// Exemplar is a hand-written fallback question attributed to a subject.
// Exemplars are reused verbatim when generation comes up short; only the
// category field is overridden by the synthesizer's rotation.
type Exemplar struct {
	Subject     string
	Question    string
	Options     []string
	Answer      string
	Explanation string
}

// bank holds the fixed exemplar records, grouped by subject. Order matters:
// the synthesizer picks by index, so the first mathematics record is the
// algebra one.
var bank = []Exemplar{
	{
		Subject:     "mathematics",
		Question:    "Solve for x: 2x + 6 = 14.",
		Options:     []string{"x = 4", "x = 6", "x = 8", "x = 10"},
		Answer:      "x = 4",
		Explanation: "Subtract 6 from both sides to get 2x = 8, then divide by 2. The other options come from skipping one of those two steps.",
	},
	{
		Subject:     "mathematics",
		Question:    "What is the sum of the interior angles of a triangle?",
		Options:     []string{"180 degrees", "90 degrees", "270 degrees", "360 degrees"},
		Answer:      "180 degrees",
		Explanation: "Any triangle's interior angles sum to 180 degrees. 360 degrees is the sum for a quadrilateral, and 90 degrees is a single right angle.",
	},
	{
		Subject:     "history",
		Question:    "In which year did World War II end?",
		Options:     []string{"1945", "1939", "1941", "1950"},
		Answer:      "1945",
		Explanation: "The war ended in 1945 with the surrender of Germany and Japan. 1939 is the year it began, and 1941 is when the United States entered.",
	},
	{
		Subject:     "science",
		Question:    "Which gas do plants absorb during photosynthesis?",
		Options:     []string{"Carbon dioxide", "Oxygen", "Nitrogen", "Hydrogen"},
		Answer:      "Carbon dioxide",
		Explanation: "Plants take in carbon dioxide and release oxygen. Oxygen is the product, not the input, and nitrogen and hydrogen play no direct role.",
	},
	{
		Subject:     "literature",
		Question:    "Who wrote the play Romeo and Juliet?",
		Options:     []string{"William Shakespeare", "Charles Dickens", "Jane Austen", "Mark Twain"},
		Answer:      "William Shakespeare",
		Explanation: "Romeo and Juliet is one of Shakespeare's early tragedies. The other three are novelists, not Elizabethan playwrights.",
	},
	{
		Subject:     "geography",
		Question:    "What is the capital of Australia?",
		Options:     []string{"Canberra", "Sydney", "Melbourne", "Perth"},
		Answer:      "Canberra",
		Explanation: "Canberra was purpose-built as the capital. Sydney and Melbourne are larger cities and common wrong answers.",
	},
	{
		Subject:     "programming",
		Question:    "Which data structure processes elements in first-in, first-out order?",
		Options:     []string{"Queue", "Stack", "Binary tree", "Hash table"},
		Answer:      "Queue",
		Explanation: "A queue is FIFO. A stack is the opposite (LIFO), and trees and hash tables impose no insertion-order processing.",
	},
}

// Match returns the exemplars relevant to the requested subject: those whose
// declared subject contains, or is contained by, the request (case-insensitive).
// Result order follows the bank's fixed order.
func Match(subject string) []Exemplar {
	want := strings.ToLower(strings.TrimSpace(subject))
	if want == "" {
		return nil
	}

	var out []Exemplar
	for _, ex := range bank {
		have := strings.ToLower(ex.Subject)
		if strings.Contains(have, want) || strings.Contains(want, have) {
			out = append(out, ex)
		}
	}
	return out
}
