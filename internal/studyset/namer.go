package studyset

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/quizgen"
)

// maxNameLength bounds model-proposed set names; longer answers are assumed
// to contain commentary and are replaced by the deterministic fallback.
const maxNameLength = 50

const namingSystemPrompt = `You name quiz study sets.

Given a subject and its topic categories, answer with a single short, engaging name for the set. At most 50 characters. Answer with the name only: no quotes, no explanation.`

// Namer derives a short human-facing name for a completed set.
type Namer struct {
	provider llm.Provider
	cfg      Config
}

// Config holds configuration for name generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultNamerConfig returns sensible defaults for name generation.
func DefaultNamerConfig() Config {
	return Config{
		MaxTokens:   64,
		Temperature: 0.8,
	}
}

// NewNamer creates a Namer. The provider may be nil, in which case the
// deterministic fallback name is always used.
func NewNamer(provider llm.Provider, cfg Config) *Namer {
	return &Namer{provider: provider, cfg: cfg}
}

// NameFor returns a display name for a set of questions. It never fails:
// an unusable or unavailable model degrades to deterministic formatting.
func (n *Namer) NameFor(ctx context.Context, subject string, questions []quizgen.Question) string {
	cats := collectCategories(questions, 3)

	if n.provider == nil {
		return fallbackName(subject, cats)
	}

	ctx = llm.WithPurpose(ctx, "naming")

	var b strings.Builder
	fmt.Fprintf(&b, "Subject: %s\n", subject)
	if len(cats) > 0 {
		fmt.Fprintf(&b, "Categories: %s\n", strings.Join(cats, ", "))
	}

	resp, err := n.provider.Generate(ctx, llm.Request{
		System: namingSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		MaxTokens:   n.cfg.MaxTokens,
		Temperature: n.cfg.Temperature,
	})
	if err != nil {
		return fmt.Sprintf("%s Study Set (%s)", subject, time.Now().Format("Jan 2, 2006"))
	}

	name := cleanName(resp.Content)
	if name == "" || len(name) > maxNameLength {
		return fallbackName(subject, cats)
	}
	return name
}

// cleanName strips JSON string quoting, surrounding whitespace, and wrapping
// quote characters from a model answer.
func cleanName(content json.RawMessage) string {
	name := string(content)
	var s string
	if err := json.Unmarshal(content, &s); err == nil {
		name = s
	}

	name = strings.TrimSpace(name)
	name = strings.Trim(name, `"'`+"`")
	return strings.TrimSpace(name)
}

// fallbackName formats a deterministic set name from the subject and up to
// two categories, shrinking until it fits the length bound.
func fallbackName(subject string, cats []string) string {
	if len(cats) > 2 {
		cats = cats[:2]
	}
	if len(cats) > 0 {
		name := fmt.Sprintf("%s Study Set: %s", subject, strings.Join(cats, " & "))
		if len(name) <= maxNameLength {
			return name
		}
	}
	return fmt.Sprintf("%s Study Set", subject)
}

// collectCategories gathers up to max distinct category values in
// first-seen order.
func collectCategories(questions []quizgen.Question, max int) []string {
	seen := make(map[string]bool, max)
	var out []string
	for _, q := range questions {
		if q.Category == "" || seen[q.Category] {
			continue
		}
		seen[q.Category] = true
		out = append(out, q.Category)
		if len(out) == max {
			break
		}
	}
	return out
}
