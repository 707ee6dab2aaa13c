package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/deepak/quizdeck/internal/llm"
	"github.com/deepak/quizdeck/internal/store"
)

// Config holds configuration for subject inference.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults. Inference is a short constrained
// lookup, so the budget is small and deterministic.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   128,
		Temperature: 0.0,
	}
}

// Resolver maps free-text category names to taxonomy entries using a
// lookup-or-infer-or-create cascade.
type Resolver struct {
	provider   llm.Provider
	categories store.CategoryRepo
	subjects   store.SubjectRepo
	cfg        Config
}

// NewResolver creates a Resolver. The provider may be nil, in which case
// inference is skipped and categories are created without a subject.
func NewResolver(provider llm.Provider, categories store.CategoryRepo, subjects store.SubjectRepo, cfg Config) *Resolver {
	return &Resolver{
		provider:   provider,
		categories: categories,
		subjects:   subjects,
		cfg:        cfg,
	}
}

// Resolve returns the canonical category name for categoryName, creating the
// Category (and, when inference succeeds, its Subject) on first encounter.
// It never fails: every failure path degrades to an empty result with a
// logged warning, and an existing category is returned as-is without
// re-inference.
func (r *Resolver) Resolve(ctx context.Context, categoryName, questionText string) string {
	existing, err := r.categories.ByName(ctx, categoryName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: category lookup failed for %q: %v\n", categoryName, err)
		return ""
	}
	if existing != nil {
		return existing.Name
	}

	subject := r.inferSubject(ctx, categoryName, questionText)

	if subject != "" {
		if err := r.subjects.Upsert(ctx, subject); err != nil {
			// A missing subject row only loses taxonomy depth; the category
			// is still worth creating.
			fmt.Fprintf(os.Stderr, "warning: subject upsert failed for %q: %v\n", subject, err)
			subject = ""
		}
	}

	created, err := r.categories.Create(ctx, categoryName, subject)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: category create failed for %q: %v\n", categoryName, err)
		return ""
	}
	return created.Name
}

// inferenceOutput is the raw LLM response.
type inferenceOutput struct {
	Subject string `json:"subject"`
}

// inferSubject asks the model for the most likely academic subject of a
// category. Returns "" on any failure.
func (r *Resolver) inferSubject(ctx context.Context, categoryName, questionText string) string {
	if r.provider == nil {
		return ""
	}

	ctx = llm.WithPurpose(ctx, "classify")

	req := llm.Request{
		System: inferenceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildInferenceMessage(categoryName, questionText)},
		},
		Schema:      SubjectSchema,
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.provider.Generate(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: subject inference failed for %q: %v\n", categoryName, err)
		return ""
	}

	var raw inferenceOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		fmt.Fprintf(os.Stderr, "warning: unparseable inference response for %q: %v\n", categoryName, err)
		return ""
	}

	return cleanSubject(raw.Subject)
}

// cleanSubject normalizes a model answer into a short subject label: strip
// wrapping quotes and periods, and treat long answers as containing
// extraneous explanation, keeping only the first three words.
func cleanSubject(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`+"`")
	s = strings.TrimRight(s, ".")
	s = strings.TrimSpace(s)

	words := strings.Fields(s)
	if len(words) > 4 {
		words = words[:3]
	}
	return strings.Join(words, " ")
}
