package llm

import "context"

type ctxKey int

const purposeCtxKey ctxKey = iota

// WithPurpose labels the context with the pipeline step issuing the
// request ("question-gen", "classify", "set-name"). The logging decorator
// records the label on each event row so `quizdeck llm` can group by it.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeCtxKey, purpose)
}

// PurposeFrom returns the label set by WithPurpose, or "unknown" when the
// caller never labeled the context.
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeCtxKey).(string); ok {
		return p
	}
	return "unknown"
}
