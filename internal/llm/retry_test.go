package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

var batchJSON = json.RawMessage(`{"study_questions":[{"question":"What is 2+2?","answer":"4"}]}`)

func TestRetryPassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: batchJSON})
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(batchJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryRecoversFromOutage(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection refused")}},
		MockResponse{Content: batchJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(batchJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	down := MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}}
	mock := NewMockProvider(down, down, down, down)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T (%v)", err, err)
	}
	if mock.CallCount() != 3 {
		t.Fatalf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryNeverRetriesTruncation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{"study_questions":[`)}},
		MockResponse{Content: batchJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var maxTok *ErrMaxTokensExceeded
	if !errors.As(err, &maxTok) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T (%v)", err, err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("calls = %d, want 1 (truncation must not be retried)", mock.CallCount())
	}
}

func TestRetryRetriesInvalidResponseOnce(t *testing.T) {
	bad := MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("not JSON")}}
	mock := NewMockProvider(bad, bad, MockResponse{Content: batchJSON})
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after second invalid response")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2 (one retry only)", mock.CallCount())
	}
}

func TestRetryInvalidThenValid(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage(`oops`), Err: errors.New("not JSON")}},
		MockResponse{Content: batchJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(batchJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
}

func TestRetryStopsOnCanceledContext(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("503")}},
		MockResponse{Content: batchJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error from canceled context")
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		MockResponse{Content: batchJSON},
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != string(batchJSON) {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("ModelID = %q, want mock", p.ModelID())
	}
}
