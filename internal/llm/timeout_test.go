package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// slowProvider blocks until its context is done.
type slowProvider struct{}

func (slowProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (slowProvider) ModelID() string { return "slow" }

func TestWithTimeout_TripsAsClientTimeout(t *testing.T) {
	p := WithTimeout(slowProvider{}, 10*time.Millisecond)

	_, err := p.Generate(t.Context(), Request{})
	var timeout *ErrClientTimeout
	if !errors.As(err, &timeout) {
		t.Fatalf("expected ErrClientTimeout, got %T (%v)", err, err)
	}
	if timeout.Reason() != ReasonClientTimeout {
		t.Errorf("reason = %s, want %s", timeout.Reason(), ReasonClientTimeout)
	}
}

func TestWithTimeout_CallerCancellationIsNotTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	p := WithTimeout(slowProvider{}, time.Minute)
	_, err := p.Generate(ctx, Request{})

	var timeout *ErrClientTimeout
	if errors.As(err, &timeout) {
		t.Fatal("caller cancellation must not be reported as a client timeout")
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWithTimeout_PassesThroughSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"ok":true}`)})
	p := WithTimeout(mock, time.Minute)

	resp, err := p.Generate(t.Context(), Request{})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Errorf("content = %s", resp.Content)
	}
	if p.ModelID() != "mock" {
		t.Errorf("model id = %q, want mock", p.ModelID())
	}
}

func TestMockProvider_FIFOAndEmptyQueue(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`1`)},
		MockResponse{Content: json.RawMessage(`2`)},
	)

	for _, want := range []string{"1", "2"} {
		resp, err := mock.Generate(t.Context(), Request{})
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if string(resp.Content) != want {
			t.Errorf("content = %s, want %s", resp.Content, want)
		}
	}

	_, err := mock.Generate(t.Context(), Request{})
	var provider *ErrProvider
	if !errors.As(err, &provider) {
		t.Fatalf("expected ErrProvider on empty queue, got %T", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("call count = %d, want 3", mock.CallCount())
	}
}
