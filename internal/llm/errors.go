package llm

import (
	"encoding/json"
	"fmt"
)

// Reason classifies a gateway failure for callers that branch on the
// failure kind rather than the concrete type.
type Reason string

const (
	ReasonProviderError Reason = "provider_error"
	ReasonClientTimeout Reason = "client_timeout"
	ReasonInvalidJSON   Reason = "invalid_json"
	ReasonInvalidSchema Reason = "schema_validation_failed"
)

// ErrProvider indicates the provider returned a non-2xx or empty response,
// or was otherwise unreachable.
type ErrProvider struct {
	Err error
}

func (e *ErrProvider) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("provider error: %v", e.Err)
	}
	return "provider error"
}

func (e *ErrProvider) Unwrap() error { return e.Err }

func (e *ErrProvider) Reason() Reason { return ReasonProviderError }

// ErrClientTimeout indicates the hard client-side timeout elapsed before
// the provider responded. The gateway does not retry; callers decide.
type ErrClientTimeout struct {
	Err error
}

func (e *ErrClientTimeout) Error() string {
	return fmt.Sprintf("client timeout waiting for provider: %v", e.Err)
}

func (e *ErrClientTimeout) Unwrap() error { return e.Err }

func (e *ErrClientTimeout) Reason() Reason { return ReasonClientTimeout }

// ErrInvalidJSON indicates the response body was not parseable JSON even
// after stripping code-fence wrapping.
type ErrInvalidJSON struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidJSON) Error() string {
	return fmt.Sprintf("provider returned invalid JSON: %v", e.Err)
}

func (e *ErrInvalidJSON) Unwrap() error { return e.Err }

func (e *ErrInvalidJSON) Reason() Reason { return ReasonInvalidJSON }

// ErrInvalidResponse indicates well-formed JSON that does not conform to
// the requested schema. Kept distinct from ErrInvalidJSON so callers can
// surface schema drift as a defect rather than a parse problem.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("invalid provider response: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

func (e *ErrInvalidResponse) Reason() Reason { return ReasonInvalidSchema }
