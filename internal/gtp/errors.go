package gtp

import "fmt"

// InvalidParameterError reports a required path identifier that is missing,
// non-numeric, or non-positive. The caller must correct the input.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// UnsupportedParameterError reports an argument name a tool does not accept.
// Unknown names are rejected at the boundary, never forwarded upstream.
type UnsupportedParameterError struct {
	Tool  string
	Param string
}

func (e *UnsupportedParameterError) Error() string {
	return fmt.Sprintf("tool %s does not accept parameter %q", e.Tool, e.Param)
}

// UpstreamUnavailableError reports a connection failure, timeout, or
// cancellation before a response was received. Transient; the caller may retry.
type UpstreamUnavailableError struct {
	URL string
	Err error
}

func (e *UpstreamUnavailableError) Error() string {
	return fmt.Sprintf("upstream unavailable (%s): %v", e.URL, e.Err)
}

func (e *UpstreamUnavailableError) Unwrap() error { return e.Err }

// UpstreamHTTPError reports a non-2xx upstream response. The status code and
// raw body are preserved; the body is opaque diagnostic text, not a contract.
type UpstreamHTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamHTTPError) Error() string {
	if len(e.Body) > 0 {
		return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, string(e.Body))
	}
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// UpstreamMalformedResponseError reports a 2xx response whose body is not
// valid JSON. Non-retryable.
type UpstreamMalformedResponseError struct {
	Err error
}

func (e *UpstreamMalformedResponseError) Error() string {
	return fmt.Sprintf("upstream returned malformed JSON: %v", e.Err)
}

func (e *UpstreamMalformedResponseError) Unwrap() error { return e.Err }
