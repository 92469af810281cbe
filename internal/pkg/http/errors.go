package http

import "fmt"

// UpstreamError is returned when the remote API answers with a non-2xx status.
// Body holds the raw response body so callers can relay it.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, string(e.Body))
}
