package statuspage

import "fmt"

// NetworkError indicates the status endpoint could not be reached or
// answered with a non-2xx status. Never retried.
type NetworkError struct {
	URL  string
	Code int
	Err  error
}

func (e *NetworkError) Error() string {
	if e.Code > 0 {
		return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.Code)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// MalformedError indicates a response that does not match the expected
// schema.
type MalformedError struct {
	Reason string
	Err    error
}

func (e *MalformedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed status response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed status response: %s", e.Reason)
}

func (e *MalformedError) Unwrap() error { return e.Err }
