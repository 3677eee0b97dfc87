package fetch

import "fmt"

// HTTPError reports a non-2xx response from the requested server.
type HTTPError struct {
	Status int
	Reason string
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("fetch %s: HTTP %d %s", e.URL, e.Status, e.Reason)
}

// InvalidURLError reports a URL that could not be parsed or whose scheme the
// client does not handle.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// NetworkError reports a transport-level failure: connection refused, DNS
// failure, timeout, truncated body.
type NetworkError struct {
	URL string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }
