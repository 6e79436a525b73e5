package rcrt

import "fmt"

// HTTPError is returned whenever the server answers with a 4xx or 5xx
// status. It carries the status code and the raw response body untranslated;
// a 404 on GetBreadcrumb and a 412 on a version-conditional update both
// surface this way.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("rcrt: server returned status %d: %s", e.StatusCode, e.Body)
}
