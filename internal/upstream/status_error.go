package upstream

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError reports a non-success HTTP status from the upstream API. The
// raw body is preserved verbatim so domain-specific server messages (for
// example a delete-conflict explanation) can be surfaced to the console.
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("upstream request failed: %d %s: %s", e.StatusCode, e.Status, e.Body)
	}
	return fmt.Sprintf("upstream request failed: %d %s", e.StatusCode, e.Status)
}

// AsStatusError unwraps err into a *StatusError when possible.
func AsStatusError(err error) (*StatusError, bool) {
	var se *StatusError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	se, ok := AsStatusError(err)
	return ok && se.StatusCode == http.StatusNotFound
}
