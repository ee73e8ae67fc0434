package wordpress

import (
	"errors"
	"fmt"
)

// APIError carries everything the user needs to diagnose a rejected call:
// the HTTP status, its text, the response body, and the request URL.
type APIError struct {
	StatusCode int
	Status     string
	Body       string
	URL        string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("wordpress: %s returned %s", e.URL, e.Status)
	}
	return fmt.Sprintf("wordpress: %s returned %s: %s", e.URL, e.Status, e.Body)
}

// AsAPIError unwraps err into an *APIError when one is present.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
