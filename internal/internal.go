// Package internal provides low-level helpers for GData clients.
package internal

import (
	"fmt"
	"net/http"
)

// RequestError reports a non-success HTTP response from a GData server. The
// status code, reason phrase and response body are carried verbatim from the
// server; no classification is performed.
type RequestError struct {
	Status int
	Reason string
	Body   string
}

func (err *RequestError) Error() string {
	if err.Reason != "" {
		return fmt.Sprintf("gdata: request failed: %v %v", err.Status, err.Reason)
	}
	return fmt.Sprintf("gdata: request failed: %v %v", err.Status, http.StatusText(err.Status))
}

// IsNotFound returns true if err reports an HTTP 404.
func IsNotFound(err error) bool {
	reqErr, ok := err.(*RequestError)
	return ok && reqErr.Status == http.StatusNotFound
}
