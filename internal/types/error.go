package types

import "fmt"

// CustomError carries an HTTP status, a human-readable message and a
// machine type through the Fiber error chain to the global handler.
// Fields, when set, maps field names to validation messages and is
// rendered as the 400 response body.
type CustomError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Type    string            `json:"type"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}
