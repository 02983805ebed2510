package openapi

import "fmt"

// UnsupportedMethodError reports an unrecognized verb passed to the
// generic Request dispatcher.
type UnsupportedMethodError struct {
	Method string
}

// Error implements the error interface.
func (e *UnsupportedMethodError) Error() string {
	return fmt.Sprintf("openapi: unsupported HTTP method: %s", e.Method)
}
