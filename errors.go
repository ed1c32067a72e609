package profile

import (
	"fmt"

	"github.com/Tap30/profile-go/adapters"
)

const configurationErrorMessage = "Expected config object but got null or no endpoint provided"

// ConfigurationError is returned when a client is built without an endpoint.
type ConfigurationError struct{}

func (e *ConfigurationError) Error() string {
	return configurationErrorMessage
}

func (e *ConfigurationError) Is(tgt error) bool {
	_, ok := tgt.(*ConfigurationError)
	return ok
}

// MissingParameterError names a required parameter that was absent or empty.
type MissingParameterError struct {
	Op    string
	Field string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Op, e.Field)
}

func (e *MissingParameterError) Is(tgt error) bool {
	_, ok := tgt.(*MissingParameterError)
	return ok
}

// TransportError is returned when the HTTP adapter produced no response.
type TransportError struct {
	Op  string
	Err error
	// Response is whatever the adapter returned alongside the error, usually nil.
	Response *adapters.HTTPResponse
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: transport error: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
