package profile

import (
	"context"
	"time"

	"github.com/Tap30/profile-go/adapters"
)

// Re-export adapter types for convenience
type (
	HTTPAdapter   = adapters.HTTPAdapter
	HTTPRequest   = adapters.HTTPRequest
	HTTPResponse  = adapters.HTTPResponse
	LoggerAdapter = adapters.LoggerAdapter
	LogLevel      = adapters.LogLevel
)

// Params is the loosely typed argument of every operation. Each operation
// reads only the keys it needs; operations that forward params as a request
// body forward unknown keys untouched.
type Params map[string]any

// Operation is the dynamic form of a client operation, as listed by
// Client.Operations. The result is a *HTTPResponse, or a bool for
// removeGroupPost.
type Operation func(ctx context.Context, params Params) (any, error)

// ErrorPolicy selects how operations report transport failures.
type ErrorPolicy string

const (
	// ErrorPolicyReject makes every operation return a *TransportError when
	// no response was received.
	ErrorPolicyReject ErrorPolicy = "reject"

	// ErrorPolicyLegacy only reports transport failures from queryGroups,
	// createGroupPost, getGroupPost, updateGroupPost, commentOnGroupPost and
	// findMobilSoegProfile. Every other operation logs the failure and
	// returns a nil response with a nil error.
	ErrorPolicyLegacy ErrorPolicy = "legacy"
)

type Config struct {
	// Endpoint is the base URL. Paths are appended without a separator, so
	// it is expected to end in "/".
	Endpoint string

	ErrorPolicy ErrorPolicy

	// VerifyEmailMethod is GET (query string) or POST (form body).
	// Default: GET
	VerifyEmailMethod string

	// Timeout for the default HTTP adapter. Zero means no timeout beyond
	// the caller's context.
	Timeout time.Duration

	// LogLevel for the default logger. Default: WARN
	LogLevel LogLevel

	HTTPAdapter   HTTPAdapter
	LoggerAdapter LoggerAdapter

	// Now is used for timeCreated fields. Default: time.Now
	Now func() time.Time
}
