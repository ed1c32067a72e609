package profile

import (
	"context"
	"regexp"
)

var accessTokenPattern = regexp.MustCompile(`access_token=[^&]*`)

// Dispatcher issues built requests through the HTTP adapter and applies the
// client's error policy.
type Dispatcher struct {
	httpAdapter   HTTPAdapter
	loggerAdapter LoggerAdapter
	policy        ErrorPolicy
}

func NewDispatcher(httpAdapter HTTPAdapter, loggerAdapter LoggerAdapter, policy ErrorPolicy) *Dispatcher {
	return &Dispatcher{
		httpAdapter:   httpAdapter,
		loggerAdapter: loggerAdapter,
		policy:        policy,
	}
}

// Send issues req exactly once. reportsErrors marks the operations that
// surface transport errors even under ErrorPolicyLegacy.
func (d *Dispatcher) Send(ctx context.Context, op string, req *HTTPRequest, reportsErrors bool) (*HTTPResponse, error) {
	logURL := redactURL(req.URL)
	d.loggerAdapter.Debug("sending request", "op", op, "method", req.Method, "url", logURL)

	resp, err := d.httpAdapter.Do(ctx, req)
	if err != nil {
		if d.policy == ErrorPolicyLegacy && !reportsErrors {
			d.loggerAdapter.Warn("transport error ignored", "op", op, "method", req.Method, "url", logURL, "error", err)
			return nil, nil
		}
		d.loggerAdapter.Error("request failed", "op", op, "method", req.Method, "url", logURL, "error", err)
		return nil, &TransportError{Op: op, Err: err, Response: resp}
	}

	if resp != nil {
		d.loggerAdapter.Debug("received response", "op", op, "status", resp.Status)
	}
	return resp, nil
}

func redactURL(u string) string {
	return accessTokenPattern.ReplaceAllString(u, "access_token=REDACTED")
}
