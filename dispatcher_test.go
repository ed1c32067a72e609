package profile

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tap30/profile-go/adapters"
)

type mockHTTPAdapter struct {
	mu       sync.Mutex
	requests []*HTTPRequest
	resp     *HTTPResponse
	err      error
}

func (m *mockHTTPAdapter) Do(ctx context.Context, req *HTTPRequest) (*HTTPResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requests = append(m.requests, req)
	if m.err != nil {
		return m.resp, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return &HTTPResponse{OK: true, Status: 200}, nil
}

func (m *mockHTTPAdapter) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

func (m *mockHTTPAdapter) last() *HTTPRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	return m.requests[len(m.requests)-1]
}

var testNow = time.Date(2026, 10, 19, 10, 30, 0, 0, time.FixedZone("CEST", 2*60*60))

const testTimestamp = "Mon, 19 Oct 2026 08:30:00 GMT"

func createTestConfig(httpAdapter HTTPAdapter) Config {
	return Config{
		Endpoint:      "http://h/",
		HTTPAdapter:   httpAdapter,
		LoggerAdapter: adapters.NewNoOpLoggerAdapter(),
		Now:           func() time.Time { return testNow },
	}
}

func createTestClient(t testing.TB, httpAdapter HTTPAdapter) *Client {
	t.Helper()
	client, err := NewClient(createTestConfig(httpAdapter))
	require.NoError(t, err)
	return client
}

func TestDispatcher_Send(t *testing.T) {
	httpAdapter := &mockHTTPAdapter{resp: &HTTPResponse{OK: true, Status: 201, Body: []byte(`{"id":1}`)}}
	dispatcher := NewDispatcher(httpAdapter, adapters.NewNoOpLoggerAdapter(), ErrorPolicyReject)

	req := &HTTPRequest{Method: "GET", URL: "http://h/api/Groups"}
	resp, err := dispatcher.Send(context.Background(), "getGroup", req, false)
	require.NoError(t, err)
	assert.Equal(t, 201, resp.Status)
	assert.Equal(t, []byte(`{"id":1}`), resp.Body)
	assert.Same(t, req, httpAdapter.last())
	assert.Equal(t, 1, httpAdapter.calls())
}

func TestDispatcher_SendTransportError(t *testing.T) {
	sentinel := errors.New("connection refused")
	req := &HTTPRequest{Method: "GET", URL: "http://h/api/Groups"}

	t.Run("reject policy reports every error", func(t *testing.T) {
		dispatcher := NewDispatcher(&mockHTTPAdapter{err: sentinel}, adapters.NewNoOpLoggerAdapter(), ErrorPolicyReject)

		for _, reports := range []bool{true, false} {
			resp, err := dispatcher.Send(context.Background(), "getGroup", req, reports)
			assert.Nil(t, resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, sentinel)

			var transportErr *TransportError
			require.ErrorAs(t, err, &transportErr)
			assert.Equal(t, "getGroup", transportErr.Op)
			assert.Equal(t, "getGroup: transport error: connection refused", err.Error())
		}
	})

	t.Run("legacy policy swallows errors of non-reporting operations", func(t *testing.T) {
		dispatcher := NewDispatcher(&mockHTTPAdapter{err: sentinel}, adapters.NewNoOpLoggerAdapter(), ErrorPolicyLegacy)

		resp, err := dispatcher.Send(context.Background(), "getGroup", req, false)
		assert.NoError(t, err)
		assert.Nil(t, resp)

		_, err = dispatcher.Send(context.Background(), "queryGroups", req, true)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("keeps the partial response", func(t *testing.T) {
		partial := &HTTPResponse{Status: 502}
		dispatcher := NewDispatcher(&mockHTTPAdapter{err: sentinel, resp: partial}, adapters.NewNoOpLoggerAdapter(), ErrorPolicyReject)

		_, err := dispatcher.Send(context.Background(), "findMobilSoegProfile", req, true)
		var transportErr *TransportError
		require.ErrorAs(t, err, &transportErr)
		assert.Same(t, partial, transportErr.Response)
	})
}

func TestDispatcher_LogsWithoutAccessToken(t *testing.T) {
	var buf bytes.Buffer
	logger := adapters.NewHCLogLoggerAdapterWithOutput(adapters.LogLevelDebug, &buf)
	dispatcher := NewDispatcher(&mockHTTPAdapter{err: errors.New("boom")}, logger, ErrorPolicyReject)

	_, _ = dispatcher.Send(context.Background(), "getProfile", &HTTPRequest{
		Method: "GET",
		URL:    "http://h/api/Profiles/42?access_token=secret-token",
	}, false)

	out := buf.String()
	assert.Contains(t, out, "sending request")
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "access_token=REDACTED")
	assert.NotContains(t, out, "secret-token")
}

func TestRedactURL(t *testing.T) {
	assert.Equal(t, "http://h/api/Groups", redactURL("http://h/api/Groups"))
	assert.Equal(t, "http://h/api/Groups?access_token=REDACTED", redactURL("http://h/api/Groups?access_token=tok"))
	assert.Equal(t, "http://h/x?access_token=REDACTED&filter=1", redactURL("http://h/x?access_token=tok&filter=1"))
}
