package main

import (
	"context"
	"sync"
	"time"

	"github.com/Tap30/profile-go/adapters"
)

// ContextAwareHTTPAdapter wraps the standard adapter with a per-request timeout
// that can be changed while the client is in use
type ContextAwareHTTPAdapter struct {
	adapter adapters.HTTPAdapter

	mu      sync.Mutex
	timeout time.Duration
}

func NewContextAwareHTTPAdapter(timeout time.Duration) *ContextAwareHTTPAdapter {
	return &ContextAwareHTTPAdapter{
		adapter: adapters.NewNetHTTPAdapter(0),
		timeout: timeout,
	}
}

func (c *ContextAwareHTTPAdapter) Do(ctx context.Context, req *adapters.HTTPRequest) (*adapters.HTTPResponse, error) {
	if timeout := c.Timeout(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return c.adapter.Do(ctx, req)
}

func (c *ContextAwareHTTPAdapter) Timeout() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.timeout
}

func (c *ContextAwareHTTPAdapter) SetTimeout(timeout time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timeout = timeout
}
