package profile

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Tap30/profile-go/adapters"
)

// Client issues requests against one configured endpoint. It is immutable
// after construction and safe for concurrent use.
type Client struct {
	config     Config
	dispatcher *Dispatcher
	now        func() time.Time
}

// NewClient creates a client bound to config.Endpoint.
func NewClient(config Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, &ConfigurationError{}
	}

	// Set defaults
	if config.ErrorPolicy == "" {
		config.ErrorPolicy = ErrorPolicyReject
	}
	config.VerifyEmailMethod = strings.ToUpper(config.VerifyEmailMethod)
	if config.VerifyEmailMethod == "" {
		config.VerifyEmailMethod = http.MethodGet
	}
	if config.LogLevel == "" {
		config.LogLevel = adapters.LogLevelWarn
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid client config: %w", err)
	}

	client := &Client{
		config: config,
		now:    config.Now,
	}
	if client.now == nil {
		client.now = time.Now
	}

	// Use provided adapters or defaults
	httpAdapter := config.HTTPAdapter
	if httpAdapter == nil {
		httpAdapter = adapters.NewNetHTTPAdapter(config.Timeout)
	}
	var loggerAdapter LoggerAdapter = config.LoggerAdapter
	if loggerAdapter == nil {
		loggerAdapter = adapters.NewHCLogLoggerAdapter(config.LogLevel)
	}

	client.dispatcher = NewDispatcher(httpAdapter, loggerAdapter, config.ErrorPolicy)
	return client, nil
}

// NewClientFromConfig is NewClient for an optional config. A nil config is a
// configuration error.
func NewClientFromConfig(config *Config) (*Client, error) {
	if config == nil {
		return nil, &ConfigurationError{}
	}
	return NewClient(*config)
}

// Validate checks the settings NewClient cannot default.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return &ConfigurationError{}
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.ErrorPolicy, validation.In(ErrorPolicyReject, ErrorPolicyLegacy)),
		validation.Field(&c.VerifyEmailMethod, validation.In(http.MethodGet, http.MethodPost)),
		validation.Field(&c.Timeout, validation.Min(time.Duration(0))),
	)
}

// Endpoint returns the base URL requests are built against.
func (c *Client) Endpoint() string {
	return c.config.Endpoint
}

// Operations returns every operation keyed by its remote-facing name.
func (c *Client) Operations() map[string]Operation {
	return map[string]Operation{
		"verifyEmail":          respond(c.VerifyEmail),
		"createProfile":        respond(c.CreateProfile),
		"updateProfile":        respond(c.UpdateProfile),
		"getProfile":           respond(c.GetProfile),
		"loginProfile":         respond(c.LoginProfile),
		"logoutProfile":        respond(c.LogoutProfile),
		"findMobilSoegProfile": respond(c.FindMobilSoegProfile),
		"getGroup":             respond(c.GetGroup),
		"joinGroup":            respond(c.JoinGroup),
		"leaveGroup":           respond(c.LeaveGroup),
		"createGroup":          respond(c.CreateGroup),
		"updateGroup":          respond(c.UpdateGroup),
		"queryGroups":          respond(c.QueryGroups),
		"createGroupPost":      respond(c.CreateGroupPost),
		"getGroupPost":         respond(c.GetGroupPost),
		"updateGroupPost":      respond(c.UpdateGroupPost),
		"removeGroupPost":      respond(c.RemoveGroupPost),
		"commentOnGroupPost":   respond(c.CommentOnGroupPost),
		"saveLike":             respond(c.SaveLike),
		"removeLike":           respond(c.RemoveLike),
		"updateLike":           respond(c.UpdateLike),
		"resetLikes":           respond(c.ResetLikes),
	}
}

func respond[T any](fn func(ctx context.Context, params Params) (T, error)) Operation {
	return func(ctx context.Context, params Params) (any, error) {
		return fn(ctx, params)
	}
}

// buildURL concatenates the endpoint, "api/", path and the optional
// access_token and filter parameters, in that order.
func (c *Client) buildURL(path, accessToken string, filter *Filter) (string, error) {
	u := c.config.Endpoint + "api/" + path
	sep := "?"
	if accessToken != "" {
		u += sep + "access_token=" + url.QueryEscape(accessToken)
		sep = "&"
	}
	if filter != nil {
		encoded, err := filter.Encode()
		if err != nil {
			return "", err
		}
		u += sep + "filter=" + encoded
	}
	return u, nil
}

// resource joins a collection name and escaped path segments.
func resource(name string, segments ...string) string {
	path := name
	for _, s := range segments {
		path += "/" + url.PathEscape(s)
	}
	return path
}

func (c *Client) timestamp() string {
	return c.now().UTC().Format(http.TimeFormat)
}
