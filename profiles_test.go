package profile

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ProfileRequests(t *testing.T) {
	tests := []struct {
		name   string
		call   func(*Client) (*HTTPResponse, error)
		method string
		url    string
		form   url.Values
		query  url.Values
		json   string
	}{
		{
			name: "verifyEmail",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.VerifyEmail(context.Background(), Params{"uid": "u1", "token": "abc"})
			},
			method: http.MethodGet,
			url:    "http://h/api/Profiles/confirm",
			query:  url.Values{"uid": {"u1"}, "token": {"abc"}},
		},
		{
			name: "createProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.CreateProfile(context.Background(), Params{"email": "a@b.dk", "password": "pw"})
			},
			method: http.MethodPost,
			url:    "http://h/api/Profiles",
			form:   url.Values{"email": {"a@b.dk"}, "password": {"pw"}},
		},
		{
			name: "getProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.GetProfile(context.Background(), Params{"id": "42", "accessToken": "tok"})
			},
			method: http.MethodGet,
			url:    `http://h/api/Profiles/42?access_token=tok&filter={"include":["likes","groups"]}`,
		},
		{
			name: "updateProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.UpdateProfile(context.Background(), Params{"id": "42", "accessToken": "tok", "name": "Rowling"})
			},
			method: http.MethodPut,
			url:    "http://h/api/Profiles/42?access_token=tok",
			json:   `{"accessToken":"tok","id":"42","name":"Rowling"}`,
		},
		{
			name: "loginProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.LoginProfile(context.Background(), Params{"username": "rowling", "password": "pw"})
			},
			method: http.MethodPost,
			url:    "http://h/api/Profiles/login",
			form:   url.Values{"username": {"rowling"}, "password": {"pw"}},
		},
		{
			name: "logoutProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.LogoutProfile(context.Background(), Params{"accessToken": "tok"})
			},
			method: http.MethodPost,
			url:    "http://h/api/Profiles/logout?access_token=tok",
		},
		{
			name: "findMobilSoegProfile",
			call: func(c *Client) (*HTTPResponse, error) {
				return c.FindMobilSoegProfile(context.Background(), Params{"agencyid": "710100", "loanerid": 1234})
			},
			method: http.MethodGet,
			url:    "http://h/api/MobilSoegProfiles/findMobilSoegProfile",
			json:   `{"agencyid":"710100","loanerid":1234}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpAdapter := &mockHTTPAdapter{}
			_, err := tt.call(createTestClient(t, httpAdapter))
			require.NoError(t, err)

			req := httpAdapter.last()
			require.NotNil(t, req)
			assert.Equal(t, tt.method, req.Method)
			assert.Equal(t, tt.url, req.URL)
			assert.Equal(t, tt.form, req.Form)
			assert.Equal(t, tt.query, req.Query)
			assert.Equal(t, tt.json, mustJSON(t, req.JSON))
		})
	}
}

func TestClient_VerifyEmailPost(t *testing.T) {
	httpAdapter := &mockHTTPAdapter{}
	config := createTestConfig(httpAdapter)
	config.VerifyEmailMethod = "post"
	client, err := NewClient(config)
	require.NoError(t, err)

	_, err = client.VerifyEmail(context.Background(), Params{"uid": "u1", "token": "abc"})
	require.NoError(t, err)

	req := httpAdapter.last()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "http://h/api/Profiles/confirm", req.URL)
	assert.Nil(t, req.Query)
	assert.Equal(t, url.Values{"uid": {"u1"}, "token": {"abc"}}, req.Form)
}

func TestClient_ProfilePassesResponseThrough(t *testing.T) {
	resp := &HTTPResponse{OK: false, Status: 401, Body: []byte(`{"error":{"statusCode":401}}`)}
	client := createTestClient(t, &mockHTTPAdapter{resp: resp})

	got, err := client.GetProfile(context.Background(), Params{"id": "42", "accessToken": "expired"})
	require.NoError(t, err)
	assert.Same(t, resp, got)
}

func TestClient_PathSegmentsAreEscaped(t *testing.T) {
	httpAdapter := &mockHTTPAdapter{}
	client := createTestClient(t, httpAdapter)

	_, err := client.GetProfile(context.Background(), Params{"id": "a/b", "accessToken": "t&k"})
	require.NoError(t, err)
	assert.Equal(t, `http://h/api/Profiles/a%2Fb?access_token=t%26k&filter={"include":["likes","groups"]}`, httpAdapter.last().URL)
}

func TestFormValues(t *testing.T) {
	values := formValues(map[string]any{
		"name":    "Rowling",
		"age":     57,
		"admin":   true,
		"nothing": nil,
		"tags":    []string{"a", "b"},
		"address": map[string]any{"city": "Aarhus"},
	})

	assert.Equal(t, url.Values{
		"name":          {"Rowling"},
		"age":           {"57"},
		"admin":         {"true"},
		"nothing":       {""},
		"tags[0]":       {"a"},
		"tags[1]":       {"b"},
		"address[city]": {"Aarhus"},
	}, values)
}
