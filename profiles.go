package profile

import (
	"context"
	"net/http"
)

// VerifyEmail confirms a profile with the verification token sent by email.
// params are sent as the query string, or as a form body when the client is
// configured with VerifyEmailMethod POST.
func (c *Client) VerifyEmail(ctx context.Context, params Params) (*HTTPResponse, error) {
	u, err := c.buildURL(resource("Profiles", "confirm"), "", nil)
	if err != nil {
		return nil, err
	}

	req := &HTTPRequest{Method: c.config.VerifyEmailMethod, URL: u}
	if req.Method == http.MethodGet {
		req.Query = formValues(params)
	} else {
		req.Form = formValues(params)
	}
	return c.dispatcher.Send(ctx, "verifyEmail", req, false)
}

// CreateProfile creates a profile from params.
func (c *Client) CreateProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.postForm(ctx, "createProfile", resource("Profiles"), params)
}

// GetProfile fetches profile params["id"] with its likes and groups.
func (c *Client) GetProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("getProfile", params, "id", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Profiles", p.ID), p.AccessToken, &profileFilter)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "getProfile", &HTTPRequest{Method: http.MethodGet, URL: u}, false)
}

// UpdateProfile persists params, sent whole as the JSON body, to profile
// params["id"].
func (c *Client) UpdateProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.putJSON(ctx, "updateProfile", "Profiles", params)
}

// LoginProfile logs a profile in with the credentials in params.
func (c *Client) LoginProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.postForm(ctx, "loginProfile", resource("Profiles", "login"), params)
}

// LogoutProfile invalidates params["accessToken"].
func (c *Client) LogoutProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("logoutProfile", params, "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Profiles", "logout"), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "logoutProfile", &HTTPRequest{Method: http.MethodPost, URL: u}, false)
}

type mobilSoegLookup struct {
	AgencyID any `json:"agencyid"`
	LoanerID any `json:"loanerid"`
}

// FindMobilSoegProfile looks up the profile of a loaner at an agency.
// Transport errors are always reported.
func (c *Client) FindMobilSoegProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	if _, err := decodeParams("findMobilSoegProfile", params, "agencyid", "loanerid"); err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("MobilSoegProfiles", "findMobilSoegProfile"), "", nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "findMobilSoegProfile", &HTTPRequest{
		Method: http.MethodGet,
		URL:    u,
		JSON:   mobilSoegLookup{AgencyID: params["agencyid"], LoanerID: params["loanerid"]},
	}, true)
}

func (c *Client) postForm(ctx context.Context, op, path string, params Params) (*HTTPResponse, error) {
	u, err := c.buildURL(path, "", nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, op, &HTTPRequest{
		Method: http.MethodPost,
		URL:    u,
		Form:   formValues(params),
	}, false)
}

// putJSON sends params whole to collection/params["id"].
func (c *Client) putJSON(ctx context.Context, op, collection string, params Params) (*HTTPResponse, error) {
	p, err := decodeParams(op, params, "id", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource(collection, p.ID), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, op, &HTTPRequest{
		Method: http.MethodPut,
		URL:    u,
		JSON:   map[string]any(params),
	}, false)
}
