package profile

import (
	"context"
	"net/http"
	"net/url"
)

// SaveLike stores a like of item params["item_id"] with params["value"] on
// profile params["uid"].
func (c *Client) SaveLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("saveLike", params, "uid", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Profiles", p.UID, "likes"), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "saveLike", &HTTPRequest{
		Method: http.MethodPost,
		URL:    u,
		Form:   pick(params, "item_id", "value"),
	}, false)
}

// UpdateLike changes the value of like params["id"] on profile params["uid"].
func (c *Client) UpdateLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.like(ctx, "updateLike", http.MethodPut, params, pick(params, "value"))
}

// RemoveLike deletes like params["id"] from profile params["uid"].
func (c *Client) RemoveLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.like(ctx, "removeLike", http.MethodDelete, params, url.Values{})
}

// ResetLikes deletes every like on profile params["uid"].
func (c *Client) ResetLikes(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("resetLikes", params, "uid", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Profiles", p.UID, "likes"), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "resetLikes", &HTTPRequest{
		Method: http.MethodDelete,
		URL:    u,
		Form:   url.Values{},
	}, false)
}

func (c *Client) like(ctx context.Context, op, method string, params Params, form url.Values) (*HTTPResponse, error) {
	p, err := decodeParams(op, params, "uid", "id", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Profiles", p.UID, "likes", p.ID), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, op, &HTTPRequest{Method: method, URL: u, Form: form}, false)
}

// pick form-encodes the present keys of params.
func pick(params Params, keys ...string) url.Values {
	picked := make(map[string]any, len(keys))
	for _, key := range keys {
		if v, ok := params[key]; ok && v != nil {
			picked[key] = v
		}
	}
	return formValues(picked)
}
