package profile

import (
	"context"
	"net/http"
)

// CreateGroup creates a group from params.
func (c *Client) CreateGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.postForm(ctx, "createGroup", resource("Groups"), params)
}

// GetGroup fetches group params["id"] with its members and its posts, each
// post with its owner and its comments' owners.
func (c *Client) GetGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("getGroup", params, "id")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Groups", p.ID), "", &groupFilter)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "getGroup", &HTTPRequest{Method: http.MethodGet, URL: u}, false)
}

// UpdateGroup persists params, sent whole as the JSON body, to group
// params["id"].
func (c *Client) UpdateGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.putJSON(ctx, "updateGroup", "Groups", params)
}

// QueryGroups lists the groups whose name contains params["query"], ignoring
// case, with their members. The query must be present; an empty query
// matches every group. Transport errors are always reported.
func (c *Client) QueryGroups(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("queryGroups", params, "accessToken", "query")
	if err != nil {
		return nil, err
	}

	filter, err := GroupSearchFilter(*p.Query)
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Groups"), p.AccessToken, &filter)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "queryGroups", &HTTPRequest{Method: http.MethodGet, URL: u}, true)
}

// JoinGroup makes profile params["memberId"] a member of group
// params["groupId"].
func (c *Client) JoinGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.membership(ctx, "joinGroup", http.MethodPut, params)
}

// LeaveGroup removes profile params["memberId"] from group params["groupId"].
func (c *Client) LeaveGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return c.membership(ctx, "leaveGroup", http.MethodDelete, params)
}

func (c *Client) membership(ctx context.Context, op, method string, params Params) (*HTTPResponse, error) {
	p, err := decodeParams(op, params, "groupId", "memberId")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Groups", p.GroupID, "members", "rel", p.MemberID), "", nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, op, &HTTPRequest{
		Method: method,
		URL:    u,
		Form:   formValues(params),
	}, false)
}
