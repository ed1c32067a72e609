package profile

import (
	"context"
	"net/http"
)

// Body fields hold the caller's raw values; absent values are omitted.

type postBody struct {
	Title       any    `json:"title,omitempty"`
	Content     any    `json:"content,omitempty"`
	TimeCreated string `json:"timeCreated,omitempty"`
	PostOwnerID any    `json:"postownerid,omitempty"`
}

type commentBody struct {
	Content        any    `json:"content,omitempty"`
	TimeCreated    string `json:"timeCreated"`
	CommentOwnerID any    `json:"commentownerid,omitempty"`
	PostID         any    `json:"postid,omitempty"`
}

// CreateGroupPost creates a post in group params["groupId"] from the title,
// content and postownerid params, stamped with the current time.
func (c *Client) CreateGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("createGroupPost", params, "groupId", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Groups", p.GroupID, "posts"), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "createGroupPost", &HTTPRequest{
		Method: http.MethodPost,
		URL:    u,
		JSON: postBody{
			Title:       params["title"],
			Content:     params["content"],
			TimeCreated: c.timestamp(),
			PostOwnerID: params["postownerid"],
		},
	}, true)
}

// GetGroupPost fetches post params["postId"] with its owner and its
// comments' owners.
func (c *Client) GetGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("getGroupPost", params, "postId", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Posts", p.PostID), p.AccessToken, &postFilter)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "getGroupPost", &HTTPRequest{Method: http.MethodGet, URL: u}, true)
}

// UpdateGroupPost replaces the title and content of post params["postId"].
func (c *Client) UpdateGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("updateGroupPost", params, "postId", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Posts", p.PostID), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "updateGroupPost", &HTTPRequest{
		Method: http.MethodPut,
		URL:    u,
		JSON:   postBody{Title: params["title"], Content: params["content"]},
	}, true)
}

// RemoveGroupPost deletes post params["postId"]. It reports true only when
// the service answered 204 No Content.
func (c *Client) RemoveGroupPost(ctx context.Context, params Params) (bool, error) {
	p, err := decodeParams("removeGroupPost", params, "postId", "accessToken")
	if err != nil {
		return false, err
	}

	u, err := c.buildURL(resource("Posts", p.PostID), p.AccessToken, nil)
	if err != nil {
		return false, err
	}
	resp, err := c.dispatcher.Send(ctx, "removeGroupPost", &HTTPRequest{Method: http.MethodDelete, URL: u}, false)
	if err != nil || resp == nil {
		return false, err
	}
	return resp.Status == http.StatusNoContent, nil
}

// CommentOnGroupPost adds params["commentText"] as a comment by profile
// params["uid"] to post params["postId"].
func (c *Client) CommentOnGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	p, err := decodeParams("commentOnGroupPost", params, "postId", "accessToken")
	if err != nil {
		return nil, err
	}

	u, err := c.buildURL(resource("Comments"), p.AccessToken, nil)
	if err != nil {
		return nil, err
	}
	return c.dispatcher.Send(ctx, "commentOnGroupPost", &HTTPRequest{
		Method: http.MethodPost,
		URL:    u,
		JSON: commentBody{
			Content:        params["commentText"],
			TimeCreated:    c.timestamp(),
			CommentOwnerID: params["uid"],
			PostID:         params["postId"],
		},
	}, true)
}
