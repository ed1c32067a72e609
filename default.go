package profile

import (
	"context"
	"sync/atomic"
)

// The package-level functions below use one process-wide client set by
// Configure. The last Configure wins, and a call that has not yet built its
// request when Configure runs may target either endpoint. Use NewClient for
// independent clients.

var defaultClient atomic.Pointer[Client]

// Configure replaces the process-wide client. On error the previous client
// is kept.
func Configure(config Config) error {
	client, err := NewClient(config)
	if err != nil {
		return err
	}
	defaultClient.Store(client)
	return nil
}

// Default returns the process-wide client, or a *ConfigurationError if
// Configure has not succeeded yet.
func Default() (*Client, error) {
	client := defaultClient.Load()
	if client == nil {
		return nil, &ConfigurationError{}
	}
	return client, nil
}

func withDefault[T any](ctx context.Context, params Params, fn func(*Client, context.Context, Params) (T, error)) (T, error) {
	client, err := Default()
	if err != nil {
		var zero T
		return zero, err
	}
	return fn(client, ctx, params)
}

// VerifyEmail runs Client.VerifyEmail on the Default client.
func VerifyEmail(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).VerifyEmail)
}

// CreateProfile runs Client.CreateProfile on the Default client.
func CreateProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).CreateProfile)
}

// GetProfile runs Client.GetProfile on the Default client.
func GetProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).GetProfile)
}

// UpdateProfile runs Client.UpdateProfile on the Default client.
func UpdateProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).UpdateProfile)
}

// LoginProfile runs Client.LoginProfile on the Default client.
func LoginProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).LoginProfile)
}

// LogoutProfile runs Client.LogoutProfile on the Default client.
func LogoutProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).LogoutProfile)
}

// FindMobilSoegProfile runs Client.FindMobilSoegProfile on the Default client.
func FindMobilSoegProfile(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).FindMobilSoegProfile)
}

// CreateGroup runs Client.CreateGroup on the Default client.
func CreateGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).CreateGroup)
}

// GetGroup runs Client.GetGroup on the Default client.
func GetGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).GetGroup)
}

// UpdateGroup runs Client.UpdateGroup on the Default client.
func UpdateGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).UpdateGroup)
}

// QueryGroups runs Client.QueryGroups on the Default client.
func QueryGroups(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).QueryGroups)
}

// JoinGroup runs Client.JoinGroup on the Default client.
func JoinGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).JoinGroup)
}

// LeaveGroup runs Client.LeaveGroup on the Default client.
func LeaveGroup(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).LeaveGroup)
}

// CreateGroupPost runs Client.CreateGroupPost on the Default client.
func CreateGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).CreateGroupPost)
}

// GetGroupPost runs Client.GetGroupPost on the Default client.
func GetGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).GetGroupPost)
}

// UpdateGroupPost runs Client.UpdateGroupPost on the Default client.
func UpdateGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).UpdateGroupPost)
}

// RemoveGroupPost runs Client.RemoveGroupPost on the Default client.
func RemoveGroupPost(ctx context.Context, params Params) (bool, error) {
	return withDefault(ctx, params, (*Client).RemoveGroupPost)
}

// CommentOnGroupPost runs Client.CommentOnGroupPost on the Default client.
func CommentOnGroupPost(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).CommentOnGroupPost)
}

// SaveLike runs Client.SaveLike on the Default client.
func SaveLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).SaveLike)
}

// UpdateLike runs Client.UpdateLike on the Default client.
func UpdateLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).UpdateLike)
}

// RemoveLike runs Client.RemoveLike on the Default client.
func RemoveLike(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).RemoveLike)
}

// ResetLikes runs Client.ResetLikes on the Default client.
func ResetLikes(ctx context.Context, params Params) (*HTTPResponse, error) {
	return withDefault(ctx, params, (*Client).ResetLikes)
}
