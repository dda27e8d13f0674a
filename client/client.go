// Package client is the Go SDK for opal-server. It wraps the HTTP API in
// typed calls and adds the data-fetch primitives dashboard clients need:
// a stale-while-revalidate query cache and a debounced search helper.
package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"resty.dev/v3"
)

// TokenProvider supplies the bearer token attached to every request.
type TokenProvider func(ctx context.Context) (string, error)

// Result pairs the HTTP status with the decoded payload. Endpoints that
// signal "empty" with 404 still decode their (empty) payload, so callers
// branch on Status instead of treating 404 as an error.
type Result[T any] struct {
	Status int
	Data   T
}

// Client is a typed HTTP client for the opal-server API.
type Client struct {
	http    *resty.Client
	baseURL string
	token   TokenProvider
	logger  zerolog.Logger
}

// Option customises a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRestyClient swaps the underlying resty client, mainly for tests.
func WithRestyClient(rc *resty.Client) Option {
	return func(c *Client) { c.http = rc }
}

// New constructs a Client for the given API base URL.
func New(baseURL string, token TokenProvider, opts ...Option) *Client {
	c := &Client{
		http:    resty.New(),
		baseURL: baseURL,
		token:   token,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.http.Close()
}

// UserData is the synchronized user record.
type UserData struct {
	ID        uint    `json:"id"`
	Subject   string  `json:"subject"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// WorkspaceData is a workspace in listings.
type WorkspaceData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// SyncData is the payload of the identity sync call.
type SyncData struct {
	User       UserData        `json:"user"`
	Workspaces []WorkspaceData `json:"workspaces"`
}

// SubscriptionData carries a plan.
type SubscriptionData struct {
	Plan string `json:"plan"`
}

// OverviewData feeds the workspace switcher.
type OverviewData struct {
	Subscription SubscriptionData `json:"subscription"`
	Workspaces   []WorkspaceData  `json:"workspaces"`
	Memberships  []WorkspaceData  `json:"memberships"`
}

// AccessData wraps the access check outcome.
type AccessData struct {
	Workspace *WorkspaceData `json:"workspace"`
}

// FolderData is a folder with its video count.
type FolderData struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	VideoCount int64  `json:"video_count"`
	CreatedAt  int64  `json:"created_at"`
}

// FolderListData is the folder listing payload.
type FolderListData struct {
	Data  []FolderData `json:"data"`
	Total int          `json:"total"`
}

// VideoFolderData is the minimal folder projection on a video.
type VideoFolderData struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// VideoOwnerData is the minimal owner projection on a video.
type VideoOwnerData struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

// VideoData is a listed video.
type VideoData struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Source     string           `json:"source"`
	Processing bool             `json:"processing"`
	Folder     *VideoFolderData `json:"folder"`
	Owner      VideoOwnerData   `json:"owner"`
	CreatedAt  int64            `json:"created_at"`
}

// VideoListData is the video listing payload.
type VideoListData struct {
	Data  []VideoData `json:"data"`
	Total int         `json:"total"`
}

// NotificationData is a single feed entry.
type NotificationData struct {
	ID        uint           `json:"id"`
	Content   string         `json:"content"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt int64          `json:"created_at"`
}

// FeedData is the notification feed payload.
type FeedData struct {
	Data  []NotificationData `json:"data"`
	Count int64              `json:"count"`
}

// ProfileData is a user search hit.
type ProfileData struct {
	ID           uint              `json:"id"`
	FirstName    *string           `json:"first_name,omitempty"`
	LastName     *string           `json:"last_name,omitempty"`
	Email        string            `json:"email"`
	AvatarURL    *string           `json:"avatar_url,omitempty"`
	Subscription *SubscriptionData `json:"subscription,omitempty"`
}

// SearchData is the user search payload.
type SearchData struct {
	Data  []ProfileData `json:"data"`
	Total int           `json:"total"`
}

// SyncUser reconciles the caller's identity with the server, provisioning
// the account on first login. Status 201 means the user was just created.
func (c *Client) SyncUser(ctx context.Context) (Result[SyncData], error) {
	return call[SyncData](ctx, c, http.MethodPost, "/v1/auth/sync", nil)
}

// Workspaces returns the caller's plan plus owned and membership workspaces.
func (c *Client) Workspaces(ctx context.Context) (Result[OverviewData], error) {
	return call[OverviewData](ctx, c, http.MethodGet, "/v1/workspaces", nil)
}

// VerifyWorkspaceAccess answers whether the caller may view a workspace.
// Data.Workspace is nil when access does not hold.
func (c *Client) VerifyWorkspaceAccess(ctx context.Context, workspaceID string) (Result[AccessData], error) {
	return call[AccessData](ctx, c, http.MethodGet, "/v1/workspaces/"+workspaceID+"/access", nil)
}

// Folders lists the folders in a workspace.
func (c *Client) Folders(ctx context.Context, workspaceID string) (Result[FolderListData], error) {
	return call[FolderListData](ctx, c, http.MethodGet, "/v1/workspaces/"+workspaceID+"/folders", nil)
}

// Videos lists videos under a workspace or folder public id.
func (c *Client) Videos(ctx context.Context, locationID string) (Result[VideoListData], error) {
	return call[VideoListData](ctx, c, http.MethodGet, "/v1/workspaces/"+locationID+"/videos", nil)
}

// Notifications returns the caller's notification feed.
func (c *Client) Notifications(ctx context.Context) (Result[FeedData], error) {
	return call[FeedData](ctx, c, http.MethodGet, "/v1/notifications", nil)
}

// SearchUsers matches users by name or email, excluding the caller.
func (c *Client) SearchUsers(ctx context.Context, query string) (Result[SearchData], error) {
	return call[SearchData](ctx, c, http.MethodGet, "/v1/users/search", map[string]string{"query": query})
}

func call[T any](ctx context.Context, c *Client, method, path string, queryParams map[string]string) (Result[T], error) {
	var payload T

	token, err := c.token(ctx)
	if err != nil {
		return Result[T]{}, fmt.Errorf("resolve token: %w", err)
	}

	req := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&payload).
		SetError(&payload)
	if len(queryParams) > 0 {
		req.SetQueryParams(queryParams)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	if err != nil {
		return Result[T]{}, fmt.Errorf("%s %s: %w", method, path, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode()).
		Msg("api request")

	return Result[T]{Status: resp.StatusCode(), Data: payload}, nil
}
