package userres

import (
	"opal-server/internal/domain/user"
	"opal-server/internal/domain/workspace"
	"opal-server/internal/interfaces/httpserver/responses/workspaceres"
)

// UserResponse represents a single synchronized user
type UserResponse struct {
	ID        uint    `json:"id"`
	Subject   string  `json:"subject"`
	Email     string  `json:"email"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
	CreatedAt int64   `json:"created_at"`
}

// SyncResponse is returned by the identity sync endpoint
type SyncResponse struct {
	User       UserResponse                   `json:"user"`
	Workspaces []workspaceres.SummaryResponse `json:"workspaces"`
}

// SubscriptionResponse carries the plan attached to a search result
type SubscriptionResponse struct {
	Plan string `json:"plan"`
}

// ProfileResponse represents a single user search hit
type ProfileResponse struct {
	ID           uint                  `json:"id"`
	FirstName    *string               `json:"first_name,omitempty"`
	LastName     *string               `json:"last_name,omitempty"`
	Email        string                `json:"email"`
	AvatarURL    *string               `json:"avatar_url,omitempty"`
	Subscription *SubscriptionResponse `json:"subscription,omitempty"`
}

// SearchResponse represents a list of user search hits
type SearchResponse struct {
	Object string            `json:"object"`
	Data   []ProfileResponse `json:"data"`
	Total  int               `json:"total"`
}

// NewUserResponse creates a response from a domain user
func NewUserResponse(usr *user.User) UserResponse {
	return UserResponse{
		ID:        usr.ID,
		Subject:   usr.Subject,
		Email:     usr.Email,
		FirstName: usr.FirstName,
		LastName:  usr.LastName,
		AvatarURL: usr.AvatarURL,
		CreatedAt: usr.CreatedAt.Unix(),
	}
}

// NewSyncResponse creates the sync payload from a domain user and the
// workspaces reachable by them
func NewSyncResponse(usr *user.User, workspaces []workspace.Summary) *SyncResponse {
	return &SyncResponse{
		User:       NewUserResponse(usr),
		Workspaces: workspaceres.NewSummaryResponses(workspaces),
	}
}

// NewSearchResponse creates a search list response from domain profiles
func NewSearchResponse(profiles []*user.Profile) *SearchResponse {
	data := make([]ProfileResponse, 0, len(profiles))
	for _, p := range profiles {
		item := ProfileResponse{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			AvatarURL: p.AvatarURL,
		}
		if p.Plan != nil {
			item.Subscription = &SubscriptionResponse{Plan: string(*p.Plan)}
		}
		data = append(data, item)
	}
	return &SearchResponse{Object: "list", Data: data, Total: len(data)}
}
