package workspaceres

import (
	"opal-server/internal/domain/workspace"
	"opal-server/internal/utils/functional"
)

// SummaryResponse represents a workspace in listings
type SummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// AccessResponse wraps the access check outcome; Workspace is null when
// the caller may not view the workspace
type AccessResponse struct {
	Workspace *SummaryResponse `json:"workspace"`
}

// OverviewResponse feeds the workspace switcher
type OverviewResponse struct {
	Subscription SubscriptionResponse `json:"subscription"`
	Workspaces   []SummaryResponse    `json:"workspaces"`
	Memberships  []SummaryResponse    `json:"memberships"`
}

// SubscriptionResponse carries the caller's plan
type SubscriptionResponse struct {
	Plan string `json:"plan"`
}

// NewSummaryResponse creates a response from a domain workspace
func NewSummaryResponse(ws *workspace.Workspace) *SummaryResponse {
	if ws == nil {
		return nil
	}
	return &SummaryResponse{
		ID:   ws.PublicID,
		Name: ws.Name,
		Type: string(ws.Type),
	}
}

// NewSummaryResponses converts domain summaries to response form
func NewSummaryResponses(summaries []workspace.Summary) []SummaryResponse {
	return functional.Map(summaries, func(s workspace.Summary) SummaryResponse {
		return SummaryResponse{ID: s.PublicID, Name: s.Name, Type: string(s.Type)}
	})
}

// NewAccessResponse wraps an access check result
func NewAccessResponse(ws *workspace.Workspace) *AccessResponse {
	return &AccessResponse{Workspace: NewSummaryResponse(ws)}
}

// NewOverviewResponse creates the switcher payload from a domain overview
func NewOverviewResponse(overview *workspace.Overview) *OverviewResponse {
	return &OverviewResponse{
		Subscription: SubscriptionResponse{Plan: string(overview.Plan)},
		Workspaces:   NewSummaryResponses(overview.Owned),
		Memberships:  NewSummaryResponses(overview.Memberships),
	}
}
