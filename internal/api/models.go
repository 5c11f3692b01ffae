package api

import (
	"time"

	"github.com/slidegen/slidegen-api/internal/domain"
)

// GeneratePresentationRequest represents the request body for generating a
// new presentation from a source URL.
type GeneratePresentationRequest struct {
	SourceURL  string `json:"source_url"  validate:"required,url"`
	Title      string `json:"title"       validate:"required,min=1,max=200"`
	ClientName string `json:"client_name" validate:"omitempty,max=200"`
	Theme      string `json:"theme"       validate:"required,oneof=executive minimal tech"`
	Mode       string `json:"mode"        validate:"omitempty,oneof=short extended"`
}

// UpdatePresentationRequest represents the request body for updating an
// existing presentation. All fields are optional; omitted fields keep their
// stored values.
type UpdatePresentationRequest struct {
	Title      string         `json:"title"       validate:"omitempty,min=1,max=200"`
	ClientName string         `json:"client_name" validate:"omitempty,max=200"`
	Theme      string         `json:"theme"       validate:"omitempty,oneof=executive minimal tech"`
	Slides     []domain.Slide `json:"slides"      validate:"omitempty,min=3"`
}

// PresentationResponse represents the response data for a presentation.
type PresentationResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	ClientName string         `json:"client_name,omitempty"`
	SourceURL  string         `json:"source_url"`
	Theme      string         `json:"theme"`
	Slides     []domain.Slide `json:"slides"`
	ShareToken string         `json:"share_token,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// SharedPresentationResponse is the public view of a presentation returned
// by the share-token route. It omits the share token itself.
type SharedPresentationResponse struct {
	Title      string         `json:"title"`
	ClientName string         `json:"client_name,omitempty"`
	Theme      string         `json:"theme"`
	Slides     []domain.Slide `json:"slides"`
}

// ListPresentationsResponse wraps a page of presentations with pagination
// metadata.
type ListPresentationsResponse struct {
	Presentations []PresentationResponse `json:"presentations"`
	Total         int                    `json:"total"`
	Limit         int                    `json:"limit"`
	Offset        int                    `json:"offset"`
}

// presentationToResponse converts a domain.Presentation to a PresentationResponse.
func presentationToResponse(p *domain.Presentation) PresentationResponse {
	return PresentationResponse{
		ID:         p.ID.String(),
		Title:      p.Title,
		ClientName: p.ClientName,
		SourceURL:  p.SourceURL,
		Theme:      string(p.Theme),
		Slides:     p.Slides,
		ShareToken: p.ShareToken,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// presentationToSharedResponse converts a domain.Presentation to its public
// shared view.
func presentationToSharedResponse(p *domain.Presentation) SharedPresentationResponse {
	return SharedPresentationResponse{
		Title:      p.Title,
		ClientName: p.ClientName,
		Theme:      string(p.Theme),
		Slides:     p.Slides,
	}
}
