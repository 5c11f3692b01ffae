package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/slidegen/slidegen-api/internal/api/shared"
	"github.com/slidegen/slidegen-api/internal/domain"
	"github.com/slidegen/slidegen-api/internal/generation"
	"github.com/slidegen/slidegen-api/internal/service"
)

// Pagination defaults for the list endpoint.
const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// PresentationHandler handles presentation-related HTTP requests.
type PresentationHandler struct {
	presentationService *service.PresentationService
	logger              *slog.Logger
}

// NewPresentationHandler creates a new PresentationHandler.
// If logger is nil, a default logger will be used.
func NewPresentationHandler(
	presentationService *service.PresentationService,
	logger *slog.Logger,
) *PresentationHandler {
	// ALLOW-PANIC: Constructor enforces required dependency
	if presentationService == nil {
		panic("presentation service cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PresentationHandler{
		presentationService: presentationService,
		logger:              logger.With(slog.String("component", "presentation_handler")),
	}
}

// Generate handles POST /api/presentations/generate requests.
// It runs the full pipeline synchronously and returns the saved presentation.
func (h *PresentationHandler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return
	}

	var req GeneratePresentationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	mode := domain.DeckMode(req.Mode)
	if req.Mode == "" {
		mode = domain.DeckModeShort
	}

	params := generation.Params{
		SourceURL:  req.SourceURL,
		Title:      req.Title,
		ClientName: req.ClientName,
		Theme:      domain.Theme(req.Theme),
		Mode:       mode,
	}

	presentation, err := h.presentationService.GenerateAndSave(r.Context(), params, userID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, presentationToResponse(presentation))
}

// List handles GET /api/presentations requests with limit/offset pagination.
func (h *PresentationHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid offset parameter")
			return
		}
		offset = parsed
	}

	presentations, total, err := h.presentationService.List(r.Context(), limit, offset)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	items := make([]PresentationResponse, 0, len(presentations))
	for _, p := range presentations {
		items = append(items, presentationToResponse(p))
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ListPresentationsResponse{
		Presentations: items,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

// Get handles GET /api/presentations/{id} requests.
func (h *PresentationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	presentation, err := h.presentationService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, presentationToResponse(presentation))
}

// Update handles PUT /api/presentations/{id} requests.
func (h *PresentationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req UpdatePresentationRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	presentation, err := h.presentationService.Update(
		r.Context(), id, req.Title, req.ClientName, domain.Theme(req.Theme), req.Slides)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, presentationToResponse(presentation))
}

// Delete handles DELETE /api/presentations/{id} requests.
func (h *PresentationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.presentationService.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetShared handles GET /api/presentations/share/{token} requests.
// This route requires no authentication; the opaque token is the only
// credential, and the response omits the token itself.
func (h *PresentationHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Share token is required")
		return
	}

	presentation, err := h.presentationService.GetShared(r.Context(), token)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, presentationToSharedResponse(presentation))
}

// parseID extracts and parses the {id} URL parameter, writing a 400 response
// on failure.
func (h *PresentationHandler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid presentation ID")
		return uuid.Nil, false
	}
	return id, true
}
