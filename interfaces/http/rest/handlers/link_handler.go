package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/commands/bus"
	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	"lawmap/pkg/common"
	"lawmap/pkg/utils"
)

// LinkHandler handles article-to-regulation link HTTP requests
type LinkHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *LinkHandler {
	return &LinkHandler{commandBus: commandBus, queryBus: queryBus, logger: logger}
}

// CreateLinkRequest represents the request body for creating a link
type CreateLinkRequest struct {
	SourceArticleID    string `json:"sourceArticleId" validate:"required"`
	HighlightedText    string `json:"highlightedText" validate:"max=2000"`
	TargetRegulationID string `json:"targetRegulationId" validate:"required"`
	Note               string `json:"note" validate:"max=5000"`
}

// UpdateLinkRequest represents the request body for updating a link
type UpdateLinkRequest struct {
	HighlightedText    *string `json:"highlightedText,omitempty" validate:"omitempty,max=2000"`
	TargetRegulationID *string `json:"targetRegulationId,omitempty" validate:"omitempty,min=1"`
	Note               *string `json:"note,omitempty" validate:"omitempty,max=5000"`
}

// CreateLink handles POST /links
func (h *LinkHandler) CreateLink(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.CreateLinkCommand{
		LinkID:             uuid.New().String(),
		SourceArticleID:    req.SourceArticleID,
		HighlightedText:    req.HighlightedText,
		TargetRegulationID: req.TargetRegulationID,
		Note:               req.Note,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": cmd.LinkID})
}

// ListLinks handles GET /links with an optional article filter
func (h *LinkHandler) ListLinks(w http.ResponseWriter, r *http.Request) {
	query := queries.ListLinksQuery{
		ArticleID: r.URL.Query().Get("article"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateLink handles PUT /links/{linkID}
func (h *LinkHandler) UpdateLink(w http.ResponseWriter, r *http.Request) {
	var req UpdateLinkRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateLinkCommand{
		LinkID:             chi.URLParam(r, "linkID"),
		HighlightedText:    req.HighlightedText,
		TargetRegulationID: req.TargetRegulationID,
		Note:               req.Note,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.LinkID})
}

// DeleteLink handles DELETE /links/{linkID}
func (h *LinkHandler) DeleteLink(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteLinkCommand{
		LinkID: chi.URLParam(r, "linkID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
