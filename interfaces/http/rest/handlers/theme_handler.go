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

// ThemeHandler handles study theme HTTP requests
type ThemeHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{commandBus: commandBus, queryBus: queryBus, logger: logger}
}

// CreateThemeRequest represents the request body for creating a theme
type CreateThemeRequest struct {
	Name  string `json:"name" validate:"required,max=200"`
	Color string `json:"color" validate:"max=50"`
}

// UpdateThemeRequest represents the request body for updating a theme
type UpdateThemeRequest struct {
	Name  *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Color *string `json:"color,omitempty" validate:"omitempty,max=50"`
}

// AddSectionRequest represents the request body for adding a section
type AddSectionRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// AssignArticleRequest represents the request body for assigning an article
type AssignArticleRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
}

// CreateTheme handles POST /themes
func (h *ThemeHandler) CreateTheme(w http.ResponseWriter, r *http.Request) {
	var req CreateThemeRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.CreateThemeCommand{
		ThemeID: uuid.New().String(),
		Name:    req.Name,
		Color:   req.Color,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": cmd.ThemeID})
}

// ListThemes handles GET /themes
func (h *ThemeHandler) ListThemes(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListThemesQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateTheme handles PUT /themes/{themeID}
func (h *ThemeHandler) UpdateTheme(w http.ResponseWriter, r *http.Request) {
	var req UpdateThemeRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateThemeCommand{
		ThemeID: chi.URLParam(r, "themeID"),
		Name:    req.Name,
		Color:   req.Color,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.ThemeID})
}

// DeleteTheme handles DELETE /themes/{themeID}
func (h *ThemeHandler) DeleteTheme(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteThemeCommand{
		ThemeID: chi.URLParam(r, "themeID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddSection handles POST /themes/{themeID}/sections
func (h *ThemeHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	var req AddSectionRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.AddSectionCommand{
		ThemeID:   chi.URLParam(r, "themeID"),
		SectionID: uuid.New().String(),
		Name:      req.Name,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": cmd.SectionID})
}

// RemoveSection handles DELETE /themes/{themeID}/sections/{sectionID}
func (h *ThemeHandler) RemoveSection(w http.ResponseWriter, r *http.Request) {
	cmd := commands.RemoveSectionCommand{
		ThemeID:   chi.URLParam(r, "themeID"),
		SectionID: chi.URLParam(r, "sectionID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AssignArticle handles PUT /themes/{themeID}/sections/{sectionID}/articles
func (h *ThemeHandler) AssignArticle(w http.ResponseWriter, r *http.Request) {
	var req AssignArticleRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.AssignArticleCommand{
		ThemeID:   chi.URLParam(r, "themeID"),
		SectionID: chi.URLParam(r, "sectionID"),
		ArticleID: req.ArticleID,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"articleId": cmd.ArticleID})
}

// RemoveArticle handles DELETE /themes/{themeID}/articles/{articleID}
func (h *ThemeHandler) RemoveArticle(w http.ResponseWriter, r *http.Request) {
	cmd := commands.RemoveArticleCommand{
		ThemeID:   chi.URLParam(r, "themeID"),
		ArticleID: chi.URLParam(r, "articleID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
