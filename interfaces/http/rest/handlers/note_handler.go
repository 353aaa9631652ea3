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

// NoteHandler handles study note HTTP requests
type NoteHandler struct {
	commandBus *bus.CommandBus
	queryBus   *querybus.QueryBus
	logger     *zap.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(commandBus *bus.CommandBus, queryBus *querybus.QueryBus, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{commandBus: commandBus, queryBus: queryBus, logger: logger}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	ArticleID string `json:"articleId" validate:"required"`
	Content   string `json:"content" validate:"required,max=10000"`
}

// UpdateNoteRequest represents the request body for updating a note
type UpdateNoteRequest struct {
	Content string `json:"content" validate:"required,max=10000"`
}

// CreateNote handles POST /notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.CreateNoteCommand{
		NoteID:    uuid.New().String(),
		ArticleID: req.ArticleID,
		Content:   req.Content,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, map[string]string{"id": cmd.NoteID})
}

// ListNotes handles GET /notes with an optional article filter
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	query := queries.ListNotesQuery{
		ArticleID: r.URL.Query().Get("article"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// UpdateNote handles PUT /notes/{noteID}
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	var req UpdateNoteRequest
	if err := common.ParseJSONBody(r, &req, maxBodyBytes); err != nil {
		common.RespondAppError(w, err)
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondAppError(w, err)
		return
	}

	cmd := commands.UpdateNoteCommand{
		NoteID:  chi.URLParam(r, "noteID"),
		Content: req.Content,
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"id": cmd.NoteID})
}

// DeleteNote handles DELETE /notes/{noteID}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	cmd := commands.DeleteNoteCommand{
		NoteID: chi.URLParam(r, "noteID"),
	}

	if err := h.commandBus.Send(r.Context(), cmd); err != nil {
		common.RespondAppError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
