package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/ports"
	"lawmap/domain/corpus"
	"lawmap/domain/userdata"
	apperrors "lawmap/pkg/errors"
	"lawmap/pkg/utils"
)

// CreateNoteHandler handles note creation commands
type CreateNoteHandler struct {
	store  ports.DocumentStore
	corpus *corpus.Corpus
	logger *zap.Logger
}

// NewCreateNoteHandler creates a new create note handler
func NewCreateNoteHandler(store ports.DocumentStore, c *corpus.Corpus, logger *zap.Logger) *CreateNoteHandler {
	return &CreateNoteHandler{store: store, corpus: c, logger: logger}
}

// Handle executes the create note command
func (h *CreateNoteHandler) Handle(ctx context.Context, cmd commands.CreateNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	if _, ok := h.corpus.ArticleByID(cmd.ArticleID); !ok {
		return apperrors.NewValidationError(fmt.Sprintf("unknown article %s", cmd.ArticleID))
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Notes[cmd.NoteID]; exists {
			return apperrors.NewConflictError(fmt.Sprintf("note %s already exists", cmd.NoteID))
		}
		now := utils.NowRFC3339()
		doc.Notes[cmd.NoteID] = userdata.Note{
			ID:        cmd.NoteID,
			ArticleID: cmd.ArticleID,
			Content:   cmd.Content,
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
}

// UpdateNoteHandler handles note update commands
type UpdateNoteHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewUpdateNoteHandler creates a new update note handler
func NewUpdateNoteHandler(store ports.DocumentStore, logger *zap.Logger) *UpdateNoteHandler {
	return &UpdateNoteHandler{store: store, logger: logger}
}

// Handle executes the update note command
func (h *UpdateNoteHandler) Handle(ctx context.Context, cmd commands.UpdateNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		note, exists := doc.Notes[cmd.NoteID]
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("note %s", cmd.NoteID))
		}
		note.Content = cmd.Content
		note.UpdatedAt = utils.NowRFC3339()
		doc.Notes[cmd.NoteID] = note
		return nil
	})
}

// DeleteNoteHandler handles note deletion commands
type DeleteNoteHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewDeleteNoteHandler creates a new delete note handler
func NewDeleteNoteHandler(store ports.DocumentStore, logger *zap.Logger) *DeleteNoteHandler {
	return &DeleteNoteHandler{store: store, logger: logger}
}

// Handle executes the delete note command
func (h *DeleteNoteHandler) Handle(ctx context.Context, cmd commands.DeleteNoteCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Notes[cmd.NoteID]; !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("note %s", cmd.NoteID))
		}
		delete(doc.Notes, cmd.NoteID)
		return nil
	})
}
