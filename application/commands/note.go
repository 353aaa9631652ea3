package commands

import apperrors "lawmap/pkg/errors"

// CreateNoteCommand attaches a personal study note to a law article
type CreateNoteCommand struct {
	NoteID    string `json:"noteId" validate:"required"`
	ArticleID string `json:"articleId" validate:"required"`
	Content   string `json:"content" validate:"required,max=10000"`
}

// Validate validates the command
func (cmd CreateNoteCommand) Validate() error {
	if cmd.NoteID == "" {
		return apperrors.NewValidationError("note id is required")
	}
	if cmd.ArticleID == "" {
		return apperrors.NewValidationError("article id is required")
	}
	if cmd.Content == "" {
		return apperrors.NewValidationError("content is required")
	}
	return nil
}

// UpdateNoteCommand replaces the content of an existing note
type UpdateNoteCommand struct {
	NoteID  string `json:"noteId" validate:"required"`
	Content string `json:"content" validate:"required,max=10000"`
}

// Validate validates the command
func (cmd UpdateNoteCommand) Validate() error {
	if cmd.NoteID == "" {
		return apperrors.NewValidationError("note id is required")
	}
	if cmd.Content == "" {
		return apperrors.NewValidationError("content is required")
	}
	return nil
}

// DeleteNoteCommand removes a note
type DeleteNoteCommand struct {
	NoteID string `json:"noteId" validate:"required"`
}

// Validate validates the command
func (cmd DeleteNoteCommand) Validate() error {
	if cmd.NoteID == "" {
		return apperrors.NewValidationError("note id is required")
	}
	return nil
}
