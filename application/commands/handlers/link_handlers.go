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

// CreateLinkHandler handles link creation commands
type CreateLinkHandler struct {
	store  ports.DocumentStore
	corpus *corpus.Corpus
	logger *zap.Logger
}

// NewCreateLinkHandler creates a new create link handler
func NewCreateLinkHandler(store ports.DocumentStore, c *corpus.Corpus, logger *zap.Logger) *CreateLinkHandler {
	return &CreateLinkHandler{store: store, corpus: c, logger: logger}
}

// Handle executes the create link command. The source must be a known law
// article and the target an existing regulation.
func (h *CreateLinkHandler) Handle(ctx context.Context, cmd commands.CreateLinkCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	if _, ok := h.corpus.ArticleByID(cmd.SourceArticleID); !ok {
		return apperrors.NewValidationError(fmt.Sprintf("unknown article %s", cmd.SourceArticleID))
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Links[cmd.LinkID]; exists {
			return apperrors.NewConflictError(fmt.Sprintf("link %s already exists", cmd.LinkID))
		}
		if _, exists := doc.Regulations[cmd.TargetRegulationID]; !exists {
			return apperrors.NewValidationError(fmt.Sprintf("unknown regulation %s", cmd.TargetRegulationID))
		}
		now := utils.NowRFC3339()
		doc.Links[cmd.LinkID] = userdata.Link{
			ID:                 cmd.LinkID,
			SourceArticleID:    cmd.SourceArticleID,
			HighlightedText:    cmd.HighlightedText,
			TargetRegulationID: cmd.TargetRegulationID,
			Note:               cmd.Note,
			CreatedAt:          now,
			UpdatedAt:          now,
		}
		return nil
	})
}

// UpdateLinkHandler handles link update commands
type UpdateLinkHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewUpdateLinkHandler creates a new update link handler
func NewUpdateLinkHandler(store ports.DocumentStore, logger *zap.Logger) *UpdateLinkHandler {
	return &UpdateLinkHandler{store: store, logger: logger}
}

// Handle executes the update link command
func (h *UpdateLinkHandler) Handle(ctx context.Context, cmd commands.UpdateLinkCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		link, exists := doc.Links[cmd.LinkID]
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("link %s", cmd.LinkID))
		}
		if cmd.TargetRegulationID != nil {
			if _, ok := doc.Regulations[*cmd.TargetRegulationID]; !ok {
				return apperrors.NewValidationError(fmt.Sprintf("unknown regulation %s", *cmd.TargetRegulationID))
			}
			link.TargetRegulationID = *cmd.TargetRegulationID
		}
		if cmd.HighlightedText != nil {
			link.HighlightedText = *cmd.HighlightedText
		}
		if cmd.Note != nil {
			link.Note = *cmd.Note
		}
		link.UpdatedAt = utils.NowRFC3339()
		doc.Links[cmd.LinkID] = link
		return nil
	})
}

// DeleteLinkHandler handles link deletion commands
type DeleteLinkHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewDeleteLinkHandler creates a new delete link handler
func NewDeleteLinkHandler(store ports.DocumentStore, logger *zap.Logger) *DeleteLinkHandler {
	return &DeleteLinkHandler{store: store, logger: logger}
}

// Handle executes the delete link command
func (h *DeleteLinkHandler) Handle(ctx context.Context, cmd commands.DeleteLinkCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Links[cmd.LinkID]; !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("link %s", cmd.LinkID))
		}
		delete(doc.Links, cmd.LinkID)
		return nil
	})
}
