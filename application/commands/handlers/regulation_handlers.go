package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lawmap/application/commands"
	"lawmap/application/ports"
	"lawmap/domain/userdata"
	apperrors "lawmap/pkg/errors"
	"lawmap/pkg/utils"
)

// CreateRegulationHandler handles regulation creation commands
type CreateRegulationHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewCreateRegulationHandler creates a new create regulation handler
func NewCreateRegulationHandler(store ports.DocumentStore, logger *zap.Logger) *CreateRegulationHandler {
	return &CreateRegulationHandler{store: store, logger: logger}
}

// Handle executes the create regulation command
func (h *CreateRegulationHandler) Handle(ctx context.Context, cmd commands.CreateRegulationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Regulations[cmd.RegulationID]; exists {
			return apperrors.NewConflictError(fmt.Sprintf("regulation %s already exists", cmd.RegulationID))
		}
		now := utils.NowRFC3339()
		doc.Regulations[cmd.RegulationID] = userdata.Regulation{
			ID:              cmd.RegulationID,
			Category:        cmd.Category,
			ReferenceNumber: cmd.ReferenceNumber,
			Title:           cmd.Title,
			Description:     cmd.Description,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		return nil
	})
}

// UpdateRegulationHandler handles regulation update commands
type UpdateRegulationHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewUpdateRegulationHandler creates a new update regulation handler
func NewUpdateRegulationHandler(store ports.DocumentStore, logger *zap.Logger) *UpdateRegulationHandler {
	return &UpdateRegulationHandler{store: store, logger: logger}
}

// Handle executes the update regulation command
func (h *UpdateRegulationHandler) Handle(ctx context.Context, cmd commands.UpdateRegulationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		reg, exists := doc.Regulations[cmd.RegulationID]
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("regulation %s", cmd.RegulationID))
		}
		if cmd.Category != nil {
			reg.Category = *cmd.Category
		}
		if cmd.ReferenceNumber != nil {
			reg.ReferenceNumber = *cmd.ReferenceNumber
		}
		if cmd.Title != nil {
			reg.Title = *cmd.Title
		}
		if cmd.Description != nil {
			reg.Description = *cmd.Description
		}
		reg.UpdatedAt = utils.NowRFC3339()
		doc.Regulations[cmd.RegulationID] = reg
		return nil
	})
}

// DeleteRegulationHandler handles regulation deletion commands
type DeleteRegulationHandler struct {
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewDeleteRegulationHandler creates a new delete regulation handler
func NewDeleteRegulationHandler(store ports.DocumentStore, logger *zap.Logger) *DeleteRegulationHandler {
	return &DeleteRegulationHandler{store: store, logger: logger}
}

// Handle executes the delete regulation command. Links pointing at the
// regulation are removed in the same transition.
func (h *DeleteRegulationHandler) Handle(ctx context.Context, cmd commands.DeleteRegulationCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if !doc.DeleteRegulation(cmd.RegulationID) {
			return apperrors.NewNotFoundError(fmt.Sprintf("regulation %s", cmd.RegulationID))
		}
		h.logger.Info("regulation deleted",
			zap.String("regulationId", cmd.RegulationID))
		return nil
	})
}
