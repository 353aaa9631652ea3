package commands

import apperrors "lawmap/pkg/errors"

// CreateLinkCommand connects a highlighted passage of a law article to a
// company regulation. The source article must exist in the corpus; the
// target regulation must exist in the user document.
type CreateLinkCommand struct {
	LinkID             string `json:"linkId" validate:"required"`
	SourceArticleID    string `json:"sourceArticleId" validate:"required"`
	HighlightedText    string `json:"highlightedText" validate:"max=2000"`
	TargetRegulationID string `json:"targetRegulationId" validate:"required"`
	Note               string `json:"note" validate:"max=5000"`
}

// Validate validates the command
func (cmd CreateLinkCommand) Validate() error {
	if cmd.LinkID == "" {
		return apperrors.NewValidationError("link id is required")
	}
	if cmd.SourceArticleID == "" {
		return apperrors.NewValidationError("source article id is required")
	}
	if cmd.TargetRegulationID == "" {
		return apperrors.NewValidationError("target regulation id is required")
	}
	return nil
}

// UpdateLinkCommand merges partial fields into an existing link
type UpdateLinkCommand struct {
	LinkID             string  `json:"linkId" validate:"required"`
	HighlightedText    *string `json:"highlightedText,omitempty" validate:"omitempty,max=2000"`
	TargetRegulationID *string `json:"targetRegulationId,omitempty" validate:"omitempty,min=1"`
	Note               *string `json:"note,omitempty" validate:"omitempty,max=5000"`
}

// Validate validates the command
func (cmd UpdateLinkCommand) Validate() error {
	if cmd.LinkID == "" {
		return apperrors.NewValidationError("link id is required")
	}
	return nil
}

// DeleteLinkCommand removes a single link
type DeleteLinkCommand struct {
	LinkID string `json:"linkId" validate:"required"`
}

// Validate validates the command
func (cmd DeleteLinkCommand) Validate() error {
	if cmd.LinkID == "" {
		return apperrors.NewValidationError("link id is required")
	}
	return nil
}
