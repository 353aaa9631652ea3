package commands

import apperrors "lawmap/pkg/errors"

// CreateRegulationCommand records a new internal company regulation. The id
// is generated by the caller so it can be returned without a round trip
// through the bus.
type CreateRegulationCommand struct {
	RegulationID    string `json:"regulationId" validate:"required"`
	Category        string `json:"category" validate:"required,max=100"`
	ReferenceNumber string `json:"referenceNumber" validate:"max=100"`
	Title           string `json:"title" validate:"required,max=200"`
	Description     string `json:"description" validate:"max=5000"`
}

// Validate validates the command
func (cmd CreateRegulationCommand) Validate() error {
	if cmd.RegulationID == "" {
		return apperrors.NewValidationError("regulation id is required")
	}
	if cmd.Category == "" {
		return apperrors.NewValidationError("category is required")
	}
	if cmd.Title == "" {
		return apperrors.NewValidationError("title is required")
	}
	return nil
}

// UpdateRegulationCommand merges partial fields into an existing regulation
type UpdateRegulationCommand struct {
	RegulationID    string  `json:"regulationId" validate:"required"`
	Category        *string `json:"category,omitempty" validate:"omitempty,min=1,max=100"`
	ReferenceNumber *string `json:"referenceNumber,omitempty" validate:"omitempty,max=100"`
	Title           *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description     *string `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// Validate validates the command
func (cmd UpdateRegulationCommand) Validate() error {
	if cmd.RegulationID == "" {
		return apperrors.NewValidationError("regulation id is required")
	}
	return nil
}

// DeleteRegulationCommand removes a regulation and, in the same transition,
// every link targeting it.
type DeleteRegulationCommand struct {
	RegulationID string `json:"regulationId" validate:"required"`
}

// Validate validates the command
func (cmd DeleteRegulationCommand) Validate() error {
	if cmd.RegulationID == "" {
		return apperrors.NewValidationError("regulation id is required")
	}
	return nil
}
