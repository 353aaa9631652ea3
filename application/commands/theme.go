package commands

import apperrors "lawmap/pkg/errors"

// CreateThemeCommand creates a study theme, an ordered set of named sections
// that group law articles for exam preparation.
type CreateThemeCommand struct {
	ThemeID string `json:"themeId" validate:"required"`
	Name    string `json:"name" validate:"required,max=200"`
	Color   string `json:"color" validate:"max=50"`
}

// Validate validates the command
func (cmd CreateThemeCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	if cmd.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	return nil
}

// UpdateThemeCommand merges partial fields into an existing theme
type UpdateThemeCommand struct {
	ThemeID string  `json:"themeId" validate:"required"`
	Name    *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Color   *string `json:"color,omitempty" validate:"omitempty,max=50"`
}

// Validate validates the command
func (cmd UpdateThemeCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	return nil
}

// DeleteThemeCommand removes a theme and all of its sections
type DeleteThemeCommand struct {
	ThemeID string `json:"themeId" validate:"required"`
}

// Validate validates the command
func (cmd DeleteThemeCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	return nil
}

// AddSectionCommand appends a named section to a theme
type AddSectionCommand struct {
	ThemeID   string `json:"themeId" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
	Name      string `json:"name" validate:"required,max=200"`
}

// Validate validates the command
func (cmd AddSectionCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	if cmd.SectionID == "" {
		return apperrors.NewValidationError("section id is required")
	}
	if cmd.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	return nil
}

// RemoveSectionCommand removes a section from a theme
type RemoveSectionCommand struct {
	ThemeID   string `json:"themeId" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
}

// Validate validates the command
func (cmd RemoveSectionCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	if cmd.SectionID == "" {
		return apperrors.NewValidationError("section id is required")
	}
	return nil
}

// AssignArticleCommand places an article into a section of a theme. Within a
// theme an article lives in at most one section, so assigning an article that
// already sits in another section moves it.
type AssignArticleCommand struct {
	ThemeID   string `json:"themeId" validate:"required"`
	SectionID string `json:"sectionId" validate:"required"`
	ArticleID string `json:"articleId" validate:"required"`
}

// Validate validates the command
func (cmd AssignArticleCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	if cmd.SectionID == "" {
		return apperrors.NewValidationError("section id is required")
	}
	if cmd.ArticleID == "" {
		return apperrors.NewValidationError("article id is required")
	}
	return nil
}

// RemoveArticleCommand removes an article from a theme, whichever section it
// currently sits in.
type RemoveArticleCommand struct {
	ThemeID   string `json:"themeId" validate:"required"`
	ArticleID string `json:"articleId" validate:"required"`
}

// Validate validates the command
func (cmd RemoveArticleCommand) Validate() error {
	if cmd.ThemeID == "" {
		return apperrors.NewValidationError("theme id is required")
	}
	if cmd.ArticleID == "" {
		return apperrors.NewValidationError("article id is required")
	}
	return nil
}
