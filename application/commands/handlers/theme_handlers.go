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

// ThemeHandler handles all theme commands. Themes carry nested sections, so
// the operations share enough lookup code that one handler per command would
// be mostly duplication.
type ThemeHandler struct {
	store  ports.DocumentStore
	corpus *corpus.Corpus
	logger *zap.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(store ports.DocumentStore, c *corpus.Corpus, logger *zap.Logger) *ThemeHandler {
	return &ThemeHandler{store: store, corpus: c, logger: logger}
}

// HandleCreate executes the create theme command
func (h *ThemeHandler) HandleCreate(ctx context.Context, cmd commands.CreateThemeCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Themes[cmd.ThemeID]; exists {
			return apperrors.NewConflictError(fmt.Sprintf("theme %s already exists", cmd.ThemeID))
		}
		now := utils.NowRFC3339()
		doc.Themes[cmd.ThemeID] = userdata.Theme{
			ID:        cmd.ThemeID,
			Name:      cmd.Name,
			Color:     cmd.Color,
			Sections:  []userdata.Section{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		return nil
	})
}

// HandleUpdate executes the update theme command
func (h *ThemeHandler) HandleUpdate(ctx context.Context, cmd commands.UpdateThemeCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.mutateTheme(cmd.ThemeID, func(theme *userdata.Theme) error {
		if cmd.Name != nil {
			theme.Name = *cmd.Name
		}
		if cmd.Color != nil {
			theme.Color = *cmd.Color
		}
		return nil
	})
}

// HandleDelete executes the delete theme command
func (h *ThemeHandler) HandleDelete(ctx context.Context, cmd commands.DeleteThemeCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.store.Update(func(doc *userdata.Document) error {
		if _, exists := doc.Themes[cmd.ThemeID]; !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("theme %s", cmd.ThemeID))
		}
		delete(doc.Themes, cmd.ThemeID)
		return nil
	})
}

// HandleAddSection executes the add section command
func (h *ThemeHandler) HandleAddSection(ctx context.Context, cmd commands.AddSectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.mutateTheme(cmd.ThemeID, func(theme *userdata.Theme) error {
		for _, s := range theme.Sections {
			if s.ID == cmd.SectionID {
				return apperrors.NewConflictError(fmt.Sprintf("section %s already exists", cmd.SectionID))
			}
		}
		theme.Sections = append(theme.Sections, userdata.Section{
			ID:         cmd.SectionID,
			Name:       cmd.Name,
			ArticleIDs: []string{},
		})
		return nil
	})
}

// HandleRemoveSection executes the remove section command
func (h *ThemeHandler) HandleRemoveSection(ctx context.Context, cmd commands.RemoveSectionCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.mutateTheme(cmd.ThemeID, func(theme *userdata.Theme) error {
		for i, s := range theme.Sections {
			if s.ID == cmd.SectionID {
				theme.Sections = append(theme.Sections[:i], theme.Sections[i+1:]...)
				return nil
			}
		}
		return apperrors.NewNotFoundError(fmt.Sprintf("section %s", cmd.SectionID))
	})
}

// HandleAssignArticle executes the assign article command
func (h *ThemeHandler) HandleAssignArticle(ctx context.Context, cmd commands.AssignArticleCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	if _, ok := h.corpus.ArticleByID(cmd.ArticleID); !ok {
		return apperrors.NewValidationError(fmt.Sprintf("unknown article %s", cmd.ArticleID))
	}

	return h.mutateTheme(cmd.ThemeID, func(theme *userdata.Theme) error {
		if !theme.AssignArticle(cmd.SectionID, cmd.ArticleID) {
			return apperrors.NewNotFoundError(fmt.Sprintf("section %s", cmd.SectionID))
		}
		return nil
	})
}

// HandleRemoveArticle executes the remove article command
func (h *ThemeHandler) HandleRemoveArticle(ctx context.Context, cmd commands.RemoveArticleCommand) error {
	if err := cmd.Validate(); err != nil {
		return fmt.Errorf("invalid command: %w", err)
	}

	return h.mutateTheme(cmd.ThemeID, func(theme *userdata.Theme) error {
		if !theme.RemoveArticle(cmd.ArticleID) {
			return apperrors.NewNotFoundError(fmt.Sprintf("article %s in theme %s", cmd.ArticleID, cmd.ThemeID))
		}
		return nil
	})
}

// mutateTheme looks up the theme, applies fn to a working copy and stamps
// updatedAt before writing it back.
func (h *ThemeHandler) mutateTheme(themeID string, fn func(theme *userdata.Theme) error) error {
	return h.store.Update(func(doc *userdata.Document) error {
		theme, exists := doc.Themes[themeID]
		if !exists {
			return apperrors.NewNotFoundError(fmt.Sprintf("theme %s", themeID))
		}
		if err := fn(&theme); err != nil {
			return err
		}
		theme.UpdatedAt = utils.NowRFC3339()
		doc.Themes[themeID] = theme
		return nil
	})
}
