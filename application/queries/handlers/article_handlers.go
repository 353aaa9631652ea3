package handlers

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"lawmap/application/ports"
	"lawmap/application/queries"
	"lawmap/domain/corpus"
	apperrors "lawmap/pkg/errors"
)

// ListCategoriesHandler handles category listing queries
type ListCategoriesHandler struct {
	corpus *corpus.Corpus
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(c *corpus.Corpus) *ListCategoriesHandler {
	return &ListCategoriesHandler{corpus: c}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, query queries.ListCategoriesQuery) (*queries.ListCategoriesResult, error) {
	cats := h.corpus.Categories()
	out := make([]queries.CategorySummary, 0, len(cats))
	for _, c := range cats {
		out = append(out, queries.CategorySummary{
			Category:     c,
			ArticleCount: len(c.Articles),
		})
	}
	return &queries.ListCategoriesResult{Categories: out}, nil
}

// ListArticlesHandler handles article listing and search queries
type ListArticlesHandler struct {
	corpus *corpus.Corpus
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewListArticlesHandler creates a new list articles handler
func NewListArticlesHandler(c *corpus.Corpus, store ports.DocumentStore, logger *zap.Logger) *ListArticlesHandler {
	return &ListArticlesHandler{corpus: c, store: store, logger: logger}
}

// Handle executes the list articles query
func (h *ListArticlesHandler) Handle(ctx context.Context, query queries.ListArticlesQuery) (*queries.ListArticlesResult, error) {
	if query.CategoryID != "" {
		if _, ok := h.corpus.CategoryByID(query.CategoryID); !ok {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("category %s", query.CategoryID))
		}
	}

	articles := h.corpus.Filter(query.CategoryID, query.Search)

	doc := h.store.View()
	linkCounts := doc.LinkCountByArticle()
	noteCounts := doc.NoteCountByArticle()

	out := make([]queries.ArticleSummary, 0, len(articles))
	for _, a := range articles {
		out = append(out, queries.ArticleSummary{
			Article:   a,
			LinkCount: linkCounts[a.ID],
			NoteCount: noteCounts[a.ID],
		})
	}
	return &queries.ListArticlesResult{Articles: out, Total: len(out)}, nil
}

// GetArticleHandler handles single-article detail queries
type GetArticleHandler struct {
	corpus *corpus.Corpus
	store  ports.DocumentStore
	logger *zap.Logger
}

// NewGetArticleHandler creates a new get article handler
func NewGetArticleHandler(c *corpus.Corpus, store ports.DocumentStore, logger *zap.Logger) *GetArticleHandler {
	return &GetArticleHandler{corpus: c, store: store, logger: logger}
}

// Handle executes the get article query. Link targets that no longer resolve
// to a regulation come back flagged as missing rather than being dropped, so
// the caller can show a placeholder.
func (h *GetArticleHandler) Handle(ctx context.Context, query queries.GetArticleQuery) (*queries.GetArticleResult, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	article, ok := h.corpus.ArticleByID(query.ArticleID)
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("article %s", query.ArticleID))
	}

	doc := h.store.View()
	links := doc.LinksForArticle(query.ArticleID)

	regs := make([]queries.LinkedRegulation, 0, len(links))
	seen := make(map[string]bool)
	for _, link := range links {
		if seen[link.TargetRegulationID] {
			continue
		}
		seen[link.TargetRegulationID] = true
		if reg, exists := doc.Regulations[link.TargetRegulationID]; exists {
			regs = append(regs, queries.LinkedRegulation{
				ID:              reg.ID,
				Category:        reg.Category,
				ReferenceNumber: reg.ReferenceNumber,
				Title:           reg.Title,
			})
		} else {
			regs = append(regs, queries.LinkedRegulation{
				ID:      link.TargetRegulationID,
				Missing: true,
			})
		}
	}

	var memberships []queries.ThemeMembership
	for _, theme := range doc.SortedThemes() {
		for _, sec := range theme.Sections {
			for _, id := range sec.ArticleIDs {
				if id == query.ArticleID {
					memberships = append(memberships, queries.ThemeMembership{
						ThemeID:     theme.ID,
						ThemeName:   theme.Name,
						Color:       theme.Color,
						SectionID:   sec.ID,
						SectionName: sec.Name,
					})
				}
			}
		}
	}

	return &queries.GetArticleResult{
		Article:           article,
		Related:           h.corpus.Related(query.ArticleID),
		Links:             links,
		Notes:             doc.NotesForArticle(query.ArticleID),
		LinkedRegulations: regs,
		Themes:            memberships,
	}, nil
}
