package handlers

import (
	"context"

	"lawmap/application/ports"
	"lawmap/application/queries"
	"lawmap/domain/corpus"
)

// GetStatsHandler handles workspace statistics queries
type GetStatsHandler struct {
	corpus *corpus.Corpus
	store  ports.DocumentStore
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(c *corpus.Corpus, store ports.DocumentStore) *GetStatsHandler {
	return &GetStatsHandler{corpus: c, store: store}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(ctx context.Context, query queries.GetStatsQuery) (*queries.GetStatsResult, error) {
	doc := h.store.View()

	linksByCategory := make(map[string]int)
	for _, link := range doc.Links {
		if article, ok := h.corpus.ArticleByID(link.SourceArticleID); ok {
			linksByCategory[article.CategoryID]++
		}
	}

	regsByGroup := make(map[string]int)
	for _, reg := range doc.Regulations {
		regsByGroup[reg.Category]++
	}

	return &queries.GetStatsResult{
		Articles:           len(h.corpus.Articles()),
		Categories:         len(h.corpus.Categories()),
		Regulations:        len(doc.Regulations),
		Links:              len(doc.Links),
		Notes:              len(doc.Notes),
		Themes:             len(doc.Themes),
		ArticlesWithLinks:  len(doc.LinkCountByArticle()),
		ArticlesWithNotes:  len(doc.NoteCountByArticle()),
		LinksByCategory:    linksByCategory,
		RegulationsByGroup: regsByGroup,
	}, nil
}
