package handlers

import (
	"context"

	"lawmap/application/ports"
	"lawmap/application/queries"
	"lawmap/domain/userdata"
)

// ListRegulationsHandler handles regulation listing queries
type ListRegulationsHandler struct {
	store ports.DocumentStore
}

// NewListRegulationsHandler creates a new list regulations handler
func NewListRegulationsHandler(store ports.DocumentStore) *ListRegulationsHandler {
	return &ListRegulationsHandler{store: store}
}

// Handle executes the list regulations query
func (h *ListRegulationsHandler) Handle(ctx context.Context, query queries.ListRegulationsQuery) (*queries.ListRegulationsResult, error) {
	doc := h.store.View()
	byRegulation := doc.LinksByRegulation()

	out := make([]queries.RegulationView, 0, len(doc.Regulations))
	for _, reg := range doc.SortedRegulations() {
		if query.Category != "" && reg.Category != query.Category {
			continue
		}
		links := byRegulation[reg.ID]
		if links == nil {
			links = []userdata.Link{}
		}
		out = append(out, queries.RegulationView{Regulation: reg, Links: links})
	}
	return &queries.ListRegulationsResult{Regulations: out, Total: len(out)}, nil
}

// ListLinksHandler handles link listing queries
type ListLinksHandler struct {
	store ports.DocumentStore
}

// NewListLinksHandler creates a new list links handler
func NewListLinksHandler(store ports.DocumentStore) *ListLinksHandler {
	return &ListLinksHandler{store: store}
}

// Handle executes the list links query
func (h *ListLinksHandler) Handle(ctx context.Context, query queries.ListLinksQuery) (*queries.ListLinksResult, error) {
	doc := h.store.View()

	var links []userdata.Link
	if query.ArticleID != "" {
		links = doc.LinksForArticle(query.ArticleID)
	} else {
		links = doc.SortedLinks()
	}
	if links == nil {
		links = []userdata.Link{}
	}
	return &queries.ListLinksResult{Links: links, Total: len(links)}, nil
}

// ListNotesHandler handles note listing queries
type ListNotesHandler struct {
	store ports.DocumentStore
}

// NewListNotesHandler creates a new list notes handler
func NewListNotesHandler(store ports.DocumentStore) *ListNotesHandler {
	return &ListNotesHandler{store: store}
}

// Handle executes the list notes query
func (h *ListNotesHandler) Handle(ctx context.Context, query queries.ListNotesQuery) (*queries.ListNotesResult, error) {
	doc := h.store.View()

	var notes []userdata.Note
	if query.ArticleID != "" {
		notes = doc.NotesForArticle(query.ArticleID)
	} else {
		notes = doc.SortedNotes()
	}
	return &queries.ListNotesResult{Notes: notes, Total: len(notes)}, nil
}

// ListThemesHandler handles theme listing queries
type ListThemesHandler struct {
	store ports.DocumentStore
}

// NewListThemesHandler creates a new list themes handler
func NewListThemesHandler(store ports.DocumentStore) *ListThemesHandler {
	return &ListThemesHandler{store: store}
}

// Handle executes the list themes query
func (h *ListThemesHandler) Handle(ctx context.Context, query queries.ListThemesQuery) (*queries.ListThemesResult, error) {
	themes := h.store.View().SortedThemes()
	return &queries.ListThemesResult{Themes: themes, Total: len(themes)}, nil
}
