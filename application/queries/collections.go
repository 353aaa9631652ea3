package queries

import "lawmap/domain/userdata"

// ListRegulationsQuery lists company regulations, optionally filtered by
// category, together with the links targeting each one.
type ListRegulationsQuery struct {
	Category string `json:"category,omitempty"`
}

// Validate validates the query
func (q ListRegulationsQuery) Validate() error {
	return nil
}

// RegulationView is a regulation plus the links pointing at it
type RegulationView struct {
	userdata.Regulation
	Links []userdata.Link `json:"links"`
}

// ListRegulationsResult holds the regulation list
type ListRegulationsResult struct {
	Regulations []RegulationView `json:"regulations"`
	Total       int              `json:"total"`
}

// ListLinksQuery lists links, optionally restricted to one source article
type ListLinksQuery struct {
	ArticleID string `json:"articleId,omitempty"`
}

// Validate validates the query
func (q ListLinksQuery) Validate() error {
	return nil
}

// ListLinksResult holds the link list
type ListLinksResult struct {
	Links []userdata.Link `json:"links"`
	Total int             `json:"total"`
}

// ListNotesQuery lists notes, optionally restricted to one article
type ListNotesQuery struct {
	ArticleID string `json:"articleId,omitempty"`
}

// Validate validates the query
func (q ListNotesQuery) Validate() error {
	return nil
}

// ListNotesResult holds the note list
type ListNotesResult struct {
	Notes []userdata.Note `json:"notes"`
	Total int             `json:"total"`
}

// ListThemesQuery lists all study themes with their sections
type ListThemesQuery struct{}

// Validate validates the query
func (q ListThemesQuery) Validate() error {
	return nil
}

// ListThemesResult holds the theme list
type ListThemesResult struct {
	Themes []userdata.Theme `json:"themes"`
	Total  int              `json:"total"`
}
