package queries

import (
	"lawmap/domain/corpus"
	"lawmap/domain/userdata"
	apperrors "lawmap/pkg/errors"
)

// ListArticlesQuery filters the law corpus by category and free-text search.
// Both filters are optional and combine with AND.
type ListArticlesQuery struct {
	CategoryID string `json:"categoryId,omitempty"`
	Search     string `json:"search,omitempty"`
}

// Validate validates the query
func (q ListArticlesQuery) Validate() error {
	return nil
}

// ArticleSummary is an article row enriched with per-article annotation
// counts for list rendering.
type ArticleSummary struct {
	corpus.Article
	LinkCount int `json:"linkCount"`
	NoteCount int `json:"noteCount"`
}

// ListArticlesResult holds the filtered article list
type ListArticlesResult struct {
	Articles []ArticleSummary `json:"articles"`
	Total    int              `json:"total"`
}

// GetArticleQuery fetches a single article with everything attached to it
type GetArticleQuery struct {
	ArticleID string `json:"articleId"`
}

// Validate validates the query
func (q GetArticleQuery) Validate() error {
	if q.ArticleID == "" {
		return apperrors.NewValidationError("article id is required")
	}
	return nil
}

// LinkedRegulation is a regulation reached via a link from the article. When
// the regulation was deleted after the link was made, Missing is set and only
// the id carries information.
type LinkedRegulation struct {
	ID              string `json:"id"`
	Category        string `json:"category,omitempty"`
	ReferenceNumber string `json:"referenceNumber,omitempty"`
	Title           string `json:"title,omitempty"`
	Missing         bool   `json:"missing,omitempty"`
}

// ThemeMembership names a theme and the section holding the article
type ThemeMembership struct {
	ThemeID     string `json:"themeId"`
	ThemeName   string `json:"themeName"`
	Color       string `json:"color,omitempty"`
	SectionID   string `json:"sectionId"`
	SectionName string `json:"sectionName"`
}

// GetArticleResult is the full article detail view
type GetArticleResult struct {
	Article           corpus.Article     `json:"article"`
	Related           []corpus.Article   `json:"related"`
	Links             []userdata.Link    `json:"links"`
	Notes             []userdata.Note    `json:"notes"`
	LinkedRegulations []LinkedRegulation `json:"linkedRegulations"`
	Themes            []ThemeMembership  `json:"themes"`
}

// ListCategoriesQuery lists the fixed corpus categories
type ListCategoriesQuery struct{}

// Validate validates the query
func (q ListCategoriesQuery) Validate() error {
	return nil
}

// ListCategoriesResult holds the category list with per-category article counts
type ListCategoriesResult struct {
	Categories []CategorySummary `json:"categories"`
}

// CategorySummary is a corpus category plus its article count
type CategorySummary struct {
	corpus.Category
	ArticleCount int `json:"articleCount"`
}
