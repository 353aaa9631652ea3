package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"lawmap/application/queries"
	querybus "lawmap/application/queries/bus"
	"lawmap/pkg/common"
)

// ArticleHandler serves the read-only law corpus
type ArticleHandler struct {
	queryBus *querybus.QueryBus
	logger   *zap.Logger
}

// NewArticleHandler creates a new article handler
func NewArticleHandler(queryBus *querybus.QueryBus, logger *zap.Logger) *ArticleHandler {
	return &ArticleHandler{queryBus: queryBus, logger: logger}
}

// ListCategories handles GET /categories
func (h *ArticleHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListCategoriesQuery{})
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// ListArticles handles GET /articles with optional category and q filters
func (h *ArticleHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	query := queries.ListArticlesQuery{
		CategoryID: r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("q"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}

// GetArticle handles GET /articles/{articleID}
func (h *ArticleHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	query := queries.GetArticleQuery{
		ArticleID: chi.URLParam(r, "articleID"),
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
