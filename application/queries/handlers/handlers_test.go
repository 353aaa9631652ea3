package handlers

import (
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"lawmap/application/queries"
	"lawmap/domain/corpus"
	"lawmap/domain/graph"
	"lawmap/domain/userdata"
	"lawmap/infrastructure/persistence/file"
	apperrors "lawmap/pkg/errors"
	"lawmap/pkg/observability"
)

func newQueryStore(t *testing.T) *file.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lawmap.json")
	store, err := file.NewStore(path, zap.NewNop(), observability.NewCollector("test"))
	require.NoError(t, err)
	return store
}

func seedQueryStore(t *testing.T, store *file.Store) {
	t.Helper()
	require.NoError(t, store.Update(func(doc *userdata.Document) error {
		doc.Regulations["reg-1"] = userdata.Regulation{
			ID: "reg-1", Category: "OM", Title: "Crew licensing",
			CreatedAt: "2026-01-01T00:00:00Z", UpdatedAt: "2026-01-01T00:00:00Z",
		}
		doc.Links["l1"] = userdata.Link{
			ID: "l1", SourceArticleID: "law67", TargetRegulationID: "reg-1",
			CreatedAt: "2026-01-02T00:00:00Z", UpdatedAt: "2026-01-02T00:00:00Z",
		}
		doc.Links["l2"] = userdata.Link{
			ID: "l2", SourceArticleID: "law67", TargetRegulationID: "gone",
			CreatedAt: "2026-01-03T00:00:00Z", UpdatedAt: "2026-01-03T00:00:00Z",
		}
		doc.Notes["n1"] = userdata.Note{
			ID: "n1", ArticleID: "law67", Content: "skill certificate",
			CreatedAt: "2026-01-04T00:00:00Z", UpdatedAt: "2026-01-04T00:00:00Z",
		}
		doc.Themes["t1"] = userdata.Theme{
			ID: "t1", Name: "Licensing", Color: "#3366ff",
			Sections: []userdata.Section{
				{ID: "s1", Name: "Certificates", ArticleIDs: []string{"law67"}},
			},
			CreatedAt: "2026-01-05T00:00:00Z", UpdatedAt: "2026-01-05T00:00:00Z",
		}
		return nil
	}))
}

func TestListCategoriesHandler(t *testing.T) {
	c := corpus.MustLoad()
	handler := NewListCategoriesHandler(c)

	result, err := handler.Handle(context.Background(), queries.ListCategoriesQuery{})
	require.NoError(t, err)
	require.NotEmpty(t, result.Categories)

	for _, cat := range result.Categories {
		assert.Equal(t, len(cat.Articles), cat.ArticleCount, "category %s", cat.ID)
	}
}

func TestListArticlesHandler(t *testing.T) {
	c := corpus.MustLoad()
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewListArticlesHandler(c, store, zap.NewNop())
	ctx := context.Background()

	t.Run("unfiltered returns full corpus with counts", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListArticlesQuery{})
		require.NoError(t, err)
		assert.Equal(t, len(result.Articles), result.Total)

		var law67 *queries.ArticleSummary
		for i := range result.Articles {
			if result.Articles[i].ID == "law67" {
				law67 = &result.Articles[i]
			}
		}
		require.NotNil(t, law67)
		assert.Equal(t, 2, law67.LinkCount)
		assert.Equal(t, 1, law67.NoteCount)
	})

	t.Run("category filter restricts results", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListArticlesQuery{CategoryID: "captain"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Articles)
		for _, a := range result.Articles {
			assert.Equal(t, "captain", a.CategoryID)
		}
	})

	t.Run("unknown category is not found", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.ListArticlesQuery{CategoryID: "nope"})
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("search narrows by official text", func(t *testing.T) {
		result, err := handler.Handle(ctx, queries.ListArticlesQuery{Search: "技能証明"})
		require.NoError(t, err)
		require.NotEmpty(t, result.Articles)
		found := false
		for _, a := range result.Articles {
			if a.ID == "law67" {
				found = true
			}
		}
		assert.True(t, found)
	})
}

func TestGetArticleHandler(t *testing.T) {
	c := corpus.MustLoad()
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewGetArticleHandler(c, store, zap.NewNop())
	ctx := context.Background()

	t.Run("unknown article is not found", func(t *testing.T) {
		_, err := handler.Handle(ctx, queries.GetArticleQuery{ArticleID: "law999"})
		assert.True(t, apperrors.IsNotFound(err))
	})

	result, err := handler.Handle(ctx, queries.GetArticleQuery{ArticleID: "law67"})
	require.NoError(t, err)

	assert.Equal(t, "law67", result.Article.ID)
	assert.Len(t, result.Links, 2)
	assert.Len(t, result.Notes, 1)

	t.Run("dangling link target becomes a missing placeholder", func(t *testing.T) {
		require.Len(t, result.LinkedRegulations, 2)
		byID := make(map[string]queries.LinkedRegulation)
		for _, r := range result.LinkedRegulations {
			byID[r.ID] = r
		}
		assert.False(t, byID["reg-1"].Missing)
		assert.Equal(t, "Crew licensing", byID["reg-1"].Title)
		assert.True(t, byID["gone"].Missing)
	})

	t.Run("theme memberships include section names", func(t *testing.T) {
		require.Len(t, result.Themes, 1)
		assert.Equal(t, "t1", result.Themes[0].ThemeID)
		assert.Equal(t, "Certificates", result.Themes[0].SectionName)
	})
}

func TestListRegulationsHandler(t *testing.T) {
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewListRegulationsHandler(store)

	result, err := handler.Handle(context.Background(), queries.ListRegulationsQuery{})
	require.NoError(t, err)
	require.Len(t, result.Regulations, 1)
	assert.Equal(t, "reg-1", result.Regulations[0].ID)
	require.Len(t, result.Regulations[0].Links, 1)
	assert.Equal(t, "l1", result.Regulations[0].Links[0].ID)
}

func TestGetStatsHandler(t *testing.T) {
	c := corpus.MustLoad()
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewGetStatsHandler(c, store)

	result, err := handler.Handle(context.Background(), queries.GetStatsQuery{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Regulations)
	assert.Equal(t, 2, result.Links)
	assert.Equal(t, 1, result.Notes)
	assert.Equal(t, 1, result.Themes)
	assert.Equal(t, 1, result.ArticlesWithLinks)
	assert.Equal(t, 1, result.ArticlesWithNotes)
	assert.Equal(t, 2, result.LinksByCategory["license"])
	assert.Equal(t, 1, result.RegulationsByGroup["OM"])
	assert.Positive(t, result.Articles)
	assert.Positive(t, result.Categories)
}

func TestGetGraphDataHandler(t *testing.T) {
	c := corpus.MustLoad()
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewGetGraphDataHandler(c, store, graph.DefaultOptions(), 1, zap.NewNop())
	ctx := context.Background()

	result, err := handler.Handle(ctx, queries.GetGraphDataQuery{})
	require.NoError(t, err)

	assert.Len(t, result.Nodes, len(c.Articles()))
	assert.Equal(t, len(result.Nodes), result.Stats.NodeCount)
	assert.Equal(t, len(result.Edges), result.Stats.EdgeCount)
	assert.NotEmpty(t, result.Anchors)

	t.Run("nodes carry annotation counts", func(t *testing.T) {
		for _, n := range result.Nodes {
			if n.ID == "law67" {
				assert.Equal(t, 2, n.LinkCount)
				assert.Equal(t, 1, n.NoteCount)
			}
		}
	})

	t.Run("default seed is stable across calls", func(t *testing.T) {
		again, err := handler.Handle(ctx, queries.GetGraphDataQuery{})
		require.NoError(t, err)
		assert.Equal(t, result.Nodes, again.Nodes)
	})

	t.Run("explicit seed changes positions", func(t *testing.T) {
		other, err := handler.Handle(ctx, queries.GetGraphDataQuery{Seed: 99})
		require.NoError(t, err)
		assert.NotEqual(t, result.Nodes, other.Nodes)
	})
}

func TestExportDataHandler(t *testing.T) {
	store := newQueryStore(t)
	seedQueryStore(t, store)
	handler := NewExportDataHandler(store, observability.NewCollector("test"), zap.NewNop())

	result, err := handler.Handle(context.Background(), queries.ExportDataQuery{})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Filename, "lawmap_backup_"))
	assert.True(t, strings.HasSuffix(result.Filename, ".json"))

	var exported userdata.Document
	require.NoError(t, json.Unmarshal(result.Payload, &exported))
	assert.Contains(t, exported.Regulations, "reg-1")

	t.Run("export stamps the copy, not the store", func(t *testing.T) {
		_, err := time.Parse(time.RFC3339, exported.ExportedAt)
		assert.NoError(t, err)
		assert.Empty(t, store.View().ExportedAt)
	})
}
