package userdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildViewsFixture() Document {
	doc := NewDocument()
	doc.Regulations["r1"] = Regulation{ID: "r1", Title: "minima policy", CreatedAt: "2026-01-01T00:00:00Z"}
	doc.Regulations["r2"] = Regulation{ID: "r2", Title: "fuel policy", CreatedAt: "2026-01-02T00:00:00Z"}

	doc.Links["l1"] = Link{ID: "l1", SourceArticleID: "law67", TargetRegulationID: "r1", CreatedAt: "2026-02-01T00:00:00Z"}
	doc.Links["l2"] = Link{ID: "l2", SourceArticleID: "law67", TargetRegulationID: "r1", CreatedAt: "2026-02-02T00:00:00Z"}
	doc.Links["l3"] = Link{ID: "l3", SourceArticleID: "law67", TargetRegulationID: "r2", CreatedAt: "2026-02-03T00:00:00Z"}
	doc.Links["l4"] = Link{ID: "l4", SourceArticleID: "law73", TargetRegulationID: "gone", CreatedAt: "2026-02-04T00:00:00Z"}

	doc.Notes["n1"] = Note{ID: "n1", ArticleID: "law67", Content: "check renewal period", CreatedAt: "2026-03-01T00:00:00Z"}

	doc.Themes["t1"] = Theme{
		ID: "t1", Name: "instrument rating", CreatedAt: "2026-04-01T00:00:00Z",
		Sections: []Section{
			{ID: "s1", Name: "licensing", ArticleIDs: []string{"law67", "law73"}},
		},
	}
	doc.Themes["t2"] = Theme{
		ID: "t2", Name: "captain duties", CreatedAt: "2026-04-02T00:00:00Z",
		Sections: []Section{
			{ID: "s2", Name: "pre-flight", ArticleIDs: []string{"law73"}},
			{ID: "s3", Name: "in-flight", ArticleIDs: []string{"law73"}},
		},
	}
	return doc
}

func TestLinkAndNoteCounts(t *testing.T) {
	doc := buildViewsFixture()

	assert.Equal(t, map[string]int{"law67": 3, "law73": 1}, doc.LinkCountByArticle())
	assert.Equal(t, map[string]int{"law67": 1}, doc.NoteCountByArticle())
}

func TestLinkedRegulationsByArticle(t *testing.T) {
	doc := buildViewsFixture()
	byArticle := doc.LinkedRegulationsByArticle()

	t.Run("dedup by regulation in first occurrence order", func(t *testing.T) {
		regs := byArticle["law67"]
		require.Len(t, regs, 2)
		assert.Equal(t, "r1", regs[0].ID)
		assert.Equal(t, "r2", regs[1].ID)
	})

	t.Run("dangling targets are skipped", func(t *testing.T) {
		assert.Empty(t, byArticle["law73"])
	})
}

func TestLinksByRegulation(t *testing.T) {
	doc := buildViewsFixture()
	byReg := doc.LinksByRegulation()

	assert.Len(t, byReg["r1"], 2)
	assert.Len(t, byReg["r2"], 1)

	t.Run("dangling targets are kept for placeholder rendering", func(t *testing.T) {
		require.Len(t, byReg["gone"], 1)
		assert.Equal(t, "l4", byReg["gone"][0].ID)
	})
}

func TestLinksForArticleOrdering(t *testing.T) {
	doc := buildViewsFixture()
	links := doc.LinksForArticle("law67")

	require.Len(t, links, 3)
	assert.Equal(t, "l1", links[0].ID)
	assert.Equal(t, "l2", links[1].ID)
	assert.Equal(t, "l3", links[2].ID)
}

func TestThemesByArticle(t *testing.T) {
	doc := buildViewsFixture()
	byArticle := doc.ThemesByArticle()

	t.Run("membership is not exclusive across themes", func(t *testing.T) {
		themes := byArticle["law73"]
		require.Len(t, themes, 2)
		assert.Equal(t, "t1", themes[0].ID)
		assert.Equal(t, "t2", themes[1].ID)
	})

	t.Run("a theme counts once even across multiple sections", func(t *testing.T) {
		count := 0
		for _, theme := range byArticle["law73"] {
			if theme.ID == "t2" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})
}

func TestSortedViewsAreStable(t *testing.T) {
	doc := buildViewsFixture()

	first := doc.SortedRegulations()
	second := doc.SortedRegulations()
	assert.Equal(t, first, second)
	require.Len(t, first, 2)
	assert.Equal(t, "r1", first[0].ID)

	themes := doc.SortedThemes()
	require.Len(t, themes, 2)
	assert.Equal(t, "t1", themes[0].ID)
}
