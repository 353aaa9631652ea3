package userdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()
	assert.Equal(t, CurrentVersion, doc.Version)
	assert.NotNil(t, doc.Regulations)
	assert.NotNil(t, doc.Links)
	assert.NotNil(t, doc.Notes)
	assert.NotNil(t, doc.Themes)
	assert.Empty(t, doc.ExportedAt)
}

func TestClone(t *testing.T) {
	doc := NewDocument()
	doc.Regulations["r1"] = Regulation{ID: "r1", Title: "original"}
	doc.Themes["t1"] = Theme{
		ID: "t1",
		Sections: []Section{
			{ID: "s1", Name: "basics", ArticleIDs: []string{"law67"}},
		},
	}

	clone := doc.Clone()

	reg := clone.Regulations["r1"]
	reg.Title = "changed"
	clone.Regulations["r1"] = reg
	clone.Themes["t1"].Sections[0].ArticleIDs[0] = "law73"

	assert.Equal(t, "original", doc.Regulations["r1"].Title)
	assert.Equal(t, "law67", doc.Themes["t1"].Sections[0].ArticleIDs[0])
}

func TestDeleteRegulationCascade(t *testing.T) {
	doc := NewDocument()
	doc.Regulations["r1"] = Regulation{ID: "r1"}
	doc.Regulations["r2"] = Regulation{ID: "r2"}
	doc.Links["l1"] = Link{ID: "l1", SourceArticleID: "law67", TargetRegulationID: "r1"}
	doc.Links["l2"] = Link{ID: "l2", SourceArticleID: "law73", TargetRegulationID: "r1"}
	doc.Links["l3"] = Link{ID: "l3", SourceArticleID: "law67", TargetRegulationID: "r2"}

	require.True(t, doc.DeleteRegulation("r1"))

	assert.NotContains(t, doc.Regulations, "r1")
	assert.NotContains(t, doc.Links, "l1")
	assert.NotContains(t, doc.Links, "l2")
	assert.Contains(t, doc.Links, "l3")

	t.Run("missing regulation reports false", func(t *testing.T) {
		assert.False(t, doc.DeleteRegulation("r1"))
	})
}

func TestThemeAssignArticle(t *testing.T) {
	theme := Theme{
		ID: "t1",
		Sections: []Section{
			{ID: "s1", Name: "one", ArticleIDs: []string{"law67"}},
			{ID: "s2", Name: "two", ArticleIDs: []string{}},
		},
	}

	t.Run("assign to existing section", func(t *testing.T) {
		require.True(t, theme.AssignArticle("s2", "law73"))
		assert.Equal(t, []string{"law73"}, theme.Sections[1].ArticleIDs)
	})

	t.Run("assigning again moves between sections", func(t *testing.T) {
		require.True(t, theme.AssignArticle("s2", "law67"))
		assert.Empty(t, theme.Sections[0].ArticleIDs)
		assert.ElementsMatch(t, []string{"law73", "law67"}, theme.Sections[1].ArticleIDs)
	})

	t.Run("unknown section reports false", func(t *testing.T) {
		assert.False(t, theme.AssignArticle("missing", "law67"))
	})

	t.Run("remove article clears every section", func(t *testing.T) {
		require.True(t, theme.RemoveArticle("law67"))
		assert.False(t, theme.ContainsArticle("law67"))
		assert.False(t, theme.RemoveArticle("law67"))
	})
}
