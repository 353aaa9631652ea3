package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, c.Articles())
	assert.NotEmpty(t, c.Categories())

	t.Run("articles carry their category id", func(t *testing.T) {
		for _, a := range c.Articles() {
			assert.NotEmpty(t, a.CategoryID, "article %s has no category", a.ID)
			cat, ok := c.CategoryByID(a.CategoryID)
			require.True(t, ok)
			assert.Equal(t, a.CategoryID, cat.ID)
		}
	})

	t.Run("ids are unique", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, a := range c.Articles() {
			assert.False(t, seen[a.ID], "duplicate id %s", a.ID)
			seen[a.ID] = true
		}
	})

	t.Run("known article resolves", func(t *testing.T) {
		a, ok := c.ArticleByID("law67")
		require.True(t, ok)
		assert.Contains(t, a.OfficialText, "技能証明書")
	})
}

func TestRelated(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	t.Run("relations resolve symmetrically", func(t *testing.T) {
		for _, a := range c.Articles() {
			for _, rel := range c.Related(a.ID) {
				assert.NotEqual(t, a.ID, rel.ID, "article %s relates to itself", a.ID)
				back := c.Related(rel.ID)
				found := false
				for _, b := range back {
					if b.ID == a.ID {
						found = true
						break
					}
				}
				assert.True(t, found, "%s -> %s is not symmetric", a.ID, rel.ID)
			}
		}
	})

	t.Run("unknown id yields nothing", func(t *testing.T) {
		assert.Empty(t, c.Related("nonexistent"))
	})
}

func TestFilter(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	t.Run("empty filter returns everything", func(t *testing.T) {
		assert.Len(t, c.Filter("", ""), len(c.Articles()))
	})

	t.Run("category filter", func(t *testing.T) {
		result := c.Filter("license", "")
		assert.NotEmpty(t, result)
		for _, a := range result {
			assert.Equal(t, "license", a.CategoryID)
		}
	})

	t.Run("query matches official text", func(t *testing.T) {
		result := c.Filter("", "技能証明書")
		require.NotEmpty(t, result)
		ids := make([]string, 0, len(result))
		for _, a := range result {
			ids = append(ids, a.ID)
		}
		assert.Contains(t, ids, "law67")
	})

	t.Run("query is case insensitive", func(t *testing.T) {
		lower := c.Filter("", "aip")
		upper := c.Filter("", "AIP")
		assert.Equal(t, lower, upper)
	})

	t.Run("category and query combine with and", func(t *testing.T) {
		result := c.Filter("license", "技能証明")
		for _, a := range result {
			assert.Equal(t, "license", a.CategoryID)
			matched := strings.Contains(a.Title, "技能証明") ||
				strings.Contains(a.Summary, "技能証明") ||
				strings.Contains(a.OfficialText, "技能証明") ||
				keywordContains(a.Keywords, "技能証明")
			assert.True(t, matched, "article %s does not match", a.ID)
		}
	})

	t.Run("no match yields empty slice", func(t *testing.T) {
		assert.Empty(t, c.Filter("", "zzzzzz-no-such-text"))
	})

	t.Run("corpus order preserved", func(t *testing.T) {
		all := c.Articles()
		index := make(map[string]int, len(all))
		for i, a := range all {
			index[a.ID] = i
		}
		result := c.Filter("", "航空")
		for i := 1; i < len(result); i++ {
			assert.Less(t, index[result[i-1].ID], index[result[i].ID])
		}
	})
}

func keywordContains(keywords []string, q string) bool {
	for _, k := range keywords {
		if strings.Contains(k, q) {
			return true
		}
	}
	return false
}
