package corpus

import "strings"

// Filter returns the articles matching both the category selector and the
// free-text query, preserving corpus order. An empty categoryID or query is
// an identity on that axis. The query matches case-insensitively against
// title, citation, summary, any keyword, and official text when present.
func (c *Corpus) Filter(categoryID, query string) []Article {
	items := c.articles

	if categoryID != "" {
		var filtered []Article
		for _, a := range items {
			if a.CategoryID == categoryID {
				filtered = append(filtered, a)
			}
		}
		items = filtered
	}

	if query == "" {
		return items
	}

	term := strings.ToLower(query)
	var matched []Article
	for _, a := range items {
		if articleMatches(a, term) {
			matched = append(matched, a)
		}
	}
	return matched
}

func articleMatches(a Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) ||
		strings.Contains(strings.ToLower(a.Article), term) ||
		strings.Contains(strings.ToLower(a.Summary), term) {
		return true
	}
	for _, kw := range a.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	if a.OfficialText != "" && strings.Contains(strings.ToLower(a.OfficialText), term) {
		return true
	}
	return false
}
