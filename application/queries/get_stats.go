package queries

// GetStatsQuery asks for aggregate counts over corpus and user data
type GetStatsQuery struct{}

// Validate validates the query
func (q GetStatsQuery) Validate() error {
	return nil
}

// GetStatsResult summarizes the whole workspace
type GetStatsResult struct {
	Articles           int            `json:"articles"`
	Categories         int            `json:"categories"`
	Regulations        int            `json:"regulations"`
	Links              int            `json:"links"`
	Notes              int            `json:"notes"`
	Themes             int            `json:"themes"`
	ArticlesWithLinks  int            `json:"articlesWithLinks"`
	ArticlesWithNotes  int            `json:"articlesWithNotes"`
	LinksByCategory    map[string]int `json:"linksByCategory"`
	RegulationsByGroup map[string]int `json:"regulationsByGroup"`
}
