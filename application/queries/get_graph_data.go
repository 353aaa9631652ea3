package queries

// GetGraphDataQuery asks for the laid-out relationship graph of the corpus.
// Seed pins the layout's random source; zero means use the server default.
type GetGraphDataQuery struct {
	Seed int64 `json:"seed,omitempty"`
}

// Validate validates the query
func (q GetGraphDataQuery) Validate() error {
	return nil
}

// GraphNode is one article placed on the canvas
type GraphNode struct {
	ID            string  `json:"id"`
	Title         string  `json:"title"`
	ArticleNumber string  `json:"articleNumber"`
	CategoryID    string  `json:"categoryId"`
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	Radius        float64 `json:"radius"`
	Degree        int     `json:"degree"`
	LinkCount     int     `json:"linkCount"`
	NoteCount     int     `json:"noteCount"`
}

// GraphEdge is an undirected relation between two articles
type GraphEdge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// GraphAnchor is the gravitational anchor point of a category
type GraphAnchor struct {
	CategoryID string  `json:"categoryId"`
	Label      string  `json:"label"`
	Color      string  `json:"color"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
}

// GraphStats contains graph statistics
type GraphStats struct {
	NodeCount int     `json:"nodeCount"`
	EdgeCount int     `json:"edgeCount"`
	Density   float64 `json:"density"`
}

// GetGraphDataResult is the complete graph payload for visualization
type GetGraphDataResult struct {
	Nodes   []GraphNode   `json:"nodes"`
	Edges   []GraphEdge   `json:"edges"`
	Anchors []GraphAnchor `json:"anchors"`
	Width   float64       `json:"width"`
	Height  float64       `json:"height"`
	Stats   GraphStats    `json:"stats"`
}
