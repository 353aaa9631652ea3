package handlers

import (
	"context"
	"math/rand"
	"sync"

	"go.uber.org/zap"

	"lawmap/application/ports"
	"lawmap/application/queries"
	"lawmap/domain/corpus"
	"lawmap/domain/graph"
)

// GetGraphDataHandler handles graph data visualization queries. The corpus
// is immutable, so edges and layouts are computed once per seed and cached;
// only the per-node annotation counts are recomputed on every request.
type GetGraphDataHandler struct {
	corpus      *corpus.Corpus
	store       ports.DocumentStore
	opts        graph.Options
	defaultSeed int64
	logger      *zap.Logger

	edgesOnce sync.Once
	edges     []graph.Edge
	degrees   map[string]int

	mu      sync.Mutex
	layouts map[int64]graph.Result
}

// NewGetGraphDataHandler creates a new graph data handler. defaultSeed pins
// the layout used when a query does not carry its own, so the graph looks
// the same across restarts.
func NewGetGraphDataHandler(c *corpus.Corpus, store ports.DocumentStore, opts graph.Options, defaultSeed int64, logger *zap.Logger) *GetGraphDataHandler {
	return &GetGraphDataHandler{
		corpus:      c,
		store:       store,
		opts:        opts,
		defaultSeed: defaultSeed,
		logger:      logger,
		layouts:     make(map[int64]graph.Result),
	}
}

// Handle executes the graph data query
func (h *GetGraphDataHandler) Handle(ctx context.Context, query queries.GetGraphDataQuery) (*queries.GetGraphDataResult, error) {
	seed := query.Seed
	if seed == 0 {
		seed = h.defaultSeed
	}

	h.edgesOnce.Do(func() {
		h.edges = graph.BuildEdges(h.corpus.Articles())
		h.degrees = graph.ConnectionCounts(h.edges)
	})
	layout := h.layoutFor(seed)

	doc := h.store.View()
	linkCounts := doc.LinkCountByArticle()
	noteCounts := doc.NoteCountByArticle()

	articles := h.corpus.Articles()
	nodes := make([]queries.GraphNode, 0, len(articles))
	for _, a := range articles {
		pos := layout.Positions[a.ID]
		degree := h.degrees[a.ID]
		nodes = append(nodes, queries.GraphNode{
			ID:            a.ID,
			Title:         a.Title,
			ArticleNumber: a.Article,
			CategoryID:    a.CategoryID,
			X:             pos.X,
			Y:             pos.Y,
			Radius:        graph.NodeRadius(degree),
			Degree:        degree,
			LinkCount:     linkCounts[a.ID],
			NoteCount:     noteCounts[a.ID],
		})
	}

	edges := make([]queries.GraphEdge, 0, len(h.edges))
	for _, e := range h.edges {
		edges = append(edges, queries.GraphEdge{Source: e.Source, Target: e.Target})
	}

	categories := h.corpus.Categories()
	anchors := make([]queries.GraphAnchor, 0, len(categories))
	for _, c := range categories {
		p := layout.Anchors[c.ID]
		anchors = append(anchors, queries.GraphAnchor{
			CategoryID: c.ID,
			Label:      c.Name,
			Color:      c.Color,
			X:          p.X,
			Y:          p.Y,
		})
	}

	n := len(nodes)
	density := 0.0
	if n > 1 {
		density = float64(2*len(edges)) / float64(n*(n-1))
	}

	return &queries.GetGraphDataResult{
		Nodes:   nodes,
		Edges:   edges,
		Anchors: anchors,
		Width:   h.opts.Width,
		Height:  h.opts.Height,
		Stats: queries.GraphStats{
			NodeCount: n,
			EdgeCount: len(edges),
			Density:   density,
		},
	}, nil
}

func (h *GetGraphDataHandler) layoutFor(seed int64) graph.Result {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cached, ok := h.layouts[seed]; ok {
		return cached
	}
	rng := rand.New(rand.NewSource(seed))
	result := graph.Layout(h.corpus.Articles(), h.corpus.Categories(), h.edges, h.opts, rng)
	h.layouts[seed] = result
	h.logger.Debug("graph layout computed", zap.Int64("seed", seed))
	return result
}
