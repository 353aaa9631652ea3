// Package graph computes render-ready positions for the article relationship
// map: an undirected edge list derived from declared relations, and a 2D
// layout from a force simulation.
package graph

import (
	"sort"

	"lawmap/domain/corpus"
)

// Edge is one undirected relation between two articles
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// BuildEdges derives the deduplicated undirected edge list from the corpus
// relatedTo declarations. An edge is emitted once per unordered pair even
// when declared from both sides; relations naming unknown article ids are
// skipped.
func BuildEdges(articles []corpus.Article) []Edge {
	known := make(map[string]bool, len(articles))
	for _, a := range articles {
		known[a.ID] = true
	}

	seen := make(map[[2]string]bool)
	var edges []Edge
	for _, art := range articles {
		for _, targetID := range art.RelatedTo {
			if !known[targetID] {
				continue
			}
			key := [2]string{art.ID, targetID}
			if key[0] > key[1] {
				key[0], key[1] = key[1], key[0]
			}
			if seen[key] {
				continue
			}
			seen[key] = true
			edges = append(edges, Edge{Source: art.ID, Target: targetID})
		}
	}
	return edges
}

// ConnectionCounts returns the degree of every node named by the edges
func ConnectionCounts(edges []Edge) map[string]int {
	counts := make(map[string]int)
	for _, e := range edges {
		counts[e.Source]++
		counts[e.Target]++
	}
	return counts
}

// Neighbors returns the ids directly connected to the given node, sorted
func Neighbors(edges []Edge, id string) []string {
	var out []string
	for _, e := range edges {
		if e.Source == id {
			out = append(out, e.Target)
		}
		if e.Target == id {
			out = append(out, e.Source)
		}
	}
	sort.Strings(out)
	return out
}
