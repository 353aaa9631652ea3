package graph

import (
	"math"
	"math/rand"

	"lawmap/domain/corpus"
)

// Point is a 2D canvas position
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Options are the simulation tunables. The defaults settle a few dozen nodes
// into readable category clusters; there is no convergence detection, the
// fixed iteration count with damping is enough at this scale.
type Options struct {
	Width           float64
	Height          float64
	AnchorRadius    float64
	Iterations      int
	Repulsion       float64
	IdealEdgeLength float64
	Spring          float64
	CategoryGravity float64
	CenterGravity   float64
	Damping         float64
	Margin          float64
}

// DefaultOptions returns the standard 800x800 canvas tuning
func DefaultOptions() Options {
	return Options{
		Width:           800,
		Height:          800,
		AnchorRadius:    220,
		Iterations:      60,
		Repulsion:       800,
		IdealEdgeLength: 90,
		Spring:          0.02,
		CategoryGravity: 0.005,
		CenterGravity:   0.001,
		Damping:         0.6,
		Margin:          40,
	}
}

// Result holds the computed layout: one position per node plus the category
// anchor points used to draw background zone markers.
type Result struct {
	Positions map[string]Point `json:"positions"`
	Anchors   map[string]Point `json:"anchors"`
	Width     float64          `json:"width"`
	Height    float64          `json:"height"`
}

type body struct {
	x, y   float64
	vx, vy float64
}

// Layout runs the force simulation and returns final positions. The rand
// source only supplies the initial jitter that breaks exact symmetry; under
// a seeded source the layout is fully deterministic, which is how the layout
// tests pin exact behavior.
func Layout(articles []corpus.Article, categories []corpus.Category, edges []Edge, opts Options, rng *rand.Rand) Result {
	cx, cy := opts.Width/2, opts.Height/2

	// Category anchors evenly spaced on a circle, starting at twelve o'clock
	anchors := make(map[string]Point, len(categories))
	for i, cat := range categories {
		angle := float64(i)/float64(len(categories))*2*math.Pi - math.Pi/2
		anchors[cat.ID] = Point{
			X: cx + math.Cos(angle)*opts.AnchorRadius,
			Y: cy + math.Sin(angle)*opts.AnchorRadius,
		}
	}

	// Fan nodes out around their category anchor; spread grows with sibling
	// count so crowded categories start wider
	siblingCount := make(map[string]int, len(categories))
	siblingIndex := make([]int, len(articles))
	for i, art := range articles {
		siblingIndex[i] = siblingCount[art.CategoryID]
		siblingCount[art.CategoryID]++
	}

	bodies := make(map[string]*body, len(articles))
	for i, art := range articles {
		anchor, ok := anchors[art.CategoryID]
		if !ok {
			anchor = Point{X: cx, Y: cy}
		}
		siblings := siblingCount[art.CategoryID]
		if siblings < 1 {
			siblings = 1
		}
		angle := float64(siblingIndex[i]) / float64(siblings) * 2 * math.Pi
		spread := 50 + float64(siblings)*8
		bodies[art.ID] = &body{
			x: anchor.X + math.Cos(angle)*spread + (rng.Float64()-0.5)*20,
			y: anchor.Y + math.Sin(angle)*spread + (rng.Float64()-0.5)*20,
		}
	}

	for iter := 0; iter < opts.Iterations; iter++ {
		alpha := 1 - float64(iter)/float64(opts.Iterations)

		// Repulsion between every unordered pair, distance floored at 1 so
		// coincident nodes cannot blow up the force
		for i := 0; i < len(articles); i++ {
			for j := i + 1; j < len(articles); j++ {
				a := bodies[articles[i].ID]
				b := bodies[articles[j].ID]
				dx, dy := b.x-a.x, b.y-a.y
				dist := math.Max(math.Sqrt(dx*dx+dy*dy), 1)
				force := opts.Repulsion / (dist * dist) * alpha
				fx, fy := dx/dist*force, dy/dist*force
				a.vx -= fx
				a.vy -= fy
				b.vx += fx
				b.vy += fy
			}
		}

		// Spring attraction along edges toward the ideal separation
		for _, edge := range edges {
			a, okA := bodies[edge.Source]
			b, okB := bodies[edge.Target]
			if !okA || !okB {
				continue
			}
			dx, dy := b.x-a.x, b.y-a.y
			dist := math.Sqrt(dx*dx + dy*dy)
			force := (dist - opts.IdealEdgeLength) * opts.Spring * alpha
			fx := dx / math.Max(dist, 1) * force
			fy := dy / math.Max(dist, 1) * force
			a.vx += fx
			a.vy += fy
			b.vx -= fx
			b.vy -= fy
		}

		// Category gravity
		for _, art := range articles {
			anchor, ok := anchors[art.CategoryID]
			if !ok {
				continue
			}
			p := bodies[art.ID]
			p.vx += (anchor.X - p.x) * opts.CategoryGravity * alpha
			p.vy += (anchor.Y - p.y) * opts.CategoryGravity * alpha
		}

		// Center gravity
		for _, art := range articles {
			p := bodies[art.ID]
			p.vx += (cx - p.x) * opts.CenterGravity * alpha
			p.vy += (cy - p.y) * opts.CenterGravity * alpha
		}

		// Damped integration, clamped to canvas bounds
		for _, art := range articles {
			p := bodies[art.ID]
			p.vx *= opts.Damping
			p.vy *= opts.Damping
			p.x += p.vx
			p.y += p.vy
			p.x = math.Max(opts.Margin, math.Min(opts.Width-opts.Margin, p.x))
			p.y = math.Max(opts.Margin, math.Min(opts.Height-opts.Margin, p.y))
		}
	}

	positions := make(map[string]Point, len(bodies))
	for id, p := range bodies {
		positions[id] = Point{X: p.x, Y: p.y}
	}

	return Result{
		Positions: positions,
		Anchors:   anchors,
		Width:     opts.Width,
		Height:    opts.Height,
	}
}

// NodeRadius maps a node's connection count to its rendered radius,
// clamped to the 10..20 range
func NodeRadius(connections int) float64 {
	return math.Max(10, math.Min(20, 8+float64(connections)*2))
}
