package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	at    grid.Coord
	depth int
}

// walker encapsulates mutable BFS state.
type walker[W any] struct {
	graph *gridgraph.Graph[W]
	opts  Options
	ctx   context.Context
	queue []queueItem
	res   *Result
}

// BFS runs breadth-first search on g from start, following Successors and
// ignoring weights. Returns ErrGraphNil or ErrStartNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any error returned by the visit hook.
func BFS[W any](g *gridgraph.Graph[W], start grid.Coord, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}

	n := g.NodeCount()
	w := &walker[W]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:  start,
			Order:  make([]grid.Coord, 0, n),
			Depth:  make(map[grid.Coord]int, n),
			Parent: make(map[grid.Coord]grid.Coord, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue = append(w.queue, queueItem{at: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[W]) loop() error {
	for head := 0; head < len(w.queue); head++ {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[head]
		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.at, err)
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each unseen
// successor in the graph's insertion order.
func (w *walker[W]) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range w.graph.Successors(item.at) {
		if _, seen := w.res.Depth[nb]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.at, nb) {
			continue
		}
		w.res.Depth[nb] = next
		w.res.Parent[nb] = item.at
		w.queue = append(w.queue, queueItem{at: nb, depth: next})
	}
}
