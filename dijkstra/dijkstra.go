package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/gridkit/grid"
	"github.com/katalvlaran/gridkit/gridgraph"
)

// Dijkstra computes shortest distances from source to every reachable node
// of g. On an undirected graph each link is walkable both ways.
//
// Validation order:
//  1. g must be non-nil (ErrNilGraph).
//  2. options must be valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  3. g must contain source (ErrVertexNotFound).
//  4. no edge may have a negative weight (ErrNegativeWeight).
func Dijkstra[W Weight](g *gridgraph.Graph[W], source grid.Coord, opts ...Option[W]) (*Result[W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	var cfg Options[W]
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.NodeCount()
	r := &runner[W]{
		g:       g,
		options: cfg,
		res:     &Result[W]{Source: source, Dist: make(map[grid.Coord]W, n)},
		settled: make(map[grid.Coord]bool, n),
		pq:      make(nodePQ[W], 0, n),
	}
	if cfg.ReturnPath {
		r.res.Prev = make(map[grid.Coord]grid.Coord, n)
	}
	r.res.Dist[source] = 0
	r.push(source, 0)
	r.process()

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[W Weight] struct {
	g       *gridgraph.Graph[W]
	options Options[W]
	res     *Result[W]
	settled map[grid.Coord]bool
	pq      nodePQ[W]
	seq     int
}

func (r *runner[W]) push(at grid.Coord, d W) {
	heap.Push(&r.pq, &nodeItem[W]{at: at, dist: d, seq: r.seq})
	r.seq++
}

// process pops the nearest unsettled node until the heap is empty or the
// minimum exceeds MaxDistance.
func (r *runner[W]) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[W])
		if r.settled[item.at] {
			continue
		}
		if r.options.HasMaxDistance && item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.at] = true
		r.relax(item.at, item.dist)
	}
}

// relax improves the distance of every successor of u reachable through a
// passable edge.
func (r *runner[W]) relax(u grid.Coord, du W) {
	for _, v := range r.g.Successors(u) {
		if r.settled[v] {
			continue
		}
		// u→v was just listed by Successors.
		w, _ := r.g.Weight(u, v)
		if r.options.HasInfThreshold && w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if r.options.HasMaxDistance && nd > r.options.MaxDistance {
			continue
		}
		if cur, ok := r.res.Dist[v]; ok && nd >= cur {
			continue
		}
		r.res.Dist[v] = nd
		if r.res.Prev != nil {
			r.res.Prev[v] = u
		}
		r.push(v, nd)
	}
}

// nodeItem is a heap entry; seq breaks distance ties in push order.
type nodeItem[W Weight] struct {
	at   grid.Coord
	dist W
	seq  int
}

// nodePQ is a min-heap of *nodeItem ordered by (dist, seq).
// Outdated entries stay in the heap and are skipped when popped.
type nodePQ[W Weight] []*nodeItem[W]

func (pq nodePQ[W]) Len() int { return len(pq) }

func (pq nodePQ[W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ[W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[W])) }

func (pq *nodePQ[W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
