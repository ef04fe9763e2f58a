package gridgraph

import "github.com/katalvlaran/gridkit/grid"

// Components finds the weakly connected components of g: edge direction is
// ignored. Components are seeded in node order and each lists its nodes in
// BFS discovery order. Isolated nodes form singleton components.
//
// Time:   O(V + E).
// Memory: O(V + E) for the visited set and, on directed graphs, reverse links.
func (g *Graph[W]) Components() [][]grid.Coord {
	var in map[grid.Coord][]grid.Coord
	if g.directed {
		in = make(map[grid.Coord][]grid.Coord, len(g.nodes))
		for _, k := range g.order {
			in[k.to] = append(in[k.to], k.from)
		}
	}

	seen := make(map[grid.Coord]bool, len(g.nodes))
	var comps [][]grid.Coord
	for _, seed := range g.nodes {
		if seen[seed] {
			continue
		}
		// BFS to collect component
		queue := []grid.Coord{seed}
		seen[seed] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			for _, links := range [2][]grid.Coord{g.out[u], in[u]} {
				for _, v := range links {
					if !seen[v] {
						seen[v] = true
						queue = append(queue, v)
					}
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
