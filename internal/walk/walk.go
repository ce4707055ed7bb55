// Package walk generates symbol sequences by random walks over a graph.
package walk

import (
	"errors"
	"fmt"
	"math/rand"

	"golang.org/x/exp/slices"
)

var (
	ErrEmptyGraph = errors.New("walk: graph has no nodes")
	ErrDeadEnd    = errors.New("walk: node has no neighbors")
)

// Graph is a directed graph given as adjacency lists.  Nodes keep the order
// in which they were added, so a walk driven by a seeded *rand.Rand is
// reproducible.
type Graph[N comparable] struct {
	nodes []N
	adj   map[N][]N
}

// AddNode adds node to the graph, if not already present, and appends the
// given neighbors to its adjacency list.  Neighbors need not be added as
// nodes themselves, but a walk that reaches such a neighbor ends with
// ErrDeadEnd.
func (g *Graph[N]) AddNode(node N, neighbors ...N) {
	if g.adj == nil {
		g.adj = make(map[N][]N)
	}
	list, found := g.adj[node]
	if !found {
		g.nodes = append(g.nodes, node)
	}
	g.adj[node] = append(list, neighbors...)
}

// Len returns the number of nodes.
func (g *Graph[N]) Len() int {
	return len(g.nodes)
}

// Nodes returns the nodes in the order they were added.
func (g *Graph[N]) Nodes() []N {
	return slices.Clone(g.nodes)
}

// Neighbors returns the adjacency list of node.
func (g *Graph[N]) Neighbors(node N) []N {
	return slices.Clone(g.adj[node])
}

// Walk picks a node of g uniformly at random, then moves to a uniformly
// random neighbor of the current node until it has visited steps nodes,
// counting the start.  Nodes may repeat.
//
// If steps <= 0, Walk returns nil.
//
func Walk[N comparable](g *Graph[N], steps int, rng *rand.Rand) ([]N, error) {
	if steps <= 0 {
		return nil, nil
	}
	if len(g.nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	out := make([]N, 0, steps)
	current := g.nodes[rng.Intn(len(g.nodes))]
	out = append(out, current)
	for len(out) < steps {
		neighbors := g.adj[current]
		if len(neighbors) == 0 {
			return nil, fmt.Errorf("%w: %v after %d steps", ErrDeadEnd, current, len(out))
		}
		current = neighbors[rng.Intn(len(neighbors))]
		out = append(out, current)
	}
	return out, nil
}
