package walk

import (
	"errors"
	"math/rand"
	"testing"

	"golang.org/x/exp/slices"
)

func makeTestGraph() *Graph[string] {
	var g Graph[string]
	g.AddNode("a", "b", "c")
	g.AddNode("b", "a")
	g.AddNode("c", "a", "b")
	return &g
}

func TestWalk(t *testing.T) {
	g := makeTestGraph()

	path, err := Walk(g, 500, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(path) != 500 {
		t.Fatalf("expected 500 nodes, got %d", len(path))
	}
	if !slices.Contains(g.Nodes(), path[0]) {
		t.Errorf("walk started at unknown node %q", path[0])
	}
	for i := 1; i < len(path); i++ {
		if !slices.Contains(g.Neighbors(path[i-1]), path[i]) {
			t.Errorf("step %d: %q is not a neighbor of %q", i, path[i], path[i-1])
		}
	}

	again, err := Walk(g, 500, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if !slices.Equal(path, again) {
		t.Errorf("same seed produced different walks")
	}
}

func TestWalk_Edges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	path, err := Walk(makeTestGraph(), 0, rng)
	if path != nil || err != nil {
		t.Errorf("expected nil, nil for zero steps, got %v, %v", path, err)
	}

	var empty Graph[int]
	_, err = Walk(&empty, 3, rng)
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("expected ErrEmptyGraph, got %v", err)
	}

	var dead Graph[string]
	dead.AddNode("x", "y")
	path, err = Walk(&dead, 2, rng)
	if err != nil || !slices.Equal(path, []string{"x", "y"}) {
		t.Errorf("expected [x y], got %v, %v", path, err)
	}
	_, err = Walk(&dead, 3, rng)
	if !errors.Is(err, ErrDeadEnd) {
		t.Errorf("expected ErrDeadEnd, got %v", err)
	}
}

func TestGraph_AddNode(t *testing.T) {
	var g Graph[int]
	g.AddNode(1, 2)
	g.AddNode(2, 1)
	g.AddNode(1, 3)

	if g.Len() != 2 || !slices.Equal(g.Nodes(), []int{1, 2}) {
		t.Errorf("wrong nodes: %v", g.Nodes())
	}
	if !slices.Equal(g.Neighbors(1), []int{2, 3}) {
		t.Errorf("wrong neighbors: %v", g.Neighbors(1))
	}
}
