package referral

import (
	"fmt"
	"iter"
)

const noParent = -1

type node struct {
	id       int64
	parent   int
	children []int
}

// Graph is an arena of accounts where each slot stores its parent's slot. A node can only
// be added after its parent, and never re-parented, so the structure is always a forest.
type Graph struct {
	nodes []node
	index map[int64]int
}

type Ancestor struct {
	ID    int64
	Depth int
}

func New() *Graph {
	return &Graph{index: make(map[int64]int)}
}

// Add appends id under parent. parent == nil makes id a root.
func (g *Graph) Add(id int64, parent *int64) error {
	if _, ok := g.index[id]; ok {
		return fmt.Errorf("account %d already in graph", id)
	}
	p := noParent
	if parent != nil {
		slot, ok := g.index[*parent]
		if !ok {
			return fmt.Errorf("parent %d of account %d not in graph", *parent, id)
		}
		p = slot
	}
	slot := len(g.nodes)
	g.nodes = append(g.nodes, node{id: id, parent: p})
	g.index[id] = slot
	if p != noParent {
		g.nodes[p].children = append(g.nodes[p].children, slot)
	}
	return nil
}

func (g *Graph) Has(id int64) bool {
	_, ok := g.index[id]
	return ok
}

func (g *Graph) Len() int {
	return len(g.nodes)
}

// Parent returns the direct referrer of id.
func (g *Graph) Parent(id int64) (int64, bool) {
	slot, ok := g.index[id]
	if !ok || g.nodes[slot].parent == noParent {
		return 0, false
	}
	return g.nodes[g.nodes[slot].parent].id, true
}

// Ancestors yields (ancestor, depth) pairs from the direct referrer (depth 1) upward, stopping
// at maxDepth or the root. The sequence can be ranged over any number of times.
func (g *Graph) Ancestors(id int64, maxDepth int) iter.Seq[Ancestor] {
	return func(yield func(Ancestor) bool) {
		slot, ok := g.index[id]
		if !ok {
			return
		}
		for depth := 1; depth <= maxDepth; depth++ {
			slot = g.nodes[slot].parent
			if slot == noParent {
				return
			}
			if !yield(Ancestor{ID: g.nodes[slot].id, Depth: depth}) {
				return
			}
		}
	}
}

// TeamCounts returns, for depth 1..maxDepth, how many accounts sit exactly that far below id.
func (g *Graph) TeamCounts(id int64, maxDepth int) []int {
	counts := make([]int, maxDepth)
	slot, ok := g.index[id]
	if !ok {
		return counts
	}
	level := []int{slot}
	for depth := 0; depth < maxDepth && len(level) > 0; depth++ {
		var next []int
		for _, s := range level {
			next = append(next, g.nodes[s].children...)
		}
		counts[depth] = len(next)
		level = next
	}
	return counts
}

// IDs returns every account in insertion order.
func (g *Graph) IDs() []int64 {
	ids := make([]int64, len(g.nodes))
	for i, n := range g.nodes {
		ids[i] = n.id
	}
	return ids
}
