package types

import (
	"errors"
	"fmt"
	"sort"
)

var ErrMalformedGoldTree = errors.New("malformed gold tree")

// GoldTree is the read-only reference tree consulted by the oracles.
// An edge (head, dep) means head is the gold head of dep.
type GoldTree interface {
	HasEdge(head, dep int) bool
}

type DepArc interface {
	GetHead() int
	GetModifier() int
	String() string
}

// BasicGoldTree stores at most one head per dependent, keyed by
// dependent id, plus every edge that was ever added so that malformed
// input (multiple heads) remains visible to Validate.
type BasicGoldTree struct {
	NumNodes int
	Heads    map[int]int
	Edges    map[[2]int]bool
}

var _ GoldTree = &BasicGoldTree{}

func NewBasicGoldTree(numNodes int) *BasicGoldTree {
	return &BasicGoldTree{
		NumNodes: numNodes,
		Heads:    make(map[int]int, numNodes),
		Edges:    make(map[[2]int]bool, numNodes),
	}
}

func (g *BasicGoldTree) AddEdge(head, dep int) {
	g.Edges[[2]int{head, dep}] = true
	if _, exists := g.Heads[dep]; !exists {
		g.Heads[dep] = head
	}
}

func (g *BasicGoldTree) HasEdge(head, dep int) bool {
	if g == nil {
		return false
	}
	return g.Edges[[2]int{head, dep}]
}

func (g *BasicGoldTree) Head(dep int) (int, bool) {
	head, exists := g.Heads[dep]
	return head, exists
}

func (g *BasicGoldTree) NumberOfEdges() int {
	return len(g.Edges)
}

// SortedEdges returns all edges ordered by dependent, then head
func (g *BasicGoldTree) SortedEdges() [][2]int {
	retval := make([][2]int, 0, len(g.Edges))
	for edge := range g.Edges {
		retval = append(retval, edge)
	}
	sort.Slice(retval, func(i, j int) bool {
		if retval[i][1] == retval[j][1] {
			return retval[i][0] < retval[j][0]
		}
		return retval[i][1] < retval[j][1]
	})
	return retval
}

// Validate checks the tree invariants the oracles assume: ids inside
// the sentence, exactly one head for each non-root node, none for the
// root, and no cycles.
func (g *BasicGoldTree) Validate() error {
	incoming := make(map[int]int, g.NumNodes)
	for _, edge := range g.SortedEdges() {
		head, dep := edge[0], edge[1]
		if head < 0 || head >= g.NumNodes || dep < 0 || dep >= g.NumNodes {
			return fmt.Errorf("%w: edge (%d,%d) outside of %d nodes", ErrMalformedGoldTree, head, dep, g.NumNodes)
		}
		if dep == ROOT_ID {
			return fmt.Errorf("%w: root has head %d", ErrMalformedGoldTree, head)
		}
		incoming[dep]++
	}
	for dep := 1; dep < g.NumNodes; dep++ {
		if incoming[dep] != 1 {
			return fmt.Errorf("%w: node %d has %d heads", ErrMalformedGoldTree, dep, incoming[dep])
		}
	}
	for dep := 1; dep < g.NumNodes; dep++ {
		seen := make(map[int]bool)
		for cur := dep; cur != ROOT_ID; {
			if seen[cur] {
				return fmt.Errorf("%w: cycle through node %d", ErrMalformedGoldTree, dep)
			}
			seen[cur] = true
			cur = g.Heads[cur]
		}
	}
	return nil
}

// IsProjective reports whether no two gold arcs cross when nodes are laid
// out in id order. Only meaningful for trees that pass Validate.
func (g *BasicGoldTree) IsProjective() bool {
	for dep1, head1 := range g.Heads {
		l1, r1 := span(head1, dep1)
		for dep2, head2 := range g.Heads {
			l2, r2 := span(head2, dep2)
			if l1 < l2 && l2 < r1 && r1 < r2 {
				return false
			}
		}
	}
	return true
}

func span(a, b int) (int, int) {
	if a < b {
		return a, b
	}
	return b, a
}
