package graph

import (
	"strings"
	"sync"
)

// Graph is the directed property graph assembled during a run. It is
// append-only: nodes and edges are created lazily, attributes are fixed at
// first insertion, and nothing is ever removed. Per-kind counters track
// distinct node creations and are incremented only inside UpsertNode.
type Graph struct {
	mu       sync.RWMutex
	nodes    map[string]*Node
	order    []string // node keys in insertion order, for stable serialization
	edges    []Edge
	edgeSeen map[Edge]struct{}
	counts   map[Kind]int
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		edgeSeen: make(map[Edge]struct{}),
		counts:   make(map[Kind]int),
	}
}

// NodeKey derives the identity key for a node from its kind, name, and the
// key of its nearest enclosing node (empty for globally scoped nodes such as
// packages, types, imports, and dependencies). Keys are prefixed with the
// kind so same-named nodes of different kinds never collide, and context
// keys nest, so the full enclosing chain is encoded.
func NodeKey(kind Kind, name, contextKey string) string {
	if contextKey == "" {
		return string(kind) + ": " + name
	}
	return string(kind) + ": " + name + " (" + contextKey + ")"
}

// UpsertNode inserts a node if its key is not yet present and reports whether
// the node already existed. Attributes are first-writer-wins: a repeat
// sighting never overwrites them. The kind counter is incremented exactly
// once, at the moment of first insertion.
func (g *Graph) UpsertNode(key string, kind Kind, name string, attrs map[string]any) (existed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.nodes[key]; ok {
		return true
	}
	g.nodes[key] = &Node{Key: key, Kind: kind, Name: name, Attrs: attrs}
	g.order = append(g.order, key)
	g.counts[kind]++
	return false
}

// UpsertEdge inserts a directed labeled edge. A given (source, target,
// relation) triple is recorded at most once.
func (g *Graph) UpsertEdge(source, target string, rel Relation) (existed bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	e := Edge{Source: source, Target: target, Relation: rel}
	if _, ok := g.edgeSeen[e]; ok {
		return true
	}
	g.edgeSeen[e] = struct{}{}
	g.edges = append(g.edges, e)
	return false
}

// Node returns the node for the given key.
func (g *Graph) Node(key string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make([]Node, 0, len(g.order))
	for _, key := range g.order {
		result = append(result, *g.nodes[key])
	}
	return result
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make([]Edge, len(g.edges))
	copy(result, g.edges)
	return result
}

// NodeCount returns the number of distinct nodes.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.edges)
}

// Count returns the number of distinct nodes of the given kind created so far.
func (g *Graph) Count(kind Kind) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.counts[kind]
}

// Counts returns a copy of the per-kind node counters.
func (g *Graph) Counts() map[Kind]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	result := make(map[Kind]int, len(g.counts))
	for k, v := range g.counts {
		result[k] = v
	}
	return result
}

// ByKind returns all nodes of the given kind in insertion order.
func (g *Graph) ByKind(kind Kind) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	var result []Node
	for _, key := range g.order {
		if n := g.nodes[key]; n.Kind == kind {
			result = append(result, *n)
		}
	}
	return result
}

// Query returns nodes matching the provided filters. Empty filter values are
// ignored. Name matches by substring; kind matches exactly.
func (g *Graph) Query(kind Kind, name string, limit int) []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if limit <= 0 {
		limit = 100
	}
	var result []Node
	for _, key := range g.order {
		n := g.nodes[key]
		if kind != "" && n.Kind != kind {
			continue
		}
		if name != "" && !strings.Contains(n.Name, name) {
			continue
		}
		result = append(result, *n)
		if len(result) >= limit {
			break
		}
	}
	return result
}

// Clear removes all nodes, edges, and counters.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes = make(map[string]*Node)
	g.order = nil
	g.edges = nil
	g.edgeSeen = make(map[Edge]struct{})
	g.counts = make(map[Kind]int)
}
