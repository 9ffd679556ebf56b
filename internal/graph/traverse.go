package graph

// TraversalNode is a node visited during traversal.
type TraversalNode struct {
	Key   string `json:"key"`
	Kind  Kind   `json:"kind"`
	Name  string `json:"name"`
	Depth int    `json:"depth"`
}

// TraversalResult holds the output of a graph traversal.
type TraversalResult struct {
	Nodes []TraversalNode `json:"nodes"`
	Edges []Edge          `json:"edges"`
	Stats TraversalStats  `json:"stats"`
}

// TraversalStats summarizes a traversal.
type TraversalStats struct {
	NodesVisited   int  `json:"nodes_visited"`
	EdgesTraversed int  `json:"edges_traversed"`
	Truncated      bool `json:"truncated"`
}

// Traverse performs a BFS from the given start key. direction is "forward"
// (outgoing edges) or "reverse" (incoming). maxDepth limits traversal depth
// (0 = default 5), maxNodes limits the returned node count (0 = default 100).
func (g *Graph) Traverse(start, direction string, maxDepth, maxNodes int) TraversalResult {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if maxDepth <= 0 {
		maxDepth = 5
	}
	if maxDepth > 20 {
		maxDepth = 20
	}
	if maxNodes <= 0 {
		maxNodes = 100
	}
	if maxNodes > 500 {
		maxNodes = 500
	}

	adj := make(map[string][]Edge)
	for _, e := range g.edges {
		if direction == "reverse" {
			adj[e.Target] = append(adj[e.Target], e)
		} else {
			adj[e.Source] = append(adj[e.Source], e)
		}
	}

	type queueItem struct {
		key   string
		depth int
	}

	var result TraversalResult
	visited := map[string]bool{start: true}
	queue := []queueItem{{key: start, depth: 0}}
	result.Nodes = append(result.Nodes, g.traversalNode(start, 0))

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.depth >= maxDepth {
			continue
		}

		for _, e := range adj[item.key] {
			result.Stats.EdgesTraversed++
			result.Edges = append(result.Edges, e)

			next := e.Target
			if direction == "reverse" {
				next = e.Source
			}
			if visited[next] {
				continue
			}
			visited[next] = true

			if len(result.Nodes) >= maxNodes {
				result.Stats.Truncated = true
				continue
			}
			result.Nodes = append(result.Nodes, g.traversalNode(next, item.depth+1))
			queue = append(queue, queueItem{key: next, depth: item.depth + 1})
		}
	}

	result.Stats.NodesVisited = len(visited)
	return result
}

func (g *Graph) traversalNode(key string, depth int) TraversalNode {
	tn := TraversalNode{Key: key, Depth: depth}
	if n, ok := g.nodes[key]; ok {
		tn.Kind = n.Kind
		tn.Name = n.Name
	}
	return tn
}
