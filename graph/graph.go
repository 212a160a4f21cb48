// Package graph holds the typed knowledge graph: nodes with definitions
// and aliases, weighted directed relationships, bounded traversal, and
// answer composition.
package graph

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrDuplicateNode is returned when two nodes share an id.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrDanglingEdge is returned when an edge references a missing node.
	ErrDanglingEdge = errors.New("graph: edge references unknown node")

	// ErrBadWeight is returned for edge weights outside (0,1].
	ErrBadWeight = errors.New("graph: edge weight must be in (0,1]")
)

// visitedCap is the hard bound on distinct nodes a traversal may visit,
// so cyclic graphs always terminate.
const visitedCap = 10

// Node is one unit of structured knowledge. Node ids are unique and
// stable; the graph is immutable after construction.
type Node struct {
	ID            string   `json:"id" yaml:"id"`
	Name          string   `json:"name" yaml:"name"`
	Aliases       []string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Definition    string   `json:"definition" yaml:"definition"`
	Category      string   `json:"category,omitempty" yaml:"category,omitempty"`
	Description   string   `json:"description,omitempty" yaml:"description,omitempty"`
	Applications  []string `json:"applications,omitempty" yaml:"applications,omitempty"`
	Prerequisites []string `json:"prerequisites,omitempty" yaml:"prerequisites,omitempty"`
}

// Edge is a directed, weighted relationship between two nodes.
type Edge struct {
	Source      string  `json:"source" yaml:"source"`
	Target      string  `json:"target" yaml:"target"`
	Type        string  `json:"type" yaml:"type"`
	Weight      float64 `json:"weight" yaml:"weight"`
	Description string  `json:"description,omitempty" yaml:"description,omitempty"`
}

// Related is one traversal result: a reachable node with the edge that
// led to it and the hop depth at which it was found.
type Related struct {
	Node     *Node
	Relation string
	Weight   float64
	Depth    int
}

// Answer is a composed knowledge answer. A miss is a valid result with
// Success=false and zero confidence, never an error.
type Answer struct {
	Success      bool     `json:"success"`
	Answer       string   `json:"answer"`
	RelatedNodes []string `json:"related_nodes,omitempty"`
	Confidence   float64  `json:"confidence"`
}

// Graph is the immutable knowledge graph snapshot.
type Graph struct {
	nodes map[string]*Node
	order []string // node ids in declaration order
	edges []Edge
	// adjacency over edge indices, both directions; traversal treats
	// relationships as navigable either way.
	adj map[string][]int
}

// New validates nodes and edges and builds the adjacency index.
func New(nodes []Node, edges []Edge) (*Graph, error) {
	g := &Graph{
		nodes: make(map[string]*Node, len(nodes)),
		adj:   make(map[string][]int),
	}
	for i := range nodes {
		n := &nodes[i]
		if _, exists := g.nodes[n.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, n.ID)
		}
		g.nodes[n.ID] = n
		g.order = append(g.order, n.ID)
	}
	for i, e := range edges {
		if _, ok := g.nodes[e.Source]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, e.Source, e.Target)
		}
		if _, ok := g.nodes[e.Target]; !ok {
			return nil, fmt.Errorf("%w: %s -> %s", ErrDanglingEdge, e.Source, e.Target)
		}
		if e.Weight <= 0 || e.Weight > 1 {
			return nil, fmt.Errorf("%w: %s -> %s (%v)", ErrBadWeight, e.Source, e.Target, e.Weight)
		}
		g.edges = append(g.edges, e)
		g.adj[e.Source] = append(g.adj[e.Source], i)
		g.adj[e.Target] = append(g.adj[e.Target], i)
	}
	return g, nil
}

// Node returns a node by id.
func (g *Graph) Node(id string) *Node {
	return g.nodes[id]
}

// Len returns the node count.
func (g *Graph) Len() int {
	return len(g.order)
}

// FindNode matches a free-text query to the best-scoring node: exact
// name or id match scores 1.0, alias substring match 0.8, and partial
// word overlap 0.5 times the overlap ratio. Returns nil when nothing
// scores above zero.
func (g *Graph) FindNode(query string) *Node {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	qWords := strings.Fields(q)

	var best *Node
	bestScore := 0.0
	for _, id := range g.order {
		n := g.nodes[id]
		score := 0.0

		if q == strings.ToLower(n.Name) || q == strings.ToLower(n.ID) {
			score += 1.0
		}
		for _, alias := range n.Aliases {
			a := strings.ToLower(alias)
			if a == q || strings.Contains(q, a) || strings.Contains(a, q) {
				score += 0.8
				break
			}
		}
		if ratio := wordOverlap(qWords, strings.Fields(strings.ToLower(n.Name))); ratio > 0 {
			score += 0.5 * ratio
		}

		if score > bestScore {
			bestScore = score
			best = n
		}
	}
	return best
}

func wordOverlap(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	matched := 0
	for _, w := range a {
		for _, v := range b {
			if w == v {
				matched++
				break
			}
		}
	}
	denom := len(a)
	if len(b) > denom {
		denom = len(b)
	}
	return float64(matched) / float64(denom)
}

// RelatedConcepts walks the relationship list breadth-first from the
// node, bounded by maxDepth hops and the hard visited-node cap, then
// returns reachable nodes sorted descending by edge weight. Depth 0 or
// an unknown id yields an empty result.
func (g *Graph) RelatedConcepts(nodeID string, maxDepth int) []Related {
	start, ok := g.nodes[nodeID]
	if !ok || maxDepth <= 0 {
		return nil
	}

	visited := map[string]bool{start.ID: true}
	frontier := []string{start.ID}
	var results []Related

	for depth := 1; depth <= maxDepth && len(frontier) > 0; depth++ {
		var next []string
		for _, id := range frontier {
			for _, ei := range g.adj[id] {
				e := g.edges[ei]
				neighbor := e.Target
				if neighbor == id {
					neighbor = e.Source
				}
				if visited[neighbor] {
					continue
				}
				if len(visited) >= visitedCap {
					break
				}
				visited[neighbor] = true
				next = append(next, neighbor)
				results = append(results, Related{
					Node:     g.nodes[neighbor],
					Relation: e.Type,
					Weight:   e.Weight,
					Depth:    depth,
				})
			}
		}
		frontier = next
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Weight > results[j].Weight
	})
	return results
}

// AnswerQuestion composes an answer for a free-text question: the
// matched node's definition, its expanded description, up to three
// related concepts, then applications and prerequisites when present.
// Confidence grows with related-concept count, capped at 0.95.
func (g *Graph) AnswerQuestion(question string) Answer {
	node := g.FindNode(question)
	if node == nil {
		return Answer{Success: false, Answer: "not_found", Confidence: 0}
	}

	related := g.RelatedConcepts(node.ID, 1)

	var b strings.Builder
	b.WriteString(node.Name)
	b.WriteString(" adalah ")
	b.WriteString(node.Definition)
	if node.Description != "" {
		b.WriteString(" ")
		b.WriteString(node.Description)
	}

	relatedNames := make([]string, 0, len(related))
	if len(related) > 0 {
		b.WriteString(" Konsep terkait: ")
		shown := related
		if len(shown) > 3 {
			shown = shown[:3]
		}
		for i, r := range shown {
			if i > 0 {
				b.WriteString("; ")
			}
			b.WriteString(r.Node.Name)
			b.WriteString(" (")
			b.WriteString(r.Node.Definition)
			b.WriteString(")")
		}
		b.WriteString(".")
		for _, r := range related {
			relatedNames = append(relatedNames, r.Node.ID)
		}
	}
	if len(node.Applications) > 0 {
		b.WriteString(" Penerapan: ")
		b.WriteString(strings.Join(node.Applications, ", "))
		b.WriteString(".")
	}
	if len(node.Prerequisites) > 0 {
		b.WriteString(" Prasyarat: ")
		b.WriteString(strings.Join(node.Prerequisites, ", "))
		b.WriteString(".")
	}

	confidence := 0.7 + 0.1*float64(len(related))
	if confidence > 0.95 {
		confidence = 0.95
	}
	return Answer{
		Success:      true,
		Answer:       b.String(),
		RelatedNodes: relatedNames,
		Confidence:   confidence,
	}
}
