package aggregates

import (
	"errors"
	"fmt"

	"hotpoints/domain/core/entities"
	"hotpoints/domain/core/valueobjects"
)

var (
	// ErrNodeNotFound is returned when an identifier names no node in the graph
	ErrNodeNotFound = errors.New("node not found")

	// ErrDuplicateNode is returned when two nodes share an identifier
	ErrDuplicateNode = errors.New("duplicate node id")
)

// Graph is the aggregate root for the location map.
// It is built once and never mutated, so it is safe to share between
// goroutines without locking.
type Graph struct {
	nodes []*entities.Node
	index map[valueobjects.NodeID]*entities.Node
}

// NewGraph creates a graph from nodes in their load order
func NewGraph(nodes []*entities.Node) (*Graph, error) {
	graph := &Graph{
		nodes: make([]*entities.Node, 0, len(nodes)),
		index: make(map[valueobjects.NodeID]*entities.Node, len(nodes)),
	}

	for _, node := range nodes {
		if node == nil {
			return nil, errors.New("graph cannot contain a nil node")
		}
		if _, exists := graph.index[node.ID()]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateNode, node.ID())
		}
		graph.index[node.ID()] = node
		graph.nodes = append(graph.nodes, node)
	}

	return graph, nil
}

// Len returns the number of nodes
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes returns all nodes in load order
func (g *Graph) Nodes() []*entities.Node {
	nodes := make([]*entities.Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Contains reports whether some node has the given identifier
func (g *Graph) Contains(id valueobjects.NodeID) bool {
	_, exists := g.index[id]
	return exists
}

// FindNode retrieves a node by identifier
func (g *Graph) FindNode(id valueobjects.NodeID) (*entities.Node, error) {
	node, exists := g.index[id]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNodeNotFound, id)
	}
	return node, nil
}

// EdgeCount returns the total number of declared connections
func (g *Graph) EdgeCount() int {
	count := 0
	for _, node := range g.nodes {
		count += node.OutDegree()
	}
	return count
}

// mustNode is used where a node has to exist for the graph to be consistent
func (g *Graph) mustNode(id valueobjects.NodeID) *entities.Node {
	node, exists := g.index[id]
	if !exists {
		panic(fmt.Sprintf("graph invariant violated: node %s on a discovered path is missing", id))
	}
	return node
}
