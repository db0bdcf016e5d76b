package entities

import (
	"hotpoints/domain/core/valueobjects"
)

// Connection is a directed link from the owning node to another location.
// A connection from A to B says nothing about a connection from B to A.
type Connection struct {
	To        valueobjects.NodeID `json:"to"`
	Distance  uint32              `json:"distance"`
	Direction string              `json:"direction"`
}

// Node is a named location in the graph
// Nodes are built once at load time and never change afterwards
type Node struct {
	// Private fields ensure encapsulation
	id          valueobjects.NodeID
	name        string
	kind        string
	connections []Connection
}

// NewNode creates a node owning a private copy of its connections.
// Connection order is preserved; path search relies on it for tie-breaks.
func NewNode(id valueobjects.NodeID, name, kind string, connections []Connection) *Node {
	conns := make([]Connection, len(connections))
	copy(conns, connections)

	return &Node{
		id:          id,
		name:        name,
		kind:        kind,
		connections: conns,
	}
}

// ID returns the node's identifier
func (n *Node) ID() valueobjects.NodeID {
	return n.id
}

// Name returns the human-readable name, which is not guaranteed to be unique
func (n *Node) Name() string {
	return n.name
}

// Type returns the optional category label ("office", "lab", ...)
func (n *Node) Type() string {
	return n.kind
}

// Connections returns the outgoing connections in declaration order
func (n *Node) Connections() []Connection {
	conns := make([]Connection, len(n.connections))
	copy(conns, n.connections)
	return conns
}

// OutDegree returns the number of outgoing connections
func (n *Node) OutDegree() int {
	return len(n.connections)
}

// ConnectionTo returns the first declared connection whose target is the given node
func (n *Node) ConnectionTo(target valueobjects.NodeID) (Connection, bool) {
	for _, conn := range n.connections {
		if conn.To == target {
			return conn, true
		}
	}
	return Connection{}, false
}

