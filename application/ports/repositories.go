package ports

import (
	"context"

	"hotpoints/domain/core/aggregates"
	"hotpoints/domain/core/entities"
	"hotpoints/domain/core/valueobjects"
)

// GraphStore is the read-only view of the location graph used by queries.
// Implementations must be safe for concurrent readers.
type GraphStore interface {
	// Contains reports whether a node with the given ID exists
	Contains(id valueobjects.NodeID) bool

	// FindNode retrieves a node by its ID
	FindNode(id valueobjects.NodeID) (*entities.Node, error)

	// Nodes returns all nodes in load order
	Nodes() []*entities.Node

	// FindPath computes a fewest-hops route between two existing nodes
	FindPath(start, end valueobjects.NodeID) (aggregates.Path, error)
}

// Cache defines the interface for caching query results
type Cache interface {
	Get(ctx context.Context, key string) (interface{}, bool)
	Set(ctx context.Context, key string, value interface{}, ttl int) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

var _ GraphStore = (*aggregates.Graph)(nil)
