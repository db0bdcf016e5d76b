package valueobjects

import (
	"errors"
	"strconv"
)

// ErrInvalidNodeID is returned when a string cannot be parsed into a NodeID
var ErrInvalidNodeID = errors.New("node ID must be a non-negative integer")

// NodeID is a value object identifying a location in the graph
// Value objects are immutable and have no identity beyond their value
type NodeID uint64

// NewNodeIDFromString parses a base-10 unsigned integer into a NodeID
func NewNodeIDFromString(id string) (NodeID, error) {
	if id == "" {
		return 0, ErrInvalidNodeID
	}
	value, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return 0, ErrInvalidNodeID
	}
	return NodeID(value), nil
}

// String returns the decimal representation of the NodeID
func (id NodeID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Uint64 returns the raw identifier
func (id NodeID) Uint64() uint64 {
	return uint64(id)
}
