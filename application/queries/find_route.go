package queries

import (
	"hotpoints/domain/core/aggregates"
	"hotpoints/domain/core/valueobjects"
	apperrors "hotpoints/pkg/errors"
)

// Client-facing messages for route validation failures
const (
	MsgInvalidFrom     = "Invalid or missing 'id_from'"
	MsgInvalidTo       = "Invalid or missing 'id_to'"
	MsgUnknownEndpoint = "Start or end node ID not found in map"
)

// FindRouteQuery asks for the fewest-hops route between two nodes
type FindRouteQuery struct {
	From valueobjects.NodeID
	To   valueobjects.NodeID
}

// Validate validates the FindRouteQuery. Any pair of NodeIDs is well formed;
// existence is checked against the graph by the handler.
func (q FindRouteQuery) Validate() error {
	return nil
}

// FindRouteResult represents the computed route
type FindRouteResult struct {
	Steps         []aggregates.Step `json:"steps"`
	TotalDistance uint64            `json:"totalDistance"`
}

// NewRouteQuery parses raw id_from / id_to values into a FindRouteQuery
func NewRouteQuery(rawFrom, rawTo string) (FindRouteQuery, error) {
	from, err := valueobjects.NewNodeIDFromString(rawFrom)
	if err != nil {
		return FindRouteQuery{}, apperrors.NewValidationError(MsgInvalidFrom).WithCause(err)
	}
	to, err := valueobjects.NewNodeIDFromString(rawTo)
	if err != nil {
		return FindRouteQuery{}, apperrors.NewValidationError(MsgInvalidTo).WithCause(err)
	}
	return FindRouteQuery{From: from, To: to}, nil
}
