package handlers

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hotpoints/application/ports"
	"hotpoints/application/queries"
	"hotpoints/domain/core/aggregates"
	apperrors "hotpoints/pkg/errors"
)

// ListLocationsHandler lists every location in the graph
type ListLocationsHandler struct {
	store  ports.GraphStore
	logger *zap.Logger
}

// NewListLocationsHandler creates a new list locations handler
func NewListLocationsHandler(store ports.GraphStore, logger *zap.Logger) *ListLocationsHandler {
	return &ListLocationsHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the list locations query
func (h *ListLocationsHandler) Handle(ctx context.Context, query queries.ListLocationsQuery) (*queries.ListLocationsResult, error) {
	nodes := h.store.Nodes()

	locations := make([]queries.LocationSummary, len(nodes))
	for i, node := range nodes {
		locations[i] = queries.LocationSummary{
			ID:   node.ID(),
			Name: node.Name(),
			Type: node.Type(),
		}
	}

	h.logger.Debug("Listed locations", zap.Int("count", len(locations)))

	return &queries.ListLocationsResult{Locations: locations}, nil
}

// GetLocationHandler returns a single location with its connections
type GetLocationHandler struct {
	store  ports.GraphStore
	logger *zap.Logger
}

// NewGetLocationHandler creates a new get location handler
func NewGetLocationHandler(store ports.GraphStore, logger *zap.Logger) *GetLocationHandler {
	return &GetLocationHandler{
		store:  store,
		logger: logger,
	}
}

// Handle executes the get location query
func (h *GetLocationHandler) Handle(ctx context.Context, query queries.GetLocationQuery) (*queries.GetLocationResult, error) {
	node, err := h.store.FindNode(query.ID)
	if err != nil {
		if errors.Is(err, aggregates.ErrNodeNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("Location %s not found", query.ID)).WithCause(err)
		}
		return nil, apperrors.NewInternalError("failed to load location").WithCause(err)
	}

	return &queries.GetLocationResult{
		ID:          node.ID(),
		Name:        node.Name(),
		Type:        node.Type(),
		Connections: node.Connections(),
	}, nil
}
