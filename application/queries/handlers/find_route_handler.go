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
	"hotpoints/pkg/observability"
)

// FindRouteHandler computes fewest-hops routes over the loaded graph
type FindRouteHandler struct {
	store  ports.GraphStore
	tracer *observability.Tracer
	logger *zap.Logger
}

// NewFindRouteHandler creates a new route handler. tracer may be nil.
func NewFindRouteHandler(store ports.GraphStore, tracer *observability.Tracer, logger *zap.Logger) *FindRouteHandler {
	return &FindRouteHandler{
		store:  store,
		tracer: tracer,
		logger: logger,
	}
}

// Handle executes the route query
func (h *FindRouteHandler) Handle(ctx context.Context, query queries.FindRouteQuery) (*queries.FindRouteResult, error) {
	if !h.store.Contains(query.From) || !h.store.Contains(query.To) {
		return nil, apperrors.NewValidationError(queries.MsgUnknownEndpoint).
			WithDetails(map[string]interface{}{
				"id_from": query.From.String(),
				"id_to":   query.To.String(),
			})
	}

	var path aggregates.Path
	err := h.tracer.TraceFunction(ctx, "FindPath", func(ctx context.Context) error {
		h.tracer.AddAnnotation(ctx, "id_from", query.From.String())
		h.tracer.AddAnnotation(ctx, "id_to", query.To.String())

		var err error
		path, err = h.store.FindPath(query.From, query.To)
		return err
	})

	switch {
	case err == nil:
	case errors.Is(err, aggregates.ErrNoRoute):
		return nil, apperrors.NewNotFoundError(
			fmt.Sprintf("No route from node %s to node %s", query.From, query.To),
		).WithCause(err)
	case errors.Is(err, aggregates.ErrNodeNotFound):
		return nil, apperrors.NewValidationError(queries.MsgUnknownEndpoint).WithCause(err)
	default:
		return nil, apperrors.NewInternalError("route search failed").WithCause(err)
	}

	h.logger.Debug("Route computed",
		zap.Stringer("from", query.From),
		zap.Stringer("to", query.To),
		zap.Int("hops", path.Hops()),
	)

	return &queries.FindRouteResult{
		Steps:         path,
		TotalDistance: path.TotalDistance(),
	}, nil
}
