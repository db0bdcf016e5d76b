package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"hotpoints/application/queries"
	querybus "hotpoints/application/queries/bus"
	apperrors "hotpoints/pkg/errors"
)

// RouteHandler serves route lookups
type RouteHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(
	queryBus *querybus.QueryBus,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *RouteHandler {
	return &RouteHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// GetRoute handles GET /route?id_from=..&id_to=..
// Success is a JSON array of steps; every failure is a plain-text message.
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query, err := queries.NewRouteQuery(params.Get("id_from"), params.Get("id_to"))
	if err != nil {
		h.errorHandler.HandleText(w, r, err)
		return
	}

	result, err := h.queryBus.Ask(r.Context(), query)
	if err != nil {
		h.errorHandler.HandleText(w, r, err)
		return
	}

	route, ok := result.(*queries.FindRouteResult)
	if !ok {
		h.errorHandler.HandleText(w, r, apperrors.NewInternalError("unexpected route result"))
		return
	}

	RespondJSON(w, http.StatusOK, route.Steps, h.logger)
}

// RespondJSON writes data as a JSON body with the given status
func RespondJSON(w http.ResponseWriter, status int, data interface{}, logger *zap.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode response", zap.Error(err))
	}
}
