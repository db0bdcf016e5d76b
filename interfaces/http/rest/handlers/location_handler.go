package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"hotpoints/application/queries"
	querybus "hotpoints/application/queries/bus"
	"hotpoints/domain/core/valueobjects"
	apperrors "hotpoints/pkg/errors"
)

// LocationHandler serves read-only views of the map
type LocationHandler struct {
	queryBus     *querybus.QueryBus
	errorHandler *apperrors.ErrorHandler
	logger       *zap.Logger
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(
	queryBus *querybus.QueryBus,
	errorHandler *apperrors.ErrorHandler,
	logger *zap.Logger,
) *LocationHandler {
	return &LocationHandler{
		queryBus:     queryBus,
		errorHandler: errorHandler,
		logger:       logger,
	}
}

// ListLocations handles GET /locations
func (h *LocationHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	result, err := h.queryBus.Ask(r.Context(), queries.ListLocationsQuery{})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	list, ok := result.(*queries.ListLocationsResult)
	if !ok {
		h.errorHandler.Handle(w, r, apperrors.NewInternalError("unexpected locations result"))
		return
	}

	RespondJSON(w, http.StatusOK, list.Locations, h.logger)
}

// GetLocation handles GET /locations/{locationID}
func (h *LocationHandler) GetLocation(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "locationID")

	id, err := valueobjects.NewNodeIDFromString(raw)
	if err != nil {
		h.errorHandler.Handle(w, r, apperrors.NewValidationError("Invalid location ID").
			WithDetails(map[string]interface{}{"id": raw}).
			WithCause(err))
		return
	}

	result, err := h.queryBus.Ask(r.Context(), queries.GetLocationQuery{ID: id})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	RespondJSON(w, http.StatusOK, result, h.logger)
}
