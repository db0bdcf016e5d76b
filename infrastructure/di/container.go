package di

import (
	"go.uber.org/zap"

	"hotpoints/application/ports"
	querybus "hotpoints/application/queries/bus"
	"hotpoints/domain/core/aggregates"
	"hotpoints/infrastructure/config"
	apperrors "hotpoints/pkg/errors"
	"hotpoints/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config       *config.Config
	Logger       *zap.Logger
	Graph        *aggregates.Graph
	QueryBus     *querybus.QueryBus
	Cache        ports.Cache
	Metrics      *observability.QueryMetrics
	CloudMetrics *observability.Metrics
	Tracer       *observability.Tracer
	ErrorHandler *apperrors.ErrorHandler
}
