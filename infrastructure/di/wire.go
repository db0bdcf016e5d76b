//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"

	"hotpoints/application/ports"
	"hotpoints/domain/core/aggregates"
	"hotpoints/infrastructure/config"
)

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideGraph,
	wire.Bind(new(ports.GraphStore), new(*aggregates.Graph)),
	ProvideTracer,
	ProvideCloudWatchClient,
	ProvideCloudMetrics,
	ProvideQueryMetrics,
	ProvideInMemoryCache,
	ProvideErrorHandler,
	ProvideQueryBus,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container. The returned cleanup
// stops background work owned by the container.
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, func(), error) {
	wire.Build(SuperSet)
	return nil, nil, nil // Wire will replace this
}
