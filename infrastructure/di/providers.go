package di

import (
	"context"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"go.uber.org/zap"

	"hotpoints/application/ports"
	"hotpoints/application/queries"
	querybus "hotpoints/application/queries/bus"
	queries_handlers "hotpoints/application/queries/handlers"
	"hotpoints/domain/core/aggregates"
	"hotpoints/infrastructure/config"
	"hotpoints/infrastructure/persistence/jsonfile"
	apperrors "hotpoints/pkg/errors"
	"hotpoints/pkg/observability"
)

const serviceName = "hotpoints"

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	zapCfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zapCfg = zap.NewProductionConfig()
	}
	zapCfg.Level = level

	return zapCfg.Build(zap.Fields(zap.String("service", serviceName)))
}

// ProvideGraph loads the location graph. Any failure here stops startup.
func ProvideGraph(cfg *config.Config, logger *zap.Logger) (*aggregates.Graph, error) {
	start := time.Now()

	graph, err := jsonfile.Load(cfg.GraphFile)
	if err != nil {
		return nil, err
	}

	logger.Info("Graph loaded",
		zap.String("file", cfg.GraphFile),
		zap.Int("nodes", graph.Len()),
		zap.Int("connections", graph.EdgeCount()),
		zap.Duration("took", time.Since(start)),
	)

	return graph, nil
}

// ProvideTracer creates the X-Ray tracer
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(serviceName, cfg.EnableTracing)
}

// ProvideCloudWatchClient creates a CloudWatch client, or nil when no
// namespace is configured
func ProvideCloudWatchClient(ctx context.Context, cfg *config.Config) (observability.MetricPublisher, error) {
	if cfg.CloudWatchNamespace == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return awscloudwatch.NewFromConfig(awsCfg), nil
}

// ProvideCloudMetrics creates the CloudWatch metrics publisher
func ProvideCloudMetrics(client observability.MetricPublisher, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	return observability.NewMetrics(cfg.CloudWatchNamespace, client, logger)
}

// ProvideQueryMetrics creates the Prometheus collectors
func ProvideQueryMetrics(cloud *observability.Metrics) *observability.QueryMetrics {
	return observability.NewQueryMetrics(serviceName, cloud)
}

// ProvideInMemoryCache creates the query result cache and its cleanup
func ProvideInMemoryCache() (ports.Cache, func()) {
	cache := NewInMemoryCache(time.Minute)
	return cache, cache.Stop
}

// ProvideErrorHandler creates the HTTP error renderer
func ProvideErrorHandler(cfg *config.Config, logger *zap.Logger) *apperrors.ErrorHandler {
	return apperrors.NewErrorHandler(logger, cfg.IsDevelopment())
}

// QueryHandlerAdapter adapts specific query handlers to the generic interface
type QueryHandlerAdapter struct {
	handler func(context.Context, querybus.Query) (interface{}, error)
}

func (a *QueryHandlerAdapter) Handle(ctx context.Context, query querybus.Query) (interface{}, error) {
	return a.handler(ctx, query)
}

// metricsAdapter exposes QueryMetrics through the bus.Metrics interface
type metricsAdapter struct {
	metrics *observability.QueryMetrics
}

func (a metricsAdapter) StartTimer(metric, label string) querybus.Timer {
	return a.metrics.StartTimer(metric, label)
}

func (a metricsAdapter) Increment(metric, label string) {
	a.metrics.Increment(metric, label)
}

// ProvideQueryBus creates a query bus with registered handlers
func ProvideQueryBus(
	store ports.GraphStore,
	cache ports.Cache,
	metrics *observability.QueryMetrics,
	tracer *observability.Tracer,
	cfg *config.Config,
	logger *zap.Logger,
) (*querybus.QueryBus, error) {
	queryBus := querybus.NewQueryBus()
	instrument := querybus.NewMetricsMiddleware(metricsAdapter{metrics})

	findRoute := queries_handlers.NewFindRouteHandler(store, tracer, logger)

	// Routes depend only on the ids and the immutable graph
	var routeHandler querybus.QueryHandler = &QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			routeQuery, ok := query.(queries.FindRouteQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return findRoute.Handle(ctx, routeQuery)
		},
	}
	if cfg.RouteCacheTTL > 0 {
		routeHandler = querybus.NewCachingMiddleware(cache, cfg.RouteCacheTTL).Wrap(routeHandler)
	}
	if err := queryBus.Register(queries.FindRouteQuery{}, instrument.Wrap(routeHandler)); err != nil {
		return nil, err
	}

	listHandler := queries_handlers.NewListLocationsHandler(store, logger)
	if err := queryBus.Register(queries.ListLocationsQuery{}, instrument.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			listQuery, ok := query.(queries.ListLocationsQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return listHandler.Handle(ctx, listQuery)
		},
	})); err != nil {
		return nil, err
	}

	getHandler := queries_handlers.NewGetLocationHandler(store, logger)
	if err := queryBus.Register(queries.GetLocationQuery{}, instrument.Wrap(&QueryHandlerAdapter{
		handler: func(ctx context.Context, query querybus.Query) (interface{}, error) {
			getQuery, ok := query.(queries.GetLocationQuery)
			if !ok {
				return nil, fmt.Errorf("invalid query type")
			}
			return getHandler.Handle(ctx, getQuery)
		},
	})); err != nil {
		return nil, err
	}

	return queryBus, nil
}
