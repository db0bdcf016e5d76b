package observability

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// MetricPublisher is the subset of the CloudWatch client used here
type MetricPublisher interface {
	PutMetricData(ctx context.Context, params *cloudwatch.PutMetricDataInput, optFns ...func(*cloudwatch.Options)) (*cloudwatch.PutMetricDataOutput, error)
}

// Metrics publishes operation metrics to CloudWatch.
// With no client configured every method is a no-op.
type Metrics struct {
	namespace string
	client    MetricPublisher
	logger    *zap.Logger
}

// NewMetrics creates a new metrics instance. client may be nil.
func NewMetrics(namespace string, client MetricPublisher, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// Enabled reports whether metrics are sent anywhere
func (m *Metrics) Enabled() bool {
	return m != nil && m.client != nil
}

// RecordLatency records latency for an operation
func (m *Metrics) RecordLatency(ctx context.Context, operation string, latency time.Duration) {
	if !m.Enabled() {
		return
	}

	m.put(ctx, types.MetricDatum{
		MetricName: aws.String("OperationLatency"),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String("Operation"),
				Value: aws.String(operation),
			},
		},
		Value:     aws.Float64(float64(latency.Microseconds()) / 1000),
		Unit:      types.StandardUnitMilliseconds,
		Timestamp: aws.Time(time.Now()),
	})
}

// RecordError records an error occurrence for an operation
func (m *Metrics) RecordError(ctx context.Context, operation string) {
	if !m.Enabled() {
		return
	}

	m.put(ctx, types.MetricDatum{
		MetricName: aws.String("Errors"),
		Dimensions: []types.Dimension{
			{
				Name:  aws.String("Operation"),
				Value: aws.String(operation),
			},
		},
		Value:     aws.Float64(1),
		Unit:      types.StandardUnitCount,
		Timestamp: aws.Time(time.Now()),
	})
}

func (m *Metrics) put(ctx context.Context, datum types.MetricDatum) {
	input := &cloudwatch.PutMetricDataInput{
		Namespace:  aws.String(m.namespace),
		MetricData: []types.MetricDatum{datum},
	}

	// Metric delivery failures never fail the request
	if _, err := m.client.PutMetricData(ctx, input); err != nil {
		m.logger.Warn("Failed to send metrics",
			zap.String("namespace", m.namespace),
			zap.String("metric", aws.ToString(datum.MetricName)),
			zap.Error(err),
		)
	}
}
