package observability

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch/types"
	"go.uber.org/zap"
)

// Metrics publishes application metrics to CloudWatch. When the client is
// nil (metrics disabled) every method is a no-op.
type Metrics struct {
	namespace string
	client    *cloudwatch.Client
	logger    *zap.Logger
}

// NewMetrics creates a new metrics publisher
func NewMetrics(namespace string, client *cloudwatch.Client, logger *zap.Logger) *Metrics {
	return &Metrics{
		namespace: namespace,
		client:    client,
		logger:    logger,
	}
}

// putMetric publishes a single datum, logging failures instead of surfacing
// them to the caller.
func (m *Metrics) putMetric(ctx context.Context, name string, value float64, unit types.StandardUnit, dims ...types.Dimension) {
	if m.client == nil {
		return
	}
	_, err := m.client.PutMetricData(ctx, &cloudwatch.PutMetricDataInput{
		Namespace: aws.String(m.namespace),
		MetricData: []types.MetricDatum{
			{
				MetricName: aws.String(name),
				Value:      aws.Float64(value),
				Unit:       unit,
				Dimensions: dims,
			},
		},
	})
	if err != nil {
		m.logger.Warn("Failed to publish metric",
			zap.Error(err),
			zap.String("metric", name),
		)
	}
}

// RecordCompilation counts a compiled element along with its warning count
func (m *Metrics) RecordCompilation(ctx context.Context, elementType string, warnings int) {
	dim := types.Dimension{Name: aws.String("ElementType"), Value: aws.String(elementType)}
	m.putMetric(ctx, "ElementsCompiled", 1, types.StandardUnitCount, dim)
	if warnings > 0 {
		m.putMetric(ctx, "CompilationWarnings", float64(warnings), types.StandardUnitCount, dim)
	}
}

// RecordValidationFailure counts a rejected compilation request
func (m *Metrics) RecordValidationFailure(ctx context.Context, elementType string) {
	m.putMetric(ctx, "ValidationFailures", 1, types.StandardUnitCount,
		types.Dimension{Name: aws.String("ElementType"), Value: aws.String(elementType)})
}

// RecordDocumentSize records the node count of a persisted document
func (m *Metrics) RecordDocumentSize(ctx context.Context, nodes int) {
	m.putMetric(ctx, "DocumentNodes", float64(nodes), types.StandardUnitCount)
}
