package di

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awscloudwatch "github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	awsdynamodb "github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"go.uber.org/zap"

	"pagecompiler/application/ports"
	"pagecompiler/application/services"
	"pagecompiler/infrastructure/config"
	"pagecompiler/infrastructure/persistence/dynamodb"
	"pagecompiler/infrastructure/persistence/memory"
	"pagecompiler/interfaces/http/rest"
	"pagecompiler/pkg/observability"
)

// ProvideLogger creates a new logger instance
func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	var logger *zap.Logger
	var err error

	if cfg.Environment == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}

	if err != nil {
		return nil, err
	}

	return logger, nil
}

// ProvideAWSConfig creates AWS configuration
func ProvideAWSConfig(ctx context.Context, cfg *config.Config) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWSRegion),
	)
}

// ProvideDynamoDBClient creates a DynamoDB client
func ProvideDynamoDBClient(awsCfg aws.Config) *awsdynamodb.Client {
	return awsdynamodb.NewFromConfig(awsCfg)
}

// ProvideCloudWatchClient creates a CloudWatch client
func ProvideCloudWatchClient(awsCfg aws.Config) *awscloudwatch.Client {
	return awscloudwatch.NewFromConfig(awsCfg)
}

// ProvideMetrics creates metrics instance. A nil client disables publishing.
func ProvideMetrics(client *awscloudwatch.Client, cfg *config.Config, logger *zap.Logger) *observability.Metrics {
	namespace := fmt.Sprintf("PageCompiler/%s", cfg.Environment)
	if !cfg.EnableMetrics {
		client = nil
	}
	return observability.NewMetrics(namespace, client, logger)
}

// ProvideTracer creates a tracer instance
func ProvideTracer(cfg *config.Config) *observability.Tracer {
	return observability.NewTracer(fmt.Sprintf("pagecompiler-%s", cfg.Environment))
}

// ProvideContentStore selects the content store backend from configuration
func ProvideContentStore(client *awsdynamodb.Client, cfg *config.Config, logger *zap.Logger) ports.ContentStore {
	if cfg.StorageBackend == "dynamodb" {
		return dynamodb.NewContentStore(client, cfg.DynamoDBTable, logger)
	}
	return memory.NewContentStore()
}

// ProvideCompileService creates the element compile service
func ProvideCompileService(cfg *config.Config, logger *zap.Logger) *services.CompileService {
	return services.NewCompileService(cfg.DomainConfig(), logger)
}

// ProvideDocumentService creates the document service
func ProvideDocumentService(store ports.ContentStore, compiler *services.CompileService, tracer *observability.Tracer, logger *zap.Logger) *services.DocumentService {
	return services.NewDocumentService(store, compiler, tracer, logger)
}

// ProvideRouter creates the HTTP router
func ProvideRouter(
	cfg *config.Config,
	documents *services.DocumentService,
	compiler *services.CompileService,
	metrics *observability.Metrics,
	tracer *observability.Tracer,
	logger *zap.Logger,
) *rest.Router {
	return rest.NewRouter(cfg, documents, compiler, metrics, tracer, logger)
}
