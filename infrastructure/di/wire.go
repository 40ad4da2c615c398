//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"go.uber.org/zap"

	"pagecompiler/application/ports"
	"pagecompiler/application/services"
	"pagecompiler/infrastructure/config"
	"pagecompiler/interfaces/http/rest"
	"pagecompiler/pkg/observability"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *zap.Logger
	ContentStore    ports.ContentStore
	CompileService  *services.CompileService
	DocumentService *services.DocumentService
	Metrics         *observability.Metrics
	Tracer          *observability.Tracer
	Router          *rest.Router
}

// SuperSet is the main provider set containing all providers
var SuperSet = wire.NewSet(
	ProvideLogger,
	ProvideAWSConfig,
	ProvideDynamoDBClient,
	ProvideCloudWatchClient,
	ProvideMetrics,
	ProvideTracer,
	ProvideContentStore,
	ProvideCompileService,
	ProvideDocumentService,
	ProvideRouter,
	wire.Struct(new(Container), "*"),
)

// InitializeContainer creates a fully wired container
func InitializeContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	wire.Build(SuperSet)
	return nil, nil // Wire will replace this
}
