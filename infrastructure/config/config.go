package config

import (
	"fmt"
	"os"
	"strconv"

	domaincfg "pagecompiler/domain/config"
	"pagecompiler/domain/schema"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// AWS configuration
	AWSRegion     string
	DynamoDBTable string

	// Storage backend: "memory" or "dynamodb"
	StorageBackend string

	// Lambda configuration
	IsLambda           bool
	LambdaFunctionName string
	ColdStartTimeout   int // milliseconds

	// Compilation behavior
	GapFansOut          bool
	FallbackBreakpoint  string
	DropInvalidOptional bool

	// Logging
	LogLevel string

	// Feature flags
	EnableMetrics bool
	EnableTracing bool
	EnableCORS    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:  getEnv("SERVER_ADDRESS", ":8080"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		AWSRegion:      getEnv("AWS_REGION", "us-west-2"),
		DynamoDBTable:  getEnv("TABLE_NAME", getEnv("DYNAMODB_TABLE", "pagecompiler-documents")),
		StorageBackend: getEnv("STORAGE_BACKEND", "memory"),

		// Lambda configuration
		IsLambda:           getEnvBool("IS_LAMBDA", false),
		LambdaFunctionName: getEnv("AWS_LAMBDA_FUNCTION_NAME", ""),
		ColdStartTimeout:   getEnvInt("COLD_START_TIMEOUT", 3000),

		// Compilation behavior
		GapFansOut:          getEnvBool("GAP_FANS_OUT", true),
		FallbackBreakpoint:  getEnv("FALLBACK_BREAKPOINT", "base"),
		DropInvalidOptional: getEnvBool("DROP_INVALID_OPTIONAL", true),

		// Logging and features
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableMetrics: getEnvBool("ENABLE_METRICS", false),
		EnableTracing: getEnvBool("ENABLE_TRACING", false),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig for backwards compatibility
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.StorageBackend != "memory" && c.StorageBackend != "dynamodb" {
		return fmt.Errorf("STORAGE_BACKEND must be memory or dynamodb, got %q", c.StorageBackend)
	}
	if c.Environment == "production" {
		if c.StorageBackend != "dynamodb" {
			return fmt.Errorf("STORAGE_BACKEND must be dynamodb in production")
		}
		if c.DynamoDBTable == "" {
			return fmt.Errorf("DYNAMODB_TABLE is required")
		}
	}

	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// DomainConfig converts the environment configuration into the compilation
// settings consumed by the compile service.
func (c *Config) DomainConfig() domaincfg.DomainConfig {
	dc := domaincfg.DefaultDomainConfig()
	dc.GapFansOut = c.GapFansOut
	dc.FallbackBreakpoint = schema.BreakpointIDOr(c.FallbackBreakpoint, schema.BreakpointBase)
	dc.DropInvalidOptional = c.DropInvalidOptional
	return dc
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
