package config

import (
	"context"
	"fmt"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/veho-technologies/veho-error/errors"
	"github.com/veho-technologies/veho-error/logger"
	"github.com/veho-technologies/veho-error/observability"
)

// TracingConfig enables span export of recorded errors.
type TracingConfig struct {
	Enabled                    bool `yaml:"enabled" mapstructure:"enabled"`
	observability.TracerConfig `yaml:",inline" mapstructure:",squash"`
}

// ServiceConfig contains the configuration fields every service needs.
// Projects extend this by embedding it in their own config structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Upstream string `yaml:"upstream" mapstructure:"upstream"`
//	}
type ServiceConfig struct {
	Name        string             `yaml:"name" mapstructure:"name"`
	Environment string             `yaml:"environment" mapstructure:"environment"`
	Version     string             `yaml:"version" mapstructure:"version"`
	Debug       bool               `yaml:"debug" mapstructure:"debug"`
	Logging     logger.Config      `yaml:"logging" mapstructure:"logging"`
	Errors      errors.StackConfig `yaml:"errors" mapstructure:"errors"`
	Tracing     TracingConfig      `yaml:"tracing" mapstructure:"tracing"`
}

// GetServiceConfig returns the base ServiceConfig.
// When embedded in a larger config struct, this method is promoted.
func (c *ServiceConfig) GetServiceConfig() *ServiceConfig {
	return c
}

// ApplyDefaults applies default values to the configuration.
// Override this in embedding structs and call c.ServiceConfig.ApplyDefaults() first.
func (c *ServiceConfig) ApplyDefaults() {
	if c.Environment == "" {
		c.Environment = "development"
	}
	if c.Environment == "development" {
		c.Debug = true
	}
	// Propagate service name into logging and tracing.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
	c.Errors.ApplyDefaults()

	defaults := observability.DefaultTracerConfig(c.Name)
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.Name
	}
	if c.Tracing.ServiceVersion == "" {
		c.Tracing.ServiceVersion = c.Version
	}
	if c.Tracing.Environment == "" {
		c.Tracing.Environment = c.Environment
	}
	if c.Tracing.Endpoint == "" {
		c.Tracing.Endpoint = defaults.Endpoint
	}
	if c.Tracing.SampleRate == 0 {
		c.Tracing.SampleRate = defaults.SampleRate
	}
}

// Validate validates the configuration.
// Override this in embedding structs and call c.ServiceConfig.Validate() first.
func (c *ServiceConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("config.name is required")
	}
	validEnvs := []string{"development", "staging", "production"}
	found := false
	for _, v := range validEnvs {
		if c.Environment == v {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("config.environment must be one of %v (got: %s)", validEnvs, c.Environment)
	}
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("config.logging: %w", err)
	}
	if err := c.Errors.Validate(); err != nil {
		return fmt.Errorf("config.errors: %w", err)
	}
	if c.Tracing.SampleRate < 0 || c.Tracing.SampleRate > 1 {
		return fmt.Errorf("config.tracing.sample_rate must be between 0 and 1 (got: %v)", c.Tracing.SampleRate)
	}
	return nil
}

// Apply installs the stack capture policy and the global logger.
func (c *ServiceConfig) Apply() {
	errors.Configure(c.Errors)
	logger.Init(c.Logging)
}

// InitTracing starts the OTLP tracer when tracing is enabled. It returns a
// nil provider otherwise.
func (c *ServiceConfig) InitTracing(ctx context.Context) (*sdktrace.TracerProvider, error) {
	if !c.Tracing.Enabled {
		return nil, nil
	}
	return observability.InitTracer(ctx, c.Tracing.TracerConfig)
}
