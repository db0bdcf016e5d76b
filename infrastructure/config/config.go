package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Environment     string        `yaml:"environment"`
	ServerHost      string        `yaml:"server_host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`

	// Graph data
	GraphFile     string `yaml:"graph_file"`
	RouteCacheTTL int    `yaml:"route_cache_ttl"` // seconds, 0 disables caching

	// AWS configuration
	AWSRegion           string `yaml:"aws_region"`
	CloudWatchNamespace string `yaml:"cloudwatch_namespace"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Feature flags
	EnableMetrics bool `yaml:"enable_metrics"`
	EnableTracing bool `yaml:"enable_tracing"`
	EnableCORS    bool `yaml:"enable_cors"`
}

// Default returns the configuration used when nothing is set
func Default() *Config {
	return &Config{
		Environment:     "development",
		ServerHost:      "0.0.0.0",
		Port:            7979,
		ReadTimeout:     15 * time.Second,
		WriteTimeout:    15 * time.Second,
		ShutdownTimeout: 30 * time.Second,
		GraphFile:       "data/hotpoints.json",
		RouteCacheTTL:   300,
		AWSRegion:       "us-west-2",
		LogLevel:        "info",
		EnableMetrics:   true,
		EnableTracing:   false,
		EnableCORS:      true,
	}
}

// LoadConfig loads configuration from defaults, the optional YAML file named
// by CONFIG_FILE, and environment variables, in increasing priority
func LoadConfig() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	c.Environment = getEnv("ENVIRONMENT", c.Environment)
	c.ServerHost = getEnv("SERVER_HOST", c.ServerHost)
	c.GraphFile = getEnv("GRAPH_FILE", c.GraphFile)
	c.AWSRegion = getEnv("AWS_REGION", c.AWSRegion)
	c.CloudWatchNamespace = getEnv("CLOUDWATCH_NAMESPACE", c.CloudWatchNamespace)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	c.EnableMetrics = getEnvBool("ENABLE_METRICS", c.EnableMetrics)
	c.EnableTracing = getEnvBool("ENABLE_TRACING", c.EnableTracing)
	c.EnableCORS = getEnvBool("ENABLE_CORS", c.EnableCORS)

	// A malformed port is an error rather than a silent fallback
	if value := os.Getenv("PORT"); value != "" {
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", value, err)
		}
		c.Port = port
	}
	if value := os.Getenv("ROUTE_CACHE_TTL"); value != "" {
		ttl, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid ROUTE_CACHE_TTL %q: %w", value, err)
		}
		c.RouteCacheTTL = ttl
	}

	return nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.GraphFile == "" {
		return fmt.Errorf("GRAPH_FILE is required")
	}
	if c.RouteCacheTTL < 0 {
		return fmt.Errorf("ROUTE_CACHE_TTL cannot be negative")
	}
	return nil
}

// ServerAddress returns the host:port the HTTP server listens on
func (c *Config) ServerAddress() string {
	return net.JoinHostPort(c.ServerHost, strconv.Itoa(c.Port))
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
