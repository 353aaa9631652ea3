package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"lawmap/domain/graph"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Storage configuration
	DataDir      string
	DataFileName string
	WatchFile    bool

	// Logging
	LogLevel string

	// Feature flags
	EnableCORS    bool
	EnableMetrics bool

	// Graph layout tuning
	Layout LayoutConfig
}

// LayoutConfig carries the force simulation tunables. Defaults match the
// standard 800x800 canvas tuning; overriding them is mostly useful for
// experimenting with cluster spacing.
type LayoutConfig struct {
	CanvasSize   float64
	AnchorRadius float64
	Iterations   int
	Seed         int64
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DataDir:      getEnv("DATA_DIR", defaultDataDir()),
		DataFileName: getEnv("DATA_FILE", "lawmap.json"),
		WatchFile:    getEnvBool("WATCH_DATA_FILE", true),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		EnableMetrics: getEnvBool("ENABLE_METRICS", true),

		Layout: LayoutConfig{
			CanvasSize:   getEnvFloat("LAYOUT_CANVAS_SIZE", 800),
			AnchorRadius: getEnvFloat("LAYOUT_ANCHOR_RADIUS", 220),
			Iterations:   getEnvInt("LAYOUT_ITERATIONS", 60),
			Seed:         int64(getEnvInt("LAYOUT_SEED", 1)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR must not be empty")
	}
	if c.Layout.Iterations <= 0 {
		return fmt.Errorf("LAYOUT_ITERATIONS must be positive")
	}
	if c.Layout.CanvasSize <= 0 {
		return fmt.Errorf("LAYOUT_CANVAS_SIZE must be positive")
	}
	return nil
}

// DataFilePath returns the full path of the document file
func (c *Config) DataFilePath() string {
	return filepath.Join(c.DataDir, c.DataFileName)
}

// LayoutOptions translates the config into simulation options
func (c *Config) LayoutOptions() graph.Options {
	opts := graph.DefaultOptions()
	opts.Width = c.Layout.CanvasSize
	opts.Height = c.Layout.CanvasSize
	opts.AnchorRadius = c.Layout.AnchorRadius
	opts.Iterations = c.Layout.Iterations
	return opts
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func defaultDataDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".lawmap")
	}
	return "."
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

// getEnvFloat gets a float environment variable with a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
