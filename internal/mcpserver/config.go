package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/erraggy/optgen/generator"
)

// noConfigHeader is the OPTGEN_CONFIG_HEADER value that omits the include.
const noConfigHeader = "none"

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Generate tool defaults.
	DefaultTarget generator.Target
	ConfigHeader  string
	RuntimeHeader string

	// Input limits.
	MaxContentSize int64

	// Cache settings.
	CacheEnabled bool
	CacheMaxSize int
	CacheTTL     time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OPTGEN_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		DefaultTarget:  envTarget("OPTGEN_DEFAULT_TARGET", generator.TargetCPP),
		ConfigHeader:   envConfigHeader("OPTGEN_CONFIG_HEADER", generator.DefaultConfigHeader),
		RuntimeHeader:  envString("OPTGEN_RUNTIME_HEADER", generator.DefaultRuntimeHeader),
		MaxContentSize: int64(envInt("OPTGEN_MAX_CONTENT_SIZE", 1024*1024)),
		CacheEnabled:   envBool("OPTGEN_CACHE_ENABLED", true),
		CacheMaxSize:   envInt("OPTGEN_CACHE_MAX_SIZE", 16),
		CacheTTL:       envDuration("OPTGEN_CACHE_TTL", 10*time.Minute),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envConfigHeader(key, fallback string) string {
	v := os.Getenv(key)
	switch v {
	case "":
		return fallback
	case noConfigHeader:
		return ""
	default:
		return v
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}

func envTarget(key string, fallback generator.Target) generator.Target {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	t, err := generator.ParseTarget(v)
	if err != nil {
		slog.Warn("invalid target env var, using default", "key", key, "value", v, "default", string(fallback))
		return fallback
	}
	return t
}
