package mcpserver

import (
	"testing"
	"time"

	"github.com/erraggy/optgen/generator"
	"github.com/stretchr/testify/assert"
)

// clearOPTGENEnv clears all OPTGEN_* env vars to isolate tests from the ambient environment.
func clearOPTGENEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"OPTGEN_DEFAULT_TARGET", "OPTGEN_CONFIG_HEADER", "OPTGEN_RUNTIME_HEADER",
		"OPTGEN_MAX_CONTENT_SIZE", "OPTGEN_CACHE_ENABLED", "OPTGEN_CACHE_MAX_SIZE",
		"OPTGEN_CACHE_TTL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOPTGENEnv(t)

	c := loadConfig()

	assert.Equal(t, generator.TargetCPP, c.DefaultTarget)
	assert.Equal(t, "config.h", c.ConfigHeader)
	assert.Equal(t, "CLCommandLine.hpp", c.RuntimeHeader)
	assert.Equal(t, int64(1024*1024), c.MaxContentSize)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 16, c.CacheMaxSize)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOPTGENEnv(t)
	t.Setenv("OPTGEN_DEFAULT_TARGET", "go")
	t.Setenv("OPTGEN_CONFIG_HEADER", "none")
	t.Setenv("OPTGEN_RUNTIME_HEADER", "cl/CommandLine.hpp")
	t.Setenv("OPTGEN_MAX_CONTENT_SIZE", "2048")
	t.Setenv("OPTGEN_CACHE_ENABLED", "false")
	t.Setenv("OPTGEN_CACHE_MAX_SIZE", "4")
	t.Setenv("OPTGEN_CACHE_TTL", "30s")

	c := loadConfig()

	assert.Equal(t, generator.TargetGo, c.DefaultTarget)
	assert.Empty(t, c.ConfigHeader)
	assert.Equal(t, "cl/CommandLine.hpp", c.RuntimeHeader)
	assert.Equal(t, int64(2048), c.MaxContentSize)
	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 4, c.CacheMaxSize)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
}

func TestLoadConfig_InvalidValuesFallBack(t *testing.T) {
	clearOPTGENEnv(t)
	t.Setenv("OPTGEN_DEFAULT_TARGET", "fortran")
	t.Setenv("OPTGEN_MAX_CONTENT_SIZE", "-5")
	t.Setenv("OPTGEN_CACHE_ENABLED", "maybe")
	t.Setenv("OPTGEN_CACHE_MAX_SIZE", "lots")
	t.Setenv("OPTGEN_CACHE_TTL", "forever")

	c := loadConfig()

	assert.Equal(t, generator.TargetCPP, c.DefaultTarget)
	assert.Equal(t, int64(1024*1024), c.MaxContentSize)
	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 16, c.CacheMaxSize)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
}

func TestEnvConfigHeader(t *testing.T) {
	t.Setenv("OPTGEN_TEST_HEADER", "")
	assert.Equal(t, "config.h", envConfigHeader("OPTGEN_TEST_HEADER", "config.h"))

	t.Setenv("OPTGEN_TEST_HEADER", "build/config.h")
	assert.Equal(t, "build/config.h", envConfigHeader("OPTGEN_TEST_HEADER", "config.h"))

	t.Setenv("OPTGEN_TEST_HEADER", noConfigHeader)
	assert.Empty(t, envConfigHeader("OPTGEN_TEST_HEADER", "config.h"))
}
