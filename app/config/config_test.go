package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Setenv("INKWELL_TEST_KEY", "value")

	cfg := Load()
	assert.Equal(t, "value", cfg["INKWELL_TEST_KEY"])
}

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	assert.Equal(t, "9090", GetString(cfg, "PORT", "8080"))
	assert.Equal(t, "", GetString(cfg, "EMPTY", "8080"))
	assert.Equal(t, "8080", GetString(cfg, "MISSING", "8080"))
	assert.Equal(t, "8080", GetString(nil, "PORT", "8080"))
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "BAD": "not-a-number"}

	assert.Equal(t, 9090, GetInt(cfg, "PORT", 8080))
	assert.Equal(t, 8080, GetInt(cfg, "BAD", 8080))
	assert.Equal(t, 8080, GetInt(cfg, "MISSING", 8080))
	assert.Equal(t, 8080, GetInt(nil, "PORT", 8080))
}
