package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Load reads an optional .env file and returns the process environment
// as a map. A missing .env file is not an error.
func Load() map[string]string {
	_ = godotenv.Load()

	environ := os.Environ()
	envAsMap := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry != "" {
			key, value := split(entry)
			envAsMap[key] = value
		}
	}
	return envAsMap
}

// assumes entry is not the empty string
func split(entry string) (key, value string) {
	parts := strings.SplitN(entry, "=", 2)
	if len(parts) < 2 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}

func GetString(cfg map[string]string, key string, defaultValue string) string {
	if cfg == nil {
		return defaultValue
	}

	if val, ok := cfg[key]; ok {
		return val
	}
	return defaultValue
}

func GetInt(cfg map[string]string, key string, defaultValue int) int {
	if cfg == nil {
		return defaultValue
	}

	s, ok := cfg[key]
	if !ok {
		return defaultValue
	}

	asInt, err := strconv.Atoi(s)
	if err != nil {
		return defaultValue
	}

	return asInt
}
