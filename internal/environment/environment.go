package environment

import (
	"os"
	"strconv"
)

// GetEnv returns the value of an environment variable, or def when the
// variable is unset or empty.
func GetEnv(key, def string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return def
}

// GetEnvAsBool parses an environment variable as a boolean. Unset,
// empty or unparseable values yield def.
func GetEnvAsBool(key string, def bool) bool {
	value, err := strconv.ParseBool(GetEnv(key, ""))
	if err != nil {
		return def
	}
	return value
}

// GetEnvAsInt parses an environment variable as an integer. Unset,
// empty or unparseable values yield def.
func GetEnvAsInt(key string, def int) int {
	value, err := strconv.Atoi(GetEnv(key, ""))
	if err != nil {
		return def
	}
	return value
}
