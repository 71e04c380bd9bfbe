package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("LOYALTY_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnv("LOYALTY_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("LOYALTY_TEST_MISSING", "fallback"))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("LOYALTY_TEST_BOOL", "true")
	assert.True(t, GetEnvAsBool("LOYALTY_TEST_BOOL", false))

	t.Setenv("LOYALTY_TEST_BOOL", "not-a-bool")
	assert.True(t, GetEnvAsBool("LOYALTY_TEST_BOOL", true))

	assert.False(t, GetEnvAsBool("LOYALTY_TEST_MISSING", false))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("LOYALTY_TEST_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("LOYALTY_TEST_INT", 7))

	t.Setenv("LOYALTY_TEST_INT", "not-a-number")
	assert.Equal(t, 7, GetEnvAsInt("LOYALTY_TEST_INT", 7))

	assert.Equal(t, 7, GetEnvAsInt("LOYALTY_TEST_MISSING", 7))
}
