package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstants(t *testing.T) {
	t.Run("context keys are distinct", func(t *testing.T) {
		assert.NotEqual(t, KeyApp, KeyRequestID)
	})

	t.Run("request id header has canonical form", func(t *testing.T) {
		assert.Equal(t, "X-Request-Id", HeaderRequestID)
	})
}
