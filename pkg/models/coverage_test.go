package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOperationRefKey(t *testing.T) {
	ref := OperationRef{Method: "GET", Path: "/orders/{orderId}"}
	assert.Equal(t, "GET /orders/{orderId}", ref.Key())
}

func TestCoveragePercent(t *testing.T) {
	t.Run("no operations yields zero", func(t *testing.T) {
		c := CoverageSnapshot{}
		assert.Zero(t, c.CoveragePercent())
	})

	t.Run("full coverage", func(t *testing.T) {
		c := CoverageSnapshot{OpsTotal: 4, OpsCovered: 4}
		assert.Equal(t, float64(100), c.CoveragePercent())
	})

	t.Run("partial coverage", func(t *testing.T) {
		c := CoverageSnapshot{OpsTotal: 4, OpsCovered: 3}
		assert.Equal(t, float64(75), c.CoveragePercent())

		c = CoverageSnapshot{OpsTotal: 3, OpsCovered: 2}
		assert.InDelta(t, 66.667, c.CoveragePercent(), 0.001)
	})
}
