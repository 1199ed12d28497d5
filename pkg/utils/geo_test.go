package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"wayfare/pkg/utils"
)

func TestHaversineZeroForSamePoint(t *testing.T) {
	d := utils.HaversineMeters(37.9687, -78.8967, 37.9687, -78.8967)
	assert.Zero(t, d)
}

func TestHaversineKnownDistance(t *testing.T) {
	// Humpback Rocks to Natural Bridge, about 68 km as the crow flies.
	d := utils.HaversineMeters(37.9687, -78.8967, 37.6290, -79.5436)
	assert.InDelta(t, 68000, d, 3000)
}

func TestHaversineIsSymmetric(t *testing.T) {
	a := utils.HaversineMeters(36.0157, -75.6679, 35.2519, -75.5288)
	b := utils.HaversineMeters(35.2519, -75.5288, 36.0157, -75.6679)
	assert.InDelta(t, a, b, 0.001)
}
