package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	// Dhaka to Chittagong, roughly 215 km great-circle.
	distance := HaversineKm(23.8103, 90.4125, 22.3569, 91.7832)
	assert.InDelta(t, 215, distance, 10)

	// Same point is zero.
	assert.Zero(t, HaversineKm(23.8103, 90.4125, 23.8103, 90.4125))

	// Symmetric.
	forward := HaversineKm(23.8103, 90.4125, 22.3569, 91.7832)
	backward := HaversineKm(22.3569, 91.7832, 23.8103, 90.4125)
	assert.InDelta(t, forward, backward, 1e-9)
}

func TestWithinRadius(t *testing.T) {
	assert.True(t, WithinRadius(4.9, 5))
	assert.False(t, WithinRadius(5.1, 5))

	// The boundary is inclusive.
	assert.True(t, WithinRadius(5, 5))
	assert.True(t, WithinRadius(0, 0))
}
