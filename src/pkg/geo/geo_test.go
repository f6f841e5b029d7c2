package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	// Paris center to Orléans is roughly 111 km as the crow flies.
	paris := [2]float64{48.8566, 2.3522}
	orleans := [2]float64{47.9029, 1.9093}

	d := DistanceKm(paris[0], paris[1], orleans[0], orleans[1])
	assert.InDelta(t, 111, d, 5)
}

func TestDistanceKmZero(t *testing.T) {
	d := DistanceKm(48.8566, 2.3522, 48.8566, 2.3522)
	assert.InDelta(t, 0, d, 1e-9)
}

func TestDistanceKmShortRange(t *testing.T) {
	// Louvre to Notre-Dame, under 2 km.
	d := DistanceKm(48.8606, 2.3376, 48.8530, 2.3499)
	assert.Less(t, d, 2.0)
	assert.Greater(t, d, 0.5)
}
