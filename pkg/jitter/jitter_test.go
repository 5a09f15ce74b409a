package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestExponentialBackoff_GrowsAndCaps(t *testing.T) {
	base := time.Second
	max := 4 * time.Second

	first := ExponentialBackoff(base, max, 0, 0)
	second := ExponentialBackoff(base, max, 1, 0)
	capped := ExponentialBackoff(base, max, 10, 0)

	assert.Equal(t, time.Second, first)
	assert.Equal(t, 2*time.Second, second)
	assert.Equal(t, max, capped)
}
