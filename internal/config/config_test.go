package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/screengrab/screengrab/internal/capture"
)

func TestParseRegion(t *testing.T) {
	r, err := ParseRegion("10,20,300x200")
	require.NoError(t, err)
	assert.Equal(t, capture.Rect{X: 10, Y: 20, Width: 300, Height: 200}, r)

	_, err = ParseRegion("10,20")
	assert.Error(t, err)

	_, err = ParseRegion("nonsense")
	assert.Error(t, err)
}

func TestParsePoint(t *testing.T) {
	x, y, err := ParsePoint("15,25")
	require.NoError(t, err)
	assert.Equal(t, 15, x)
	assert.Equal(t, 25, y)

	_, _, err = ParsePoint("15")
	assert.Error(t, err)
}
