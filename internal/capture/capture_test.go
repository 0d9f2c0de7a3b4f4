package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectEmpty(t *testing.T) {
	assert.True(t, Rect{}.Empty())
	assert.True(t, Rect{Width: 0, Height: 10}.Empty())
	assert.True(t, Rect{Width: 10, Height: 0}.Empty())
	assert.True(t, Rect{Width: -5, Height: 10}.Empty())
	assert.False(t, Rect{Width: 1, Height: 1}.Empty())
}

func TestRectIsZero(t *testing.T) {
	assert.True(t, Rect{}.IsZero())
	assert.False(t, Rect{X: 1}.IsZero())
	assert.False(t, Rect{Width: 1, Height: 1}.IsZero())
}

func TestRectIntersect(t *testing.T) {
	display := Rect{X: 0, Y: 0, Width: 1920, Height: 1080}

	t.Run("inside", func(t *testing.T) {
		r := Rect{X: 100, Y: 100, Width: 200, Height: 200}
		assert.Equal(t, r, r.Intersect(display))
	})

	t.Run("partially off screen", func(t *testing.T) {
		r := Rect{X: 1800, Y: 1000, Width: 400, Height: 400}
		assert.Equal(t, Rect{X: 1800, Y: 1000, Width: 120, Height: 80}, r.Intersect(display))
	})

	t.Run("fully off screen", func(t *testing.T) {
		r := Rect{X: 5000, Y: 5000, Width: 100, Height: 100}
		got := r.Intersect(display)
		assert.True(t, got.IsZero())
	})

	t.Run("negative origin", func(t *testing.T) {
		r := Rect{X: -50, Y: -50, Width: 100, Height: 100}
		assert.Equal(t, Rect{X: 0, Y: 0, Width: 50, Height: 50}, r.Intersect(display))
	})
}

func TestRectBounds(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	b := r.Bounds()
	assert.Equal(t, 10, b.Min.X)
	assert.Equal(t, 20, b.Min.Y)
	assert.Equal(t, 30, b.Dx())
	assert.Equal(t, 40, b.Dy())
}
