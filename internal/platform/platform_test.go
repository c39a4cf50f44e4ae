package platform

import (
	"errors"
	"math/rand"
	"runtime"
	"testing"

	"github.com/stigoleg/step-pet/internal/platform/patterns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticLocatorStaysNearOrigin(t *testing.T) {
	origin := Point{X: 1000, Y: 800}
	loc := NewSyntheticLocator(patterns.NewGenerator(rand.New(rand.NewSource(3))), origin)

	moved := false
	for i := 0; i < 500; i++ {
		pt, err := loc.Location()
		require.NoError(t, err)
		// random walks can drift, but never further than MaxPoints steps of size/3.
		limit := int(patterns.MaxSizePixels*patterns.MaxPoints/3) + 1
		assert.LessOrEqual(t, abs(pt.X-origin.X), limit)
		assert.LessOrEqual(t, abs(pt.Y-origin.Y), limit)
		if pt != origin {
			moved = true
		}
	}
	assert.True(t, moved, "synthetic locator never left the origin")
}

func TestSyntheticLocatorDeterministic(t *testing.T) {
	a := NewSyntheticLocator(patterns.NewGenerator(rand.New(rand.NewSource(99))), Point{})
	b := NewSyntheticLocator(patterns.NewGenerator(rand.New(rand.NewSource(99))), Point{})
	for i := 0; i < 100; i++ {
		pa, _ := a.Location()
		pb, _ := b.Location()
		require.Equal(t, pa, pb, "sample %d", i)
	}
}

func TestLocatorFunc(t *testing.T) {
	var loc Locator = LocatorFunc(func() (Point, error) {
		return Point{}, ErrPermissionDenied
	})
	_, err := loc.Location()
	assert.True(t, errors.Is(err, ErrPermissionDenied))
}

func TestNewLocator(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping platform probe in short mode")
	}

	loc, err := NewLocator()
	if errors.Is(err, ErrUnsupported) {
		t.Skipf("cursor tracking unsupported here (%s): %v", runtime.GOOS, err)
	}
	require.NoError(t, err)

	_, err = loc.Location()
	if err != nil {
		assert.True(t, errors.Is(err, ErrPermissionDenied) || errors.Is(err, ErrUnavailable),
			"unexpected error class: %v", err)
	}
	assert.NotEmpty(t, PermissionHelp())
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
