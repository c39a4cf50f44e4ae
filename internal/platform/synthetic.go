package platform

import (
	"math"
	"sync"

	"github.com/stigoleg/step-pet/internal/platform/patterns"
)

// SyntheticLocator walks generated cursor trails around a fixed origin. It
// needs no OS access and is used for demos and tests.
type SyntheticLocator struct {
	mu      sync.Mutex
	gen     *patterns.Generator
	origin  Point
	pending []Point
	last    Point
}

// NewSyntheticLocator returns a locator that starts at origin.
func NewSyntheticLocator(gen *patterns.Generator, origin Point) *SyntheticLocator {
	return &SyntheticLocator{gen: gen, origin: origin, last: origin}
}

// Location returns the next point of the current trail, refilling the trail
// when it runs out.
func (s *SyntheticLocator) Location() (Point, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending) == 0 {
		s.refill()
	}
	s.last, s.pending = s.pending[0], s.pending[1:]
	return s.last, nil
}

func (s *SyntheticLocator) refill() {
	points := s.gen.GenerateShapePoints()
	for _, pt := range points {
		p := Point{
			X: s.origin.X + int(math.Round(pt.X)),
			Y: s.origin.Y + int(math.Round(pt.Y)),
		}
		s.pending = append(s.pending, p)
		for i := s.gen.PauseSamples(); i > 0; i-- {
			s.pending = append(s.pending, p)
		}
	}
	s.pending = append(s.pending, s.origin)
}
