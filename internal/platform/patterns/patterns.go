// Package patterns generates cursor trails used to drive the step counter
// without a real pointing device.
package patterns

import (
	"fmt"
	"math"
	"math/rand"
)

// Trail shape parameters.
const (
	MinSizePixels = 60.0
	MaxSizePixels = 400.0

	MinPoints = 4
	MaxPoints = 12

	// PauseProbability is the chance that the cursor rests after a point.
	PauseProbability = 0.12
	// MaxPauseSamples caps how many samples a rest lasts.
	MaxPauseSamples = 20
)

// Shape identifies a trail shape.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeZigZag
	ShapeRandomWalk
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeZigZag:
		return "zigzag"
	case ShapeRandomWalk:
		return "random-walk"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// Point is an offset from the trail origin.
type Point struct {
	X float64
	Y float64
}

// Generator produces random cursor trails.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator creates a generator. A seeded source gives reproducible trails.
func NewGenerator(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// GenerateShapePoints returns a random trail relative to the origin.
func (g *Generator) GenerateShapePoints() []Point {
	shape := Shape(g.rnd.Intn(4))
	size := MinSizePixels + g.rnd.Float64()*(MaxSizePixels-MinSizePixels)
	numPoints := MinPoints + g.rnd.Intn(MaxPoints-MinPoints+1)
	return g.Build(shape, numPoints, size)
}

// Build returns the points of the given shape.
func (g *Generator) Build(shape Shape, numPoints int, size float64) []Point {
	if numPoints < MinPoints {
		numPoints = MinPoints
	}
	switch shape {
	case ShapeCircle:
		return circle(numPoints, size)
	case ShapeSquare:
		return square(numPoints, size)
	case ShapeZigZag:
		return zigzag(numPoints, size)
	default:
		return g.randomWalk(numPoints, size)
	}
}

func circle(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		angle := 2 * math.Pi * float64(i) / float64(numPoints)
		points = append(points, Point{
			X: size * math.Cos(angle),
			Y: size * math.Sin(angle),
		})
	}
	return points
}

func square(numPoints int, size float64) []Point {
	side := int(math.Sqrt(float64(numPoints)))
	if side < 2 {
		side = 2
	}
	edge := func(i int) float64 { return size * float64(i) / float64(side-1) }

	points := make([]Point, 0, side*4)
	for i := 0; i < side; i++ {
		points = append(points, Point{X: edge(i), Y: 0})
	}
	for i := 1; i < side; i++ {
		points = append(points, Point{X: size, Y: edge(i)})
	}
	for i := side - 2; i >= 0; i-- {
		points = append(points, Point{X: edge(i), Y: size})
	}
	for i := side - 2; i > 0; i-- {
		points = append(points, Point{X: 0, Y: edge(i)})
	}
	return points
}

func zigzag(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)
	for i := 0; i < numPoints; i++ {
		y := size * 0.5
		if i%2 == 0 {
			y = -y
		}
		points = append(points, Point{X: size * float64(i) / float64(numPoints-1), Y: y})
	}
	return points
}

func (g *Generator) randomWalk(numPoints int, size float64) []Point {
	points := make([]Point, 0, numPoints)
	points = append(points, Point{})
	step := size / 3
	x, y := 0.0, 0.0
	for i := 1; i < numPoints; i++ {
		angle := g.rnd.Float64() * 2 * math.Pi
		x += step * math.Cos(angle)
		y += step * math.Sin(angle)
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// PauseSamples returns how many samples the cursor should rest after a point,
// usually zero.
func (g *Generator) PauseSamples() int {
	if g.rnd.Float64() >= PauseProbability {
		return 0
	}
	return 1 + g.rnd.Intn(MaxPauseSamples)
}

// SegmentDistance returns the distance from point i to the next point, or back
// to the origin for the last point.
func SegmentDistance(points []Point, i int) float64 {
	if len(points) == 0 || i < 0 || i >= len(points) {
		return 0
	}
	pt := points[i]
	if i < len(points)-1 {
		next := points[i+1]
		return math.Hypot(next.X-pt.X, next.Y-pt.Y)
	}
	return math.Hypot(pt.X, pt.Y)
}

// PathLength returns the length of the closed trail origin -> points -> origin.
func PathLength(points []Point) float64 {
	if len(points) == 0 {
		return 0
	}
	total := math.Hypot(points[0].X, points[0].Y)
	for i := range points {
		total += SegmentDistance(points, i)
	}
	return total
}
