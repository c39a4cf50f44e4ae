// Package ui provides the terminal user interface that shows the step count
// and the running pet.
package ui

// StepSource is what the UI needs from the step tracker.
type StepSource interface {
	Reset() error
	CurrentSteps() (uint32, error)
	SamplerErr() error
}

// StepUpdateMsg carries the latest step count from the publisher.
type StepUpdateMsg uint32

// screen is the active presentation.
type screen int

const (
	screenMain screen = iota
	screenPet
)

func (s screen) String() string {
	switch s {
	case screenMain:
		return "Main"
	case screenPet:
		return "Pet"
	default:
		return "Unknown"
	}
}
