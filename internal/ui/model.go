package ui

import (
	"math"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// StepsPerLap is how many steps fill the progress bar once.
	StepsPerLap = 1000

	// MetersPerStep converts steps into a walked distance.
	MetersPerStep = 0.1

	// MaxPetSpeed caps how fast the pet runs.
	MaxPetSpeed = 5.0

	animationInterval = 150 * time.Millisecond
)

// Model holds the current state of the UI.
type Model struct {
	Screen       screen
	Steps        uint32
	LastSteps    uint32
	Source       StepSource
	ErrorMessage string
	SamplerIssue string
	ShowHelp     bool

	// pet animation phase, advanced by PetSpeed on every animation tick
	phase float64

	version  string
	keys     KeyMap
	help     help.Model
	progress progress.Model
}

// InitialModel returns the initial model showing the step counter.
func InitialModel(src StepSource) Model {
	return Model{
		Screen:   screenMain,
		Source:   src,
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
		progress: progress.New(progress.WithGradient("#667EEA", "#764BA2"), progress.WithWidth(30)),
	}
}

// InitialPetModel returns a model that starts on the pet screen.
func InitialPetModel(src StepSource) Model {
	m := InitialModel(src)
	m.Screen = screenPet
	return m
}

// SetVersion sets the version shown in the help screen.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return tea.Batch(refresh(m.Source), animate())
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model
func (m Model) View() string {
	return View(m)
}

// Delta returns how many steps the last update added.
func (m Model) Delta() int64 {
	return int64(m.Steps) - int64(m.LastSteps)
}

// Distance returns the walked distance in meters.
func (m Model) Distance() float64 {
	return float64(m.Steps) * MetersPerStep
}

// LapProgress returns the fraction of the current lap of StepsPerLap steps.
func (m Model) LapProgress() float64 {
	return float64(m.Steps%StepsPerLap) / StepsPerLap
}

// PetSpeed returns the pet's run speed multiplier for a step count.
func PetSpeed(steps uint32) float64 {
	return math.Min(1+float64(steps)/StepsPerLap*2, MaxPetSpeed)
}
