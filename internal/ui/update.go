package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// animTickMsg advances the pet animation.
type animTickMsg time.Time

// errMsg reports a failed query against the step source.
type errMsg struct{ err error }

// Update handles messages and updates the model accordingly.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepUpdateMsg:
		n := uint32(msg)
		if n != m.Steps {
			m.LastSteps = m.Steps
			m.Steps = n
		}
		m.SamplerIssue = ""
		if m.Source != nil {
			if err := m.Source.SamplerErr(); err != nil {
				m.SamplerIssue = err.Error()
			}
		}
		return m, nil

	case errMsg:
		m.ErrorMessage = msg.err.Error()
		return m, nil

	case animTickMsg:
		m.phase += PetSpeed(m.Steps)
		return m, animate()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			if m.ShowHelp && msg.String() == "esc" {
				m.ShowHelp = false
				return m, nil
			}
			return m, tea.Quit
		case key.Matches(msg, m.keys.ToggleHelp):
			m.ShowHelp = !m.ShowHelp
			return m, nil
		case key.Matches(msg, m.keys.SwitchView):
			if m.Screen == screenMain {
				m.Screen = screenPet
			} else {
				m.Screen = screenMain
			}
			return m, nil
		case key.Matches(msg, m.keys.Reset):
			if m.Screen != screenMain || m.Source == nil {
				return m, nil
			}
			if err := m.Source.Reset(); err != nil {
				m.ErrorMessage = err.Error()
				return m, nil
			}
			m.Steps, m.LastSteps = 0, 0
			m.ErrorMessage = ""
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// refresh queries the current step count once, used at startup before the
// first publisher tick arrives.
func refresh(src StepSource) tea.Cmd {
	if src == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := src.CurrentSteps()
		if err != nil {
			return errMsg{err}
		}
		return StepUpdateMsg(n)
	}
}

func animate() tea.Cmd {
	return tea.Tick(animationInterval, func(t time.Time) tea.Msg {
		return animTickMsg(t)
	})
}
