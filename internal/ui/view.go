package ui

import (
	"fmt"
	"strings"
)

// petFrames is the running dog, one frame per leg position.
var petFrames = []string{
	"   __\n" +
		"o-''|\\_____/)\n" +
		" \\_/|_)     )\n" +
		"    \\  __  /\n" +
		"    (_/ (_/",
	"   __\n" +
		"o-''|\\_____/)\n" +
		" \\_/|_)     )\n" +
		"    \\  __  /\n" +
		"     )_) )_)",
	"   __\n" +
		"o-''|\\_____/)\n" +
		" \\_/|_)     )\n" +
		"    \\  __  /\n" +
		"    /_/ /_/",
}

// View renders the current state of the model to a string.
func View(m Model) string {
	if m.ShowHelp {
		return helpView(m)
	}

	switch m.Screen {
	case screenPet:
		return petView(m)
	default:
		return mainView(m)
	}
}

func mainView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Step Pet"))
	b.WriteString("\n\n")

	var card strings.Builder
	card.WriteString(Current.Label.Render("Steps today"))
	card.WriteString("\n")
	card.WriteString(Current.Steps.Render(formatSteps(m.Steps)))
	if d := m.Delta(); d != 0 {
		card.WriteString(Current.Delta.Render(fmt.Sprintf("%+d", d)))
	}
	card.WriteString("\n\n")
	card.WriteString(Current.Label.Render(fmt.Sprintf("Distance walked: %.1f m", m.Distance())))
	card.WriteString("\n\n")
	card.WriteString(Current.Label.Render(fmt.Sprintf("Lap %d progress", m.Steps/StepsPerLap+1)))
	card.WriteString("\n ")
	card.WriteString(m.progress.ViewAs(m.LapProgress()))
	card.WriteString("\n\n")
	if m.Steps > 0 {
		card.WriteString(Current.Active.Render("Listening to your mouse"))
	} else {
		card.WriteString(Current.Waiting.Render("Waiting for mouse movement..."))
	}
	b.WriteString(Current.Card.Render(card.String()))
	b.WriteString("\n")

	if m.SamplerIssue != "" {
		b.WriteString("\n" + Current.Warning.Render("Cursor tracking stopped: "+m.SamplerIssue))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + m.help.View(m.keys.ForScreen(screenMain)))
	return b.String()
}

func petView(m Model) string {
	var b strings.Builder

	frame := petFrames[int(m.phase)%len(petFrames)]
	b.WriteString(Current.Pet.Render(frame))
	b.WriteString("\n\n")
	b.WriteString(Current.Steps.Render(formatSteps(m.Steps) + " steps"))
	b.WriteString(Current.Label.Render(fmt.Sprintf("running at %.1fx", PetSpeed(m.Steps))))

	if m.SamplerIssue != "" {
		b.WriteString("\n" + Current.Warning.Render("zzz... cursor tracking stopped"))
	}

	b.WriteString("\n\n" + m.help.View(m.keys.ForScreen(screenPet)))
	return b.String()
}

// formatSteps groups digits in thousands: 12345 -> 12,345.
func formatSteps(n uint32) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func helpView(m Model) string {
	version := m.version
	if version == "" {
		version = "dev"
	}

	help := `Step Pet Help (` + version + `)

Every 100 pixels your mouse pointer travels counts as one step.

Usage:
  steppet [flags]

Flags:
  -pet               Start on the pet screen
  -demo              Walk a synthetic cursor instead of the real one
  -log string        Log file (default "debug.log")
  -sample string     Sampling interval (default "50ms")
  -backoff string    Retry delay after a permission error (default "5s")
  -publish string    Display refresh interval (default "1s")
  -v, -version       Show version information

Keys:
  r          : Reset the counter
  p/Tab      : Switch between steps and pet
  h/?        : Toggle this help
  q/Esc      : Quit

Press 'h' or 'Esc' to close help`

	return Current.Help.Render(help)
}
