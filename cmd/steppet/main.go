package main

import (
	"context"
	"errors"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/stigoleg/step-pet/internal/config"
	"github.com/stigoleg/step-pet/internal/platform"
	"github.com/stigoleg/step-pet/internal/platform/patterns"
	"github.com/stigoleg/step-pet/internal/steps"
	"github.com/stigoleg/step-pet/internal/tracker"
	"github.com/stigoleg/step-pet/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

const appVersion = "0.1.0"

// Where the demo cursor walks.
var demoOrigin = platform.Point{X: 800, Y: 500}

func main() {
	cfg, err := config.ParseFlags(appVersion)
	if err != nil {
		log.Fatal(err)
	}

	f, err := tea.LogToFile(cfg.LogFile, "steppet")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, getSignalsForPlatform()...)

	counter := steps.New()
	var p *tea.Program
	t := tracker.New(counter, locatorFactory(cfg),
		tracker.WithConfig(tracker.Config{
			SampleInterval:  cfg.SampleInterval,
			BackoffInterval: cfg.BackoffInterval,
			PublishInterval: cfg.PublishInterval,
		}),
		tracker.WithEmitter(func(n uint32) {
			p.Send(ui.StepUpdateMsg(n))
		}),
	)

	var model ui.Model
	if cfg.StartPet {
		model = ui.InitialPetModel(t)
	} else {
		model = ui.InitialModel(t)
	}
	model.SetVersion(appVersion)

	p = tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithoutSignalHandler(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := t.Start(ctx); err != nil {
		log.Fatal(err)
	}

	go func() {
		sig := <-sigChan
		log.Printf("Received signal: %v", sig)
		if err := t.Stop(); err != nil {
			log.Printf("Error stopping tracker: %v", err)
		}
		p.Kill()
	}()

	_, runErr := p.Run()
	if err := t.Stop(); err != nil {
		log.Printf("Error stopping tracker: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", runErr)
		os.Exit(1)
	}
}

func locatorFactory(cfg *config.Config) tracker.LocatorFactory {
	if cfg.Demo {
		return func() (platform.Locator, error) {
			gen := patterns.NewGenerator(rand.New(rand.NewSource(time.Now().UnixNano())))
			return platform.NewSyntheticLocator(gen, demoOrigin), nil
		}
	}
	return platform.NewLocator
}
