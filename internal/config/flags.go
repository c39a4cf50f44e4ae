package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"
	"github.com/stigoleg/step-pet/internal/ui"
	"github.com/stigoleg/step-pet/internal/util"
)

// Environment variables that provide flag defaults. They can also be set in a
// .env file in the working directory.
const (
	EnvLogFile         = "STEPPET_LOG_FILE"
	EnvStartPet        = "STEPPET_START_PET"
	EnvDemo            = "STEPPET_DEMO"
	EnvSampleInterval  = "STEPPET_SAMPLE_INTERVAL"
	EnvBackoffInterval = "STEPPET_BACKOFF_INTERVAL"
	EnvPublishInterval = "STEPPET_PUBLISH_INTERVAL"
)

type Config struct {
	LogFile         string
	StartPet        bool
	Demo            bool
	SampleInterval  time.Duration
	BackoffInterval time.Duration
	PublishInterval time.Duration
	ShowVersion     bool
}

func formatError(err error) string {
	msg := err.Error()
	parts := strings.SplitN(msg, "\n\n", 2)
	if len(parts) == 2 {
		errorBox := ui.Current.Help.
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FF4040"))

		header := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF4040")).
			Render(parts[0])

		details := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#999999")).
			Render(parts[1])

		return errorBox.Render(fmt.Sprintf("%s\n\n%s", header, details))
	}
	return ui.Current.Error.Render(msg)
}

// ParseFlags parses os.Args, printing errors and exiting on bad input.
func ParseFlags(version string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := Parse(os.Args[1:])
	if err == flag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		fmt.Println(formatError(err))
		os.Exit(1)
	}

	if cfg.ShowVersion {
		fmt.Printf("Step Pet Version: %s\n", version)
		os.Exit(0)
	}
	return cfg, nil
}

// Parse builds a Config from args, using environment variables as defaults.
func Parse(args []string) (*Config, error) {
	flags := flag.NewFlagSet("steppet", flag.ContinueOnError)
	flags.Usage = func() {
		model := ui.InitialModel(nil)
		model.ShowHelp = true
		fmt.Print(model.View())
	}

	logFile := flags.String("log", envString(EnvLogFile, "debug.log"), "Log file")
	startPet := flags.Bool("pet", envBool(EnvStartPet), "Start on the pet screen")
	demo := flags.Bool("demo", envBool(EnvDemo), "Walk a synthetic cursor instead of the real one")
	sample := flags.String("sample", envString(EnvSampleInterval, "50ms"), "Sampling interval")
	backoff := flags.String("backoff", envString(EnvBackoffInterval, "5s"), "Retry delay after a permission error")
	publish := flags.String("publish", envString(EnvPublishInterval, "1s"), "Display refresh interval")
	showVersion := flags.Bool("version", false, "Show version information")
	flags.BoolVar(showVersion, "v", false, "Show version information")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{
		LogFile:     *logFile,
		StartPet:    *startPet,
		Demo:        *demo,
		ShowVersion: *showVersion,
	}

	var err error
	if cfg.SampleInterval, err = util.ParseInterval(*sample); err != nil {
		return nil, fmt.Errorf("-sample: %w", err)
	}
	if cfg.BackoffInterval, err = util.ParseInterval(*backoff); err != nil {
		return nil, fmt.Errorf("-backoff: %w", err)
	}
	if cfg.PublishInterval, err = util.ParseInterval(*publish); err != nil {
		return nil, fmt.Errorf("-publish: %w", err)
	}
	return cfg, nil
}

func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}
