//go:build darwin

package platform

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/stigoleg/step-pet/internal/util"
)

const (
	// trustProbeEvery limits how often osascript is spawned to check
	// Accessibility trust.
	trustProbeEvery = 5 * time.Second

	scriptExecutionTimeout = 3 * time.Second
)

const trustScript = `
ObjC.import('ApplicationServices');
console.log($.AXIsProcessTrusted() ? "trusted" : "untrusted");
`

type darwinLocator struct {
	mu        sync.Mutex
	trusted   bool
	lastProbe time.Time
	probe     func() (bool, error)
}

func (d *darwinLocator) Location() (Point, error) {
	ok, err := d.isTrusted()
	if err != nil {
		return Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !ok {
		return Point{}, ErrPermissionDenied
	}
	x, y := robotgo.Location()
	return Point{X: x, Y: y}, nil
}

func (d *darwinLocator) isTrusted() (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.trusted || time.Since(d.lastProbe) < trustProbeEvery {
		return d.trusted, nil
	}
	d.lastProbe = time.Now()

	ok, err := d.probe()
	if err != nil {
		return false, err
	}
	d.trusted = ok
	return ok, nil
}

func probeAccessibility() (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), scriptExecutionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "osascript", "-l", "JavaScript", "-e", trustScript).CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return false, fmt.Errorf("osascript timed out after %s", scriptExecutionTimeout)
	}
	if err != nil {
		return false, fmt.Errorf("osascript failed: %v (output: %q)", err, string(out))
	}
	return strings.TrimSpace(string(out)) == "trusted", nil
}

// NewLocator returns a locator backed by robotgo, gated on Accessibility trust.
func NewLocator() (Locator, error) {
	if !util.HasCommand("osascript") {
		log.Printf("darwin: osascript not available; skipping Accessibility probe")
		return &darwinLocator{trusted: true}, nil
	}
	return &darwinLocator{probe: probeAccessibility}, nil
}

// PermissionHelp explains how to let the process read the cursor.
func PermissionHelp() string {
	return "Open System Settings, Privacy and Security, Accessibility, then add and enable " +
		"this app. If you run it from a terminal, enable the terminal app instead."
}
