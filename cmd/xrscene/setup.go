package main

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/younwookim/xrscene/internal/application/capture"
	"github.com/younwookim/xrscene/internal/application/component"
	"github.com/younwookim/xrscene/internal/application/scene/xrview"
	"github.com/younwookim/xrscene/internal/application/system"
	"github.com/younwookim/xrscene/internal/infrastructure/config"
	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

// newLoader reads configs from dir, or from the embedded set when dir is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

// buildConfiguration turns a loaded scene file into what the scene shows
func buildConfiguration(cfg *config.AppConfig) (*xrview.Configuration, error) {
	descs, err := system.LoadComponents(component.NewFactory(), cfg.Scene.Components)
	if err != nil {
		return nil, err
	}
	bg, err := system.LoadBackground(cfg.Scene)
	if err != nil {
		return nil, err
	}
	return &xrview.Configuration{
		Components: descs,
		VREnabled:  cfg.Scene.VR(),
		Background: bg,
	}, nil
}

// newXRSystem returns the configured XR host, or nil when there is none
func newXRSystem(cfg config.XRConfig) xr.System {
	if cfg.Host != config.HostSimulator {
		return nil
	}
	return xr.NewSimulator(xr.SimulatorConfig{
		Supported:      cfg.Supported,
		ProbeDelay:     time.Duration(cfg.ProbeDelayMs) * time.Millisecond,
		RejectSessions: cfg.RejectSessions,
		IPD:            cfg.IPD,
	})
}

// captureAuto asks for a timestamped capture file in the working directory
const captureAuto = "auto"

// resolveCapturePath maps the -capture flag to a file name. Empty disables
// capture.
func resolveCapturePath(flagValue string) string {
	if flagValue == captureAuto {
		return capture.GenerateFilename()
	}
	return flagValue
}
