package main

import (
	"context"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/xrscene/internal/application/capture"
	"github.com/younwookim/xrscene/internal/application/game"
	"github.com/younwookim/xrscene/internal/application/inspect"
	"github.com/younwookim/xrscene/internal/application/scene"
	"github.com/younwookim/xrscene/internal/application/scene/xrview"
	"github.com/younwookim/xrscene/internal/application/system"
	"github.com/younwookim/xrscene/internal/infrastructure/config"
	"github.com/younwookim/xrscene/internal/infrastructure/telemetry"
	"github.com/younwookim/xrscene/internal/infrastructure/xr"
)

func deviceScaleFactor() float64 {
	if m := ebiten.Monitor(); m != nil {
		return m.DeviceScaleFactor()
	}
	return 1
}

func main() {
	configDir := flag.String("config", "", "Load configs from a directory instead of the embedded set")
	sceneFlag := flag.String("scene", "", "Scene to load (default $XRSCENE_SCENE or demo)")
	captureFlag := flag.String("capture", "", "Record camera poses to file (e.g., -capture capture.json, or -capture auto)")
	flag.Parse()

	envCfg, err := config.ParseEnv()
	if err != nil {
		log.Fatalf("Failed to read environment: %v", err)
	}
	sceneName := envCfg.Scene
	if *sceneFlag != "" {
		sceneName = *sceneFlag
	}

	loader, err := newLoader(*configDir)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadScene(sceneName)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := envCfg.Apply(cfg); err != nil {
		log.Fatalf("Failed to apply environment: %v", err)
	}

	shutdown, err := telemetry.Setup(context.Background(), "xrscene", envCfg.TracingEndpoint())
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	sceneCfg, err := buildConfiguration(cfg)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}

	camera := inspect.NewCameraHandle()
	view := xrview.New(sceneCfg, xrview.Options{
		XR:             newXRSystem(cfg.XR),
		ReferenceSpace: xr.ReferenceSpaceType(cfg.XR.ReferenceSpace),
		Camera:         camera,
		Input:          system.NewInputSystem(),
		Width:          cfg.Display.Width,
		Height:         cfg.Display.Height,
		PixelRatio:     deviceScaleFactor(),
	})
	var current scene.Scene = view
	if path := resolveCapturePath(*captureFlag); path != "" {
		current = capture.Wrap(current, camera, sceneName, path)
	}

	g := game.New(current, cfg.Display.Width, cfg.Display.Height)
	g.SetScaleFactor(deviceScaleFactor)

	ebiten.SetWindowSize(cfg.Display.Width, cfg.Display.Height)
	ebiten.SetWindowTitle(cfg.Display.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Display.TPS)

	runErr := ebiten.RunGameWithOptions(g, &ebiten.RunGameOptions{
		ScreenTransparent: sceneCfg.Background.Transparent,
	})
	g.Close()
	view.Wait()
	if runErr != nil {
		log.Fatal(runErr)
	}
}
