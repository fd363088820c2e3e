package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/younwookim/xrscene/internal/domain/entity"
)

// EnvConfig holds overrides read from the environment. Unset pointer
// fields leave the scene file's value alone.
type EnvConfig struct {
	Scene        string `env:"XRSCENE_SCENE" envDefault:"demo"`
	VREnabled    *bool  `env:"XRSCENE_VR_ENABLED"`
	XRHost       string `env:"XRSCENE_XR_HOST"`
	XRSupported  *bool  `env:"XRSCENE_XR_SUPPORTED"`
	Background   string `env:"XRSCENE_BACKGROUND"`
	OTELEndpoint string `env:"XRSCENE_OTEL_ENDPOINT"`
	OTELEnabled  bool   `env:"XRSCENE_OTEL_ENABLED" envDefault:"true"`
}

// ParseEnv loads overrides from environment variables.
func ParseEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := env.Parse(&cfg); err != nil {
		return EnvConfig{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Apply writes the set overrides into cfg
func (e EnvConfig) Apply(cfg *AppConfig) error {
	if e.VREnabled != nil {
		v := *e.VREnabled
		cfg.Scene.VREnabled = &v
	}
	if e.XRHost != "" {
		cfg.XR.Host = e.XRHost
	}
	if e.XRSupported != nil {
		cfg.XR.Supported = *e.XRSupported
	}
	if e.Background != "" {
		if _, err := entity.ParseBackground(e.Background); err != nil {
			return fmt.Errorf("failed to apply XRSCENE_BACKGROUND: %w", err)
		}
		cfg.Scene.BackgroundColor = e.Background
	}
	return cfg.Validate()
}

// TracingEndpoint returns the OTLP endpoint, or "" when tracing is off
func (e EnvConfig) TracingEndpoint() string {
	if !e.OTELEnabled {
		return ""
	}
	return e.OTELEndpoint
}
