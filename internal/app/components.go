package app

import (
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App      *App
	Logger   ports.Logger
	Settings domain.Settings
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, logger ports.Logger, settings domain.Settings) *Components {
	return &Components{
		App:      app,
		Logger:   logger,
		Settings: settings,
	}
}
