// Package app implements the application layer for toolres.
package app

import (
	"context"
	"fmt"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
)

// App resolves command names to runnable invocations.
type App struct {
	resolver ports.CommandResolver
	tracer   ports.Tracer
	logger   ports.Logger
}

// New creates a new App instance.
func New(resolver ports.CommandResolver, tracer ports.Tracer, log ports.Logger) *App {
	return &App{
		resolver: resolver,
		tracer:   tracer,
		logger:   log,
	}
}

// Resolve finds the command for name. The second return value is false when nothing matched.
func (a *App) Resolve(ctx context.Context, name string, args []string, projectDir string) (domain.CommandSpec, bool, error) {
	ctx, span := a.tracer.Start(ctx, "toolres.resolve",
		ports.WithAttribute("command", name),
		ports.WithAttribute("args", len(args)),
	)
	defer span.End()

	spec, ok, err := a.resolver.Resolve(ctx, domain.ResolutionRequest{
		CommandName:      name,
		CommandArguments: args,
		ProjectDirectory: projectDir,
	})
	if err != nil {
		span.RecordError(err)
		return domain.CommandSpec{}, false, err
	}

	span.SetAttribute("matched", ok)
	if !ok {
		a.logger.Debug(fmt.Sprintf("no resolver matched %s", name))
		return domain.CommandSpec{}, false, nil
	}

	a.logger.Debug(fmt.Sprintf("resolved %s to %s", name, spec.Path))
	return spec, true, nil
}

// Shutdown flushes pending telemetry.
func (a *App) Shutdown(ctx context.Context) error {
	return a.tracer.Shutdown(ctx)
}
