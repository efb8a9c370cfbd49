// Package shell resolves commands against the executable search path.
package shell

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
)

// PathResolver implements ports.CommandResolver by looking the command up on PATH.
type PathResolver struct {
	logger ports.Logger
	tracer ports.Tracer
	env    func() []string
	goos   string
}

// NewPathResolver creates a PathResolver that reads PATH from the process environment.
func NewPathResolver(logger ports.Logger, tracer ports.Tracer) *PathResolver {
	return NewPathResolverWithEnv(logger, tracer, os.Environ, runtime.GOOS)
}

// NewPathResolverWithEnv creates a PathResolver with an explicit environment source and target OS.
func NewPathResolverWithEnv(logger ports.Logger, tracer ports.Tracer, env func() []string, goos string) *PathResolver {
	return &PathResolver{
		logger: logger,
		tracer: tracer,
		env:    env,
		goos:   goos,
	}
}

// Resolve returns the executable found on PATH for the request, if any.
func (r *PathResolver) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.CommandSpec, bool, error) {
	if req.CommandName == "" {
		return domain.CommandSpec{}, false, nil
	}

	_, span := r.tracer.Start(ctx, "resolver.path", ports.WithAttribute("command", req.CommandName))
	defer span.End()

	name := req.CommandName
	if suffix := domain.ExecutableSuffix(r.goos); suffix != "" && !strings.HasSuffix(strings.ToLower(name), suffix) {
		name += suffix
	}

	found, err := LookPath(name, r.env())
	if err != nil {
		r.logger.Debug(fmt.Sprintf("%s not found on PATH", req.CommandName))
		span.SetAttribute("matched", false)
		return domain.CommandSpec{}, false, nil
	}

	span.SetAttribute("matched", true)
	return domain.CommandSpec{
		Path: found,
		Args: domain.EscapeAndJoin(req.Arguments()),
	}, true, nil
}
