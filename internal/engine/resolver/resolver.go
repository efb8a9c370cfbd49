// Package resolver resolves commands to tools declared by a project.
package resolver

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
)

// ProjectToolsResolver implements ports.CommandResolver for tools declared in a project file.
type ProjectToolsResolver struct {
	projects ports.ProjectReader
	locator  ports.ToolLocator
	paths    ports.ToolPathCalculator
	locks    ports.LockFileReader
	factory  ports.CommandSpecFactory
	tracer   ports.Tracer
	logger   ports.Logger
}

// NewProjectToolsResolver creates a new ProjectToolsResolver.
func NewProjectToolsResolver(
	projects ports.ProjectReader,
	locator ports.ToolLocator,
	paths ports.ToolPathCalculator,
	locks ports.LockFileReader,
	factory ports.CommandSpecFactory,
	tracer ports.Tracer,
	logger ports.Logger,
) *ProjectToolsResolver {
	return &ProjectToolsResolver{
		projects: projects,
		locator:  locator,
		paths:    paths,
		locks:    locks,
		factory:  factory,
		tracer:   tracer,
		logger:   logger,
	}
}

// Resolve returns the host invocation of the project tool named by the request.
// It reports false when the request names no directory or the project declares no such tool.
func (r *ProjectToolsResolver) Resolve(ctx context.Context, req domain.ResolutionRequest) (domain.CommandSpec, bool, error) {
	if req.CommandName == "" || req.ProjectDirectory == "" {
		return domain.CommandSpec{}, false, nil
	}

	_, span := r.tracer.Start(ctx, "resolver.project_tools",
		ports.WithAttribute("command", req.CommandName),
		ports.WithAttribute("project", req.ProjectDirectory),
	)
	defer span.End()

	project, err := r.projects.Read(req.ProjectDirectory)
	if err != nil {
		r.logger.Debug(fmt.Sprintf("no project tools in %s: %v", req.ProjectDirectory, err))
		return domain.CommandSpec{}, false, nil
	}

	dep, ok := project.Tool(req.CommandName)
	if !ok {
		r.logger.Debug(fmt.Sprintf("project %s does not declare tool %s", project.Name, req.CommandName))
		return domain.CommandSpec{}, false, nil
	}

	if dep.Err != nil {
		err := errors.Join(domain.ErrInvalidToolDeclaration, dep.Err)
		span.RecordError(err)
		return domain.CommandSpec{}, false, err
	}

	tool, err := r.locator.Locate(dep)
	if err != nil {
		span.RecordError(err)
		return domain.CommandSpec{}, false, err
	}
	span.SetAttribute("tool.version", tool.Version)
	span.SetAttribute("tool.framework", tool.Framework)

	name := tool.Name.String()
	assets := domain.ToolAssets{
		PackagesRoot: r.paths.PackagesRoot(),
		LockFilePath: r.paths.LockFilePath(name, tool.Version, tool.Framework),
		ManifestPath: r.paths.ManifestPath(name, tool.Version, tool.Framework),
	}

	assets.Graph, err = r.locks.Read(assets.LockFilePath)
	if err != nil {
		err = errors.Join(domain.ErrToolNotRestored, zerr.With(err, "tool", name))
		span.RecordError(err)
		return domain.CommandSpec{}, false, err
	}

	spec, err := r.factory.Build(tool, assets, req.Arguments())
	if err != nil {
		span.RecordError(err)
		return domain.CommandSpec{}, false, err
	}

	return spec, true, nil
}
