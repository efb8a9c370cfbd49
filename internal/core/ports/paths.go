package ports

import "go.trai.ch/toolres/internal/core/domain"

//go:generate mockgen -source=paths.go -destination=mocks/mock_paths.go -package=mocks

// ToolPathCalculator computes where the restore artifacts of a tool live.
// Implementations must be pure: the same inputs always give the same paths.
type ToolPathCalculator interface {
	// PackagesRoot returns the root directory packages are restored into.
	PackagesRoot() string
	// ToolDirectory returns the directory holding every restored version of a tool.
	ToolDirectory(name string) string
	// LockFilePath returns the lock file written when the tool was restored.
	LockFilePath(name string, version domain.Version, framework domain.Framework) string
	// ManifestPath returns where the runtime manifest of the tool belongs.
	ManifestPath(name string, version domain.Version, framework domain.Framework) string
}

// ToolLocator pins a declared tool to a concrete version and framework.
type ToolLocator interface {
	Locate(dep domain.ToolDependency) (domain.ToolIdentity, error)
}
