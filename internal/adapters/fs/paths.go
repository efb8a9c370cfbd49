// Package fs locates restored tools on disk.
package fs

import (
	"path/filepath"

	"go.trai.ch/toolres/internal/core/domain"
)

// PathCalculator implements ports.ToolPathCalculator for the packages root layout:
//
//	<packagesRoot>/<toolsDir>/<name>/<version>/<framework>/project.lock.json
//	<packagesRoot>/<toolsDir>/<name>/<version>/<framework>/<name>.deps.json
type PathCalculator struct {
	packagesRoot string
	toolsDir     string
	depsSuffix   string
}

// NewPathCalculator creates a PathCalculator. Empty toolsDir and depsSuffix fall back to the defaults.
func NewPathCalculator(packagesRoot, toolsDir, depsSuffix string) *PathCalculator {
	if toolsDir == "" {
		toolsDir = domain.ToolsDirName
	}
	if depsSuffix == "" {
		depsSuffix = domain.DepsFileSuffix
	}
	return &PathCalculator{
		packagesRoot: packagesRoot,
		toolsDir:     toolsDir,
		depsSuffix:   depsSuffix,
	}
}

// PackagesRoot returns the root directory packages are restored into.
func (p *PathCalculator) PackagesRoot() string {
	return p.packagesRoot
}

// ToolDirectory returns the directory holding every restored version of a tool.
func (p *PathCalculator) ToolDirectory(name string) string {
	return filepath.Join(p.packagesRoot, p.toolsDir, name)
}

// LockFilePath returns the lock file of a restored tool.
func (p *PathCalculator) LockFilePath(name string, version domain.Version, framework domain.Framework) string {
	return filepath.Join(p.restoreDir(name, version, framework), domain.LockFileName)
}

// ManifestPath returns the runtime manifest path of a restored tool.
func (p *PathCalculator) ManifestPath(name string, version domain.Version, framework domain.Framework) string {
	return filepath.Join(p.restoreDir(name, version, framework), name+p.depsSuffix)
}

func (p *PathCalculator) restoreDir(name string, version domain.Version, framework domain.Framework) string {
	return filepath.Join(p.ToolDirectory(name), version.String(), framework.ShortFolderName())
}
