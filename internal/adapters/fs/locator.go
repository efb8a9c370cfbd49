package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Locator implements ports.ToolLocator by scanning the restored versions of a tool.
type Locator struct {
	paths            ports.ToolPathCalculator
	defaultFramework domain.Framework
}

// NewLocator creates a Locator. Tools that do not pin a framework use defaultFramework.
func NewLocator(paths ports.ToolPathCalculator, defaultFramework domain.Framework) *Locator {
	return &Locator{
		paths:            paths,
		defaultFramework: defaultFramework,
	}
}

// Locate picks the lowest restored version satisfying the declared range.
// When nothing restored matches, the lower bound of the range is returned so the caller can
// report the tool as not restored.
func (l *Locator) Locate(dep domain.ToolDependency) (domain.ToolIdentity, error) {
	framework := dep.Framework
	if framework.IsZero() {
		framework = l.defaultFramework
	}

	dir := l.paths.ToolDirectory(dep.Name.String())
	restored, err := restoredVersions(dir)
	if err != nil {
		return domain.ToolIdentity{}, zerr.With(err, "tool", dep.Name.String())
	}

	version, ok := dep.Range.FindBestMatch(restored)
	if !ok {
		version, ok = dep.Range.MinVersion()
	}
	if !ok {
		err := zerr.With(domain.ErrToolVersionUnresolved, "tool", dep.Name.String())
		return domain.ToolIdentity{}, zerr.With(err, "range", dep.Range.String())
	}

	return domain.ToolIdentity{
		Name:      dep.Name,
		Version:   version,
		Framework: framework,
	}, nil
}

func restoredVersions(dir string) ([]domain.Version, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrToolsDirReadFailed.Error()), "path", dir)
	}

	versions := make([]domain.Version, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		v, err := domain.ParseVersion(entry.Name())
		if err != nil {
			continue
		}
		versions = append(versions, v)
	}
	return versions, nil
}
