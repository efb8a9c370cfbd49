// Package lockfile reads restore lock files into dependency graphs.
package lockfile

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path"
	"slices"
	"strings"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/zerr"
)

// placeholderAsset marks an empty asset group in a package.
const placeholderAsset = "_._"

// Reader implements ports.LockFileReader for project.lock.json files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// Read parses the lock file at path.
func (r *Reader) Read(filePath string) (*domain.LockFile, error) {
	// #nosec G304 -- path is computed from the packages root layout
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileNotFound.Error()), "path", filePath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrLockFileReadFailed.Error()), "path", filePath)
	}

	lock, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", filePath)
	}
	lock.Path = filePath
	return lock, nil
}

// Parse converts lock file JSON into a dependency graph.
// Targets bound to a runtime identifier ("<framework>/<rid>") and targets for unknown
// framework families are skipped.
func Parse(data []byte) (*domain.LockFile, error) {
	var dto lockFileDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return nil, zerr.Wrap(err, domain.ErrLockFileParseFailed.Error())
	}

	lock := &domain.LockFile{
		Version:   dto.Version,
		Targets:   make(map[string]domain.LockFileTarget, len(dto.Targets)),
		Libraries: make(map[string]domain.LockFileLibrary, len(dto.Libraries)),
	}

	for key, entry := range dto.Libraries {
		name, version, err := parseLibraryKey(key)
		if err != nil {
			return nil, err
		}
		lock.Libraries[domain.LibraryKey(name.String(), version)] = domain.LockFileLibrary{
			Name:    name,
			Version: version,
			Type:    entry.Type,
			Sha512:  entry.Sha512,
			Path:    libraryPath(entry.Path, name.String(), version),
			Files:   entry.Files,
		}
	}

	for targetName, entries := range dto.Targets {
		if strings.Contains(targetName, "/") {
			continue
		}
		// Targets for frameworks toolres cannot name are never looked up.
		fw, err := domain.ParseFramework(targetName)
		if err != nil {
			continue
		}

		target := domain.LockFileTarget{
			Framework: fw,
			Libraries: make([]domain.TargetLibrary, 0, len(entries)),
		}
		for key, entry := range entries {
			lib, err := newTargetLibrary(key, entry)
			if err != nil {
				return nil, zerr.With(err, "target", targetName)
			}
			target.Libraries = append(target.Libraries, lib)
		}
		slices.SortFunc(target.Libraries, func(a, b domain.TargetLibrary) int {
			return strings.Compare(a.Key(), b.Key())
		})

		lock.Targets[fw.DotNetFrameworkName()] = target
	}

	return lock, nil
}

func newTargetLibrary(key string, entry targetEntryDTO) (domain.TargetLibrary, error) {
	name, version, err := parseLibraryKey(key)
	if err != nil {
		return domain.TargetLibrary{}, err
	}

	deps := make([]domain.PackageDependency, 0, len(entry.Dependencies))
	for depName, depRange := range entry.Dependencies {
		deps = append(deps, domain.PackageDependency{
			Name:  domain.NewInternedString(depName),
			Range: depRange,
		})
	}
	slices.SortFunc(deps, func(a, b domain.PackageDependency) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})

	assets := make([]string, 0, len(entry.Runtime))
	for asset := range entry.Runtime {
		if path.Base(asset) == placeholderAsset {
			continue
		}
		assets = append(assets, asset)
	}
	slices.Sort(assets)

	return domain.TargetLibrary{
		Name:              name,
		Version:           version,
		Type:              entry.Type,
		Dependencies:      deps,
		RuntimeAssemblies: assets,
	}, nil
}

func parseLibraryKey(key string) (domain.InternedString, domain.Version, error) {
	name, rawVersion, ok := strings.Cut(key, "/")
	if !ok || name == "" {
		return domain.InternedString{}, domain.Version{}, zerr.With(domain.ErrLockFileParseFailed, "library", key)
	}
	version, err := domain.ParseVersion(rawVersion)
	if err != nil {
		return domain.InternedString{}, domain.Version{}, zerr.With(zerr.Wrap(err, domain.ErrLockFileParseFailed.Error()), "library", key)
	}
	return domain.NewInternedString(name), version, nil
}

// libraryPath returns the install path of a library relative to the packages root.
// Older lock files omit it; packages are then installed under "<lowercase name>/<version>".
func libraryPath(declared, name string, version domain.Version) string {
	if declared != "" {
		return declared
	}
	return strings.ToLower(name) + "/" + version.String()
}
