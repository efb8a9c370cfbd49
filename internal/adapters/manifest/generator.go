// Package manifest generates the runtime manifests restored tools are launched with.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	sha512Prefix       = "sha512-"
	packageLibraryType = "package"
)

// Generator implements ports.ManifestGenerator.
// It never reads, modifies or replaces a manifest that already exists.
type Generator struct {
	logger    ports.Logger
	writeFile func(name string, data []byte, perm fs.FileMode) error
}

// NewGenerator creates a new Generator.
func NewGenerator(logger ports.Logger) *Generator {
	return &Generator{
		logger:    logger,
		writeFile: os.WriteFile,
	}
}

// EnsureManifest writes the manifest for framework to targetPath if nothing exists there yet.
func (g *Generator) EnsureManifest(graph *domain.LockFile, framework domain.Framework, targetPath string) error {
	if _, err := os.Lstat(targetPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(err, domain.ErrManifestStatFailed.Error()), "path", targetPath)
	}

	manifest, err := Build(graph, framework)
	if err != nil {
		return zerr.With(err, "path", targetPath)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrManifestMarshalFailed.Error())
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(targetPath), domain.DirPerm); err != nil {
		cause := zerr.With(zerr.Wrap(err, domain.ErrManifestDirCreateFailed.Error()), "path", targetPath)
		return errors.Join(domain.ErrManifestWriteFailed, cause)
	}

	//nolint:gosec // Path is computed from the packages root layout
	if err := g.writeFile(targetPath, data, domain.FilePerm); err != nil {
		return errors.Join(domain.ErrManifestWriteFailed, zerr.With(err, "path", targetPath))
	}

	g.logger.Debug(fmt.Sprintf("wrote runtime manifest %s", targetPath))
	return nil
}

// Build computes the runtime manifest of the framework target of graph.
// The target already holds the transitive closure of the restored dependencies.
func Build(graph *domain.LockFile, framework domain.Framework) (*domain.RuntimeManifest, error) {
	target, ok := graph.Target(framework)
	if !ok {
		return nil, zerr.With(domain.ErrTargetFrameworkNotFound, "framework", framework.ShortFolderName())
	}

	frameworkName := framework.DotNetFrameworkName()
	entries := make(map[string]domain.RuntimeManifestTarget, len(target.Libraries))
	libraries := make(map[string]domain.RuntimeManifestLibrary, len(target.Libraries))
	signatureLines := make([]string, 0, len(target.Libraries))

	for _, lib := range target.Libraries {
		key := lib.Key()

		entry := domain.RuntimeManifestTarget{}
		if len(lib.Dependencies) > 0 {
			entry.Dependencies = make(map[string]string, len(lib.Dependencies))
			for _, dep := range lib.Dependencies {
				entry.Dependencies[dep.Name.String()] = dep.Range
			}
		}
		if len(lib.RuntimeAssemblies) > 0 {
			entry.Runtime = make(map[string]struct{}, len(lib.RuntimeAssemblies))
			for _, asset := range lib.RuntimeAssemblies {
				entry.Runtime[asset] = struct{}{}
			}
		}
		entries[key] = entry

		libType := lib.Type
		library := domain.RuntimeManifestLibrary{Type: libType}
		if installed, ok := graph.Library(lib.Name.String(), lib.Version); ok {
			if libType == "" {
				library.Type = installed.Type
			}
			if installed.Sha512 != "" {
				library.Sha512 = sha512Prefix + installed.Sha512
			}
			library.Path = installed.Path
		}
		library.Serviceable = library.Type == packageLibraryType
		libraries[key] = library

		signatureLines = append(signatureLines, key+":"+library.Sha512)
	}

	return &domain.RuntimeManifest{
		RuntimeTarget: domain.RuntimeTarget{
			Name:      frameworkName,
			Signature: signature(signatureLines),
		},
		CompilationOptions: map[string]any{},
		Targets:            map[string]map[string]domain.RuntimeManifestTarget{frameworkName: entries},
		Libraries:          libraries,
	}, nil
}

func signature(lines []string) string {
	slices.Sort(lines)
	h := xxhash.New()
	for _, line := range lines {
		_, _ = h.WriteString(line)
		_, _ = h.WriteString("\n")
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
