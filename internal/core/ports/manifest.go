package ports

import "go.trai.ch/toolres/internal/core/domain"

// ManifestGenerator writes runtime manifests.
//
//go:generate mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestGenerator interface {
	// EnsureManifest writes the manifest for framework to targetPath unless something already exists there.
	// Existing content is never read or modified.
	EnsureManifest(graph *domain.LockFile, framework domain.Framework, targetPath string) error
}
