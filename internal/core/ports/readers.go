package ports

import "go.trai.ch/toolres/internal/core/domain"

//go:generate mockgen -source=readers.go -destination=mocks/mock_readers.go -package=mocks

// ProjectReader loads the project file of a directory.
type ProjectReader interface {
	// Read parses the project in dir and returns its declared tools.
	Read(dir string) (*domain.Project, error)
}

// LockFileReader loads a restore lock file.
type LockFileReader interface {
	// Read parses the lock file at path into a dependency graph.
	Read(path string) (*domain.LockFile, error)
}
