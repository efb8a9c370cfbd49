// Package config reads project files and the tools they declare.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ProjectReader for project.json and project.yaml files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Read loads the project file in dir. project.json takes precedence over project.yaml.
func (l *Loader) Read(dir string) (*domain.Project, error) {
	configPath, err := l.findProjectFile(dir)
	if err != nil {
		return nil, err
	}

	var file ProjectFile
	if filepath.Base(configPath) == domain.ProjectJSONFileName {
		err = readAndUnmarshal(configPath, &file, json.Unmarshal)
	} else {
		err = readAndUnmarshal(configPath, &file, yaml.Unmarshal)
	}
	if err != nil {
		return nil, zerr.With(err, "path", configPath)
	}

	return buildProject(dir, &file), nil
}

func (l *Loader) findProjectFile(dir string) (string, error) {
	jsonPath := filepath.Join(dir, domain.ProjectJSONFileName)
	yamlPath := filepath.Join(dir, domain.ProjectYAMLFileName)

	jsonExists, err := fileExists(jsonPath)
	if err != nil {
		return "", err
	}
	yamlExists, err := fileExists(yamlPath)
	if err != nil {
		return "", err
	}

	switch {
	case jsonExists && yamlExists:
		l.Logger.Warn(fmt.Sprintf("both %s and %s found in %s, using %s",
			domain.ProjectJSONFileName, domain.ProjectYAMLFileName, dir, domain.ProjectJSONFileName))
		return jsonPath, nil
	case jsonExists:
		return jsonPath, nil
	case yamlExists:
		return yamlPath, nil
	default:
		return "", zerr.With(domain.ErrProjectNotFound, "dir", dir)
	}
}

func fileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrProjectReadFailed.Error()), "path", path)
	}
	return !info.IsDir(), nil
}

func readAndUnmarshal[T any](configPath string, target *T, unmarshal func([]byte, any) error) error {
	// #nosec G304 -- configPath is built from the project directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProjectReadFailed.Error())
	}

	if parseErr := unmarshal(data, target); parseErr != nil {
		return zerr.Wrap(parseErr, domain.ErrProjectParseFailed.Error())
	}

	return nil
}

func buildProject(dir string, file *ProjectFile) *domain.Project {
	project := &domain.Project{
		Name:      file.Name,
		Directory: dir,
		Tools:     make([]domain.ToolDependency, 0, len(file.Tools)),
	}
	if project.Name == "" {
		project.Name = filepath.Base(dir)
	}

	for name := range file.Frameworks {
		project.Frameworks = append(project.Frameworks, name)
	}
	slices.Sort(project.Frameworks)

	// A bad declaration only fails the tool it belongs to.
	for name, spec := range file.Tools {
		dep, err := newToolDependency(name, spec)
		if err != nil {
			dep = domain.ToolDependency{
				Name: domain.NewInternedString(name),
				Err:  zerr.With(err, "tool", name),
			}
		}
		project.Tools = append(project.Tools, dep)
	}
	slices.SortFunc(project.Tools, func(a, b domain.ToolDependency) int {
		return strings.Compare(a.Name.String(), b.Name.String())
	})

	return project
}

func newToolDependency(name string, spec ToolSpecDTO) (domain.ToolDependency, error) {
	if strings.TrimSpace(name) == "" {
		return domain.ToolDependency{}, zerr.With(domain.ErrProjectParseFailed, "reason", "empty tool name")
	}

	versionRange, err := domain.ParseVersionRange(spec.Version)
	if err != nil {
		return domain.ToolDependency{}, err
	}

	dep := domain.ToolDependency{
		Name:  domain.NewInternedString(name),
		Range: versionRange,
	}
	if spec.Framework != "" {
		if dep.Framework, err = domain.ParseFramework(spec.Framework); err != nil {
			return domain.ToolDependency{}, err
		}
	}
	return dep, nil
}
