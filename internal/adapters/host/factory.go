// Package host builds invocations of restored tools through the host launcher.
package host

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"go.trai.ch/toolres/internal/adapters/shell"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports"
	"go.trai.ch/zerr"
)

// Factory implements ports.CommandSpecFactory.
type Factory struct {
	manifests ports.ManifestGenerator
	hostName  string
	hostPath  string
	goos      string
	lookPath  func(file string) (string, error)
}

// Option configures a Factory.
type Option func(*Factory)

// WithHostPath makes the factory use path as the launcher instead of searching PATH.
func WithHostPath(path string) Option {
	return func(f *Factory) {
		f.hostPath = path
	}
}

// WithLookPath replaces the PATH search used to find the launcher.
func WithLookPath(lookPath func(file string) (string, error)) Option {
	return func(f *Factory) {
		f.lookPath = lookPath
	}
}

// WithGOOS sets the operating system the launcher name is computed for.
func WithGOOS(goos string) Option {
	return func(f *Factory) {
		f.goos = goos
	}
}

// NewFactory creates a Factory launching tools through hostName.
func NewFactory(manifests ports.ManifestGenerator, hostName string, opts ...Option) *Factory {
	if hostName == "" {
		hostName = domain.DefaultHostName
	}
	f := &Factory{
		manifests: manifests,
		hostName:  hostName,
		goos:      runtime.GOOS,
		lookPath: func(file string) (string, error) {
			return shell.LookPath(file, os.Environ())
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Build ensures the runtime manifest of the tool exists and returns the host invocation
// that runs its entry module with args.
func (f *Factory) Build(tool domain.ToolIdentity, assets domain.ToolAssets, args []string) (domain.CommandSpec, error) {
	entry, err := f.entryModule(tool, assets)
	if err != nil {
		return domain.CommandSpec{}, err
	}

	if err := f.manifests.EnsureManifest(assets.Graph, tool.Framework, assets.ManifestPath); err != nil {
		return domain.CommandSpec{}, err
	}

	// Every element, the entry module included, is escaped the same way: paths are quoted
	// only when they contain whitespace.
	argv := make([]string, 0, 6+len(args))
	argv = append(argv,
		"exec",
		"--depsfile", assets.ManifestPath,
		"--additionalprobingpath", assets.PackagesRoot,
		entry,
	)
	argv = append(argv, args...)

	return domain.CommandSpec{
		Path: f.launcher(),
		Args: domain.EscapeAndJoin(argv),
	}, nil
}

func (f *Factory) entryModule(tool domain.ToolIdentity, assets domain.ToolAssets) (string, error) {
	name := tool.Name.String()
	notFound := func() error {
		err := zerr.With(domain.ErrEntryModuleNotFound, "tool", name)
		return zerr.With(err, "framework", tool.Framework.String())
	}

	target, ok := assets.Graph.Target(tool.Framework)
	if !ok {
		return "", notFound()
	}
	lib, ok := target.Library(name)
	if !ok {
		return "", notFound()
	}

	want := name + domain.EntryModuleExtension
	for _, asset := range lib.RuntimeAssemblies {
		if !strings.EqualFold(path.Base(asset), want) {
			continue
		}
		libPath := strings.ToLower(name) + "/" + lib.Version.String()
		if entry, ok := assets.Graph.Library(name, lib.Version); ok {
			// A file list that omits the asset means the package was restored without it.
			if len(entry.Files) > 0 && !slices.Contains(entry.Files, asset) {
				return "", notFound()
			}
			if entry.Path != "" {
				libPath = entry.Path
			}
		}
		return filepath.Join(assets.PackagesRoot, filepath.FromSlash(libPath), filepath.FromSlash(asset)), nil
	}
	return "", notFound()
}

func (f *Factory) launcher() string {
	if f.hostPath != "" {
		return f.hostPath
	}
	name := f.hostName + domain.ExecutableSuffix(f.goos)
	if found, err := f.lookPath(name); err == nil {
		return found
	}
	return name
}
