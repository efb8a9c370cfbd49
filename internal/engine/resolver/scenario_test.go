package resolver_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolres/internal/adapters/config"
	"go.trai.ch/toolres/internal/adapters/fs"
	"go.trai.ch/toolres/internal/adapters/host"
	"go.trai.ch/toolres/internal/adapters/lockfile"
	"go.trai.ch/toolres/internal/adapters/manifest"
	"go.trai.ch/toolres/internal/adapters/telemetry"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/toolres/internal/core/ports/mocks"
	"go.trai.ch/toolres/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const projectDir = "testdata/AppWithToolDependency"

// newRealResolver wires the production adapters against a copy of the packages fixture.
func newRealResolver(t *testing.T) (*resolver.ProjectToolsResolver, *fs.PathCalculator) {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.CopyFS(root, os.DirFS(filepath.Join("testdata", "packages"))))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	fw, err := domain.ParseFramework(domain.DefaultToolFramework)
	require.NoError(t, err)

	paths := fs.NewPathCalculator(root, "", "")
	factory := host.NewFactory(manifest.NewGenerator(log), domain.DefaultHostName,
		host.WithLookPath(func(string) (string, error) { return "", exec.ErrNotFound }),
	)

	r := resolver.NewProjectToolsResolver(
		config.NewLoader(log),
		fs.NewLocator(paths, fw),
		paths,
		lockfile.NewReader(),
		factory,
		telemetry.NewNoOpTracer(),
		log,
	)
	return r, paths
}

func manifestPath(t *testing.T, paths *fs.PathCalculator) string {
	t.Helper()
	v, err := domain.ParseVersion("1.0.0")
	require.NoError(t, err)
	fw, err := domain.ParseFramework(domain.DefaultToolFramework)
	require.NoError(t, err)
	return paths.ManifestPath("dotnet-portable", v, fw)
}

func TestScenario_ToolWithoutArguments(t *testing.T) {
	r, paths := newRealResolver(t)

	spec, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-portable",
		ProjectDirectory: projectDir,
	})
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, domain.DefaultHostName+domain.ExecutableSuffix(runtime.GOOS), filepath.Base(spec.Path))
	assert.Contains(t, spec.Args, "dotnet-portable.dll")
	assert.FileExists(t, manifestPath(t, paths))
}

func TestScenario_ArgumentWithSpaceIsQuoted(t *testing.T) {
	r, _ := newRealResolver(t)

	spec, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-portable",
		CommandArguments: []string{"arg with space"},
		ProjectDirectory: projectDir,
	})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Contains(t, spec.Args, `"arg with space"`)
}

func TestScenario_ExistingManifestIsKept(t *testing.T) {
	r, paths := newRealResolver(t)
	target := manifestPath(t, paths)
	require.NoError(t, os.WriteFile(target, []byte("temp"), domain.FilePerm))

	_, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-portable",
		ProjectDirectory: projectDir,
	})
	require.NoError(t, err)
	require.True(t, ok)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "temp", string(data))
}

func TestScenario_UnknownCommand(t *testing.T) {
	r, _ := newRealResolver(t)

	_, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-unknown",
		ProjectDirectory: projectDir,
	})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestScenario_ToolNotRestored(t *testing.T) {
	r, _ := newRealResolver(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectJSONFileName),
		[]byte(`{"tools": {"dotnet-missing": "2.0.0"}}`), domain.FilePerm))

	_, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-missing",
		ProjectDirectory: dir,
	})
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrToolNotRestored)
}

func TestScenario_UnrelatedBadDeclarations(t *testing.T) {
	tests := []struct {
		name    string
		project string
	}{
		{
			name:    "unknown framework key",
			project: `{"frameworks": {"uap10.0": {}, "netcoreapp1.0": {}}, "tools": {"dotnet-portable": "1.0.0"}}`,
		},
		{
			name:    "unparseable sibling tool",
			project: `{"tools": {"dotnet-portable": "1.0.0", "other": "not-a-version"}}`,
		},
		{
			name:    "floating sibling tool",
			project: `{"tools": {"dotnet-portable": "1.0.0", "other": "1.0.0-*"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newRealResolver(t)
			dir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectJSONFileName), []byte(tt.project), domain.FilePerm))

			spec, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
				CommandName:      "dotnet-portable",
				ProjectDirectory: dir,
			})
			require.NoError(t, err)
			require.True(t, ok)
			assert.Contains(t, spec.Args, "dotnet-portable.dll")
		})
	}
}

func TestScenario_RequestedToolInvalid(t *testing.T) {
	r, _ := newRealResolver(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, domain.ProjectJSONFileName),
		[]byte(`{"tools": {"dotnet-portable": "not-a-version"}}`), domain.FilePerm))

	_, ok, err := r.Resolve(context.Background(), domain.ResolutionRequest{
		CommandName:      "dotnet-portable",
		ProjectDirectory: dir,
	})
	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrInvalidToolDeclaration)
}
