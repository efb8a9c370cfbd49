package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolres/internal/adapters/fs"
	"go.trai.ch/toolres/internal/core/domain"
)

func newDependency(t *testing.T, name, versionRange, framework string) domain.ToolDependency {
	t.Helper()
	r, err := domain.ParseVersionRange(versionRange)
	require.NoError(t, err)
	dep := domain.ToolDependency{Name: domain.NewInternedString(name), Range: r}
	if framework != "" {
		dep.Framework, err = domain.ParseFramework(framework)
		require.NoError(t, err)
	}
	return dep
}

func restoreVersions(t *testing.T, root, name string, versions ...string) {
	t.Helper()
	for _, v := range versions {
		require.NoError(t, os.MkdirAll(filepath.Join(root, ".tools", name, v), domain.DirPerm))
	}
}

func TestLocator_Locate(t *testing.T) {
	defaultFramework, err := domain.ParseFramework(domain.DefaultToolFramework)
	require.NoError(t, err)

	tests := []struct {
		name          string
		restored      []string
		versionRange  string
		framework     string
		wantVersion   string
		wantFramework string
	}{
		{
			name:          "lowest satisfying restored version",
			restored:      []string{"0.9.0", "1.2.0", "1.1.0", "2.0.0"},
			versionRange:  "1.0.0",
			wantVersion:   "1.1.0",
			wantFramework: "netcoreapp1.0",
		},
		{
			name:          "interval",
			restored:      []string{"1.1.0", "2.0.0", "2.5.0"},
			versionRange:  "[2.0,3.0)",
			wantVersion:   "2.0.0",
			wantFramework: "netcoreapp1.0",
		},
		{
			name:          "nothing restored falls back to the minimum",
			versionRange:  "1.0.0",
			wantVersion:   "1.0.0",
			wantFramework: "netcoreapp1.0",
		},
		{
			name:          "no match falls back to the minimum",
			restored:      []string{"0.5.0"},
			versionRange:  "[1.0,2.0)",
			wantVersion:   "1.0.0",
			wantFramework: "netcoreapp1.0",
		},
		{
			name:          "pinned framework",
			restored:      []string{"1.0.0"},
			versionRange:  "1.0.0",
			framework:     "netcoreapp1.1",
			wantVersion:   "1.0.0",
			wantFramework: "netcoreapp1.1",
		},
		{
			name:          "non version directories are ignored",
			restored:      []string{"latest", "1.3.0"},
			versionRange:  "1.0.0",
			wantVersion:   "1.3.0",
			wantFramework: "netcoreapp1.0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			restoreVersions(t, root, "dotnet-portable", tt.restored...)
			locator := fs.NewLocator(fs.NewPathCalculator(root, "", ""), defaultFramework)

			id, err := locator.Locate(newDependency(t, "dotnet-portable", tt.versionRange, tt.framework))
			require.NoError(t, err)

			assert.Equal(t, "dotnet-portable", id.Name.String())
			assert.Equal(t, tt.wantVersion, id.Version.String())
			assert.Equal(t, tt.wantFramework, id.Framework.ShortFolderName())
		})
	}
}

func TestLocator_Unresolved(t *testing.T) {
	defaultFramework, err := domain.ParseFramework(domain.DefaultToolFramework)
	require.NoError(t, err)
	locator := fs.NewLocator(fs.NewPathCalculator(t.TempDir(), "", ""), defaultFramework)

	_, err = locator.Locate(newDependency(t, "dotnet-portable", "(,2.0]", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolVersionUnresolved.Error())
}

func TestLocator_ToolsDirUnreadable(t *testing.T) {
	root := t.TempDir()
	toolDir := filepath.Join(root, ".tools", "dotnet-portable")
	require.NoError(t, os.MkdirAll(filepath.Dir(toolDir), domain.DirPerm))
	// A regular file where the tool directory is expected.
	require.NoError(t, os.WriteFile(toolDir, []byte("x"), domain.FilePerm))

	defaultFramework, err := domain.ParseFramework(domain.DefaultToolFramework)
	require.NoError(t, err)
	locator := fs.NewLocator(fs.NewPathCalculator(root, "", ""), defaultFramework)

	_, err = locator.Locate(newDependency(t, "dotnet-portable", "1.0.0", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrToolsDirReadFailed.Error())
}
