package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/toolres/internal/adapters/settings"
	"go.trai.ch/toolres/internal/core/domain"
)

// isolate points HOME and XDG_CONFIG_HOME at empty directories and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, env := range []string{
		"NUGET_PACKAGES", "TOOLRES_PACKAGES_ROOT", "TOOLRES_TOOLS_DIR", "TOOLRES_DEPS_SUFFIX",
		"TOOLRES_TOOL_FRAMEWORK", "TOOLRES_HOST_NAME", "TOOLRES_HOST_PATH", "TOOLRES_LOG_LEVEL", "TOOLRES_LOG_JSON",
	} {
		t.Setenv(env, "")
	}
	return home
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	s, err := settings.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(home), s)
	assert.Equal(t, filepath.Join(home, ".nuget", "packages"), s.PackagesRoot)
}

func TestLoad_File(t *testing.T) {
	isolate(t)
	cwd := t.TempDir()
	content := "packagesRoot: /opt/packages\nhostPath: /usr/local/bin/dotnet\nlogLevel: debug\nlogJSON: true\n"
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "toolres.yaml"), []byte(content), domain.FilePerm))

	s, err := settings.Load(cwd)
	require.NoError(t, err)

	assert.Equal(t, "/opt/packages", s.PackagesRoot)
	assert.Equal(t, "/usr/local/bin/dotnet", s.HostPath)
	assert.Equal(t, "debug", s.LogLevel)
	assert.True(t, s.LogJSON)
	assert.Equal(t, ".tools", s.ToolsDir)
}

func TestLoad_UserConfigDir(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "toolres")
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "toolres.yaml"), []byte("toolsDir: tools\n"), domain.FilePerm))

	s, err := settings.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "tools", s.ToolsDir)
}

func TestLoad_Environment(t *testing.T) {
	isolate(t)
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "toolres.yaml"), []byte("packagesRoot: /from/file\n"), domain.FilePerm))

	t.Setenv("NUGET_PACKAGES", "/from/nuget")
	s, err := settings.Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, "/from/nuget", s.PackagesRoot)

	t.Setenv("TOOLRES_PACKAGES_ROOT", "/from/toolres")
	t.Setenv("TOOLRES_HOST_NAME", "dotnet-preview")
	s, err = settings.Load(cwd)
	require.NoError(t, err)
	assert.Equal(t, "/from/toolres", s.PackagesRoot)
	assert.Equal(t, "dotnet-preview", s.HostName)
}

func TestLoad_MalformedFile(t *testing.T) {
	isolate(t)
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "toolres.yaml"), []byte("packagesRoot: [unclosed\n"), domain.FilePerm))

	_, err := settings.Load(cwd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrSettingsLoadFailed.Error())
}
