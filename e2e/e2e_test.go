//go:build e2e

package e2e_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/rogpeppe/go-internal/testscript"
)

var toolresBinary string

func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "toolres-e2e-*")
	if err != nil {
		panic(err)
	}

	toolresBinary = filepath.Join(tmpDir, "toolres")

	//nolint:gosec // Building binary with static arguments, not user input
	cmd := exec.Command("go", "build", "-o", toolresBinary, "./cmd/toolres")
	cmd.Dir = ".."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		panic("failed to build toolres binary: " + err.Error())
	}

	exitCode := m.Run()

	_ = os.RemoveAll(tmpDir)

	os.Exit(exitCode)
}

func TestScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir:   "testdata",
		Setup: setupE2E,
	})
}

func setupE2E(env *testscript.Env) error {
	env.Setenv("NO_COLOR", "1")
	env.Setenv("CI", "true")

	binDir := filepath.Dir(toolresBinary)
	currentPath := env.Getenv("PATH")
	env.Setenv("PATH", binDir+string(os.PathListSeparator)+currentPath)

	homeDir := filepath.Join(env.WorkDir, ".home")
	if err := os.MkdirAll(homeDir, 0o750); err != nil {
		return err
	}
	env.Setenv("HOME", homeDir)
	env.Setenv("XDG_CONFIG_HOME", filepath.Join(homeDir, ".config"))
	env.Setenv("TOOLRES_PACKAGES_ROOT", filepath.Join(env.WorkDir, "packages"))
	env.Setenv("TOOLRES_HOST_PATH", "/usr/local/bin/dotnet")

	return nil
}
