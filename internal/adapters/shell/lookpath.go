package shell

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookPath searches for an executable in the directories named by the PATH entry of env.
func LookPath(file string, env []string) (string, error) {
	if strings.ContainsRune(file, filepath.Separator) {
		if err := findExecutable(file); err != nil {
			return "", exec.ErrNotFound
		}
		return file, nil
	}

	var path string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			path = strings.TrimPrefix(e, "PATH=")
		}
	}

	if path == "" {
		return "", exec.ErrNotFound
	}

	for _, dir := range filepath.SplitList(path) {
		if dir == "" {
			// Unix shell semantics: path element "" means "."
			dir = "."
		}
		candidate := filepath.Join(dir, file)
		if err := findExecutable(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", exec.ErrNotFound
}

func findExecutable(file string) error {
	d, err := os.Stat(file)
	if err != nil {
		return err
	}
	if m := d.Mode(); !m.IsDir() && m&0o111 != 0 {
		return nil
	}
	return os.ErrPermission
}
