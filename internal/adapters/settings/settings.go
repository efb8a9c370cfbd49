// Package settings loads runtime settings from defaults, an optional settings file and the environment.
package settings

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"go.trai.ch/toolres/internal/core/domain"
	"go.trai.ch/zerr"
)

// envBindings lists the environment variables of each key in priority order.
var envBindings = map[string][]string{
	"packagesRoot":  {"TOOLRES_PACKAGES_ROOT", "NUGET_PACKAGES"},
	"toolsDir":      {"TOOLRES_TOOLS_DIR"},
	"depsSuffix":    {"TOOLRES_DEPS_SUFFIX"},
	"toolFramework": {"TOOLRES_TOOL_FRAMEWORK"},
	"hostName":      {"TOOLRES_HOST_NAME"},
	"hostPath":      {"TOOLRES_HOST_PATH"},
	"logLevel":      {"TOOLRES_LOG_LEVEL"},
	"logJSON":       {"TOOLRES_LOG_JSON"},
}

// Load resolves the settings for a working directory.
// Precedence, highest first: environment, toolres.yaml in cwd, toolres.yaml in the user config dir, defaults.
func Load(cwd string) (domain.Settings, error) {
	v := newViper(cwd)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
		}
	}

	var s domain.Settings
	if err := v.Unmarshal(&s); err != nil {
		return domain.Settings{}, zerr.Wrap(err, domain.ErrSettingsLoadFailed.Error())
	}
	return s, nil
}

func newViper(cwd string) *viper.Viper {
	v := viper.New()
	v.SetConfigName(domain.SettingsFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(cwd)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, domain.SettingsDirName))
	}

	for key, envs := range envBindings {
		_ = v.BindEnv(append([]string{key}, envs...)...)
	}

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()
	defaults := domain.DefaultSettings(home)

	v.SetDefault("packagesRoot", defaults.PackagesRoot)
	v.SetDefault("toolsDir", defaults.ToolsDir)
	v.SetDefault("depsSuffix", defaults.DepsSuffix)
	v.SetDefault("toolFramework", defaults.ToolFramework)
	v.SetDefault("hostName", defaults.HostName)
	v.SetDefault("hostPath", defaults.HostPath)
	v.SetDefault("logLevel", defaults.LogLevel)
	v.SetDefault("logJSON", defaults.LogJSON)
}
