package domain

// Settings configures where restored tools live and how the host launcher is found.
type Settings struct {
	PackagesRoot  string `mapstructure:"packagesRoot"`
	ToolsDir      string `mapstructure:"toolsDir"`
	DepsSuffix    string `mapstructure:"depsSuffix"`
	ToolFramework string `mapstructure:"toolFramework"`
	HostName      string `mapstructure:"hostName"`
	// HostPath skips the PATH lookup of the host launcher when set.
	HostPath string `mapstructure:"hostPath"`
	LogLevel string `mapstructure:"logLevel"`
	LogJSON  bool   `mapstructure:"logJSON"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings(home string) Settings {
	return Settings{
		PackagesRoot:  DefaultPackagesRoot(home),
		ToolsDir:      ToolsDirName,
		DepsSuffix:    DepsFileSuffix,
		ToolFramework: DefaultToolFramework,
		HostName:      DefaultHostName,
		LogLevel:      "info",
	}
}
