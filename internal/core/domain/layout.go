package domain

import "path/filepath"

const (
	// ToolsDirName is the name of the directory under the packages root holding restored tools.
	ToolsDirName = ".tools"

	// LockFileName is the name of the restore lock file written for each tool.
	LockFileName = "project.lock.json"

	// DepsFileSuffix is appended to the tool name to form the runtime manifest file name.
	DepsFileSuffix = ".deps.json"

	// EntryModuleExtension is the file extension of a managed entry module.
	EntryModuleExtension = ".dll"

	// DefaultHostName is the program name of the host launcher.
	DefaultHostName = "dotnet"

	// DefaultToolFramework is the framework tools are restored for unless a project pins one.
	DefaultToolFramework = "netcoreapp1.0"

	// ProjectJSONFileName is the name of the JSON project file.
	ProjectJSONFileName = "project.json"

	// ProjectYAMLFileName is the name of the YAML project file.
	ProjectYAMLFileName = "project.yaml"

	// SettingsFileName is the base name of the optional settings file.
	SettingsFileName = "toolres"

	// SettingsDirName is the directory under the user config dir holding the settings file.
	SettingsDirName = "toolres"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultPackagesRoot returns the packages root used when none is configured.
// It joins the home directory with .nuget/packages.
func DefaultPackagesRoot(home string) string {
	return filepath.Join(home, ".nuget", "packages")
}
