package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotRestored is returned when a project declares a tool whose restore artifacts are missing or unreadable.
	ErrToolNotRestored = zerr.New("tool is declared but has not been restored")

	// ErrManifestWriteFailed is returned when the runtime manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write runtime manifest")

	// ErrManifestMarshalFailed is returned when the runtime manifest cannot be marshaled.
	ErrManifestMarshalFailed = zerr.New("failed to marshal runtime manifest")

	// ErrManifestStatFailed is returned when the manifest path cannot be checked for existence.
	ErrManifestStatFailed = zerr.New("failed to check runtime manifest")

	// ErrManifestDirCreateFailed is returned when the manifest directory cannot be created.
	ErrManifestDirCreateFailed = zerr.New("failed to create runtime manifest directory")

	// ErrLockFileNotFound is returned when a lock file does not exist.
	ErrLockFileNotFound = zerr.New("lock file not found")

	// ErrLockFileReadFailed is returned when a lock file cannot be read.
	ErrLockFileReadFailed = zerr.New("failed to read lock file")

	// ErrLockFileParseFailed is returned when a lock file cannot be parsed.
	ErrLockFileParseFailed = zerr.New("failed to parse lock file")

	// ErrTargetFrameworkNotFound is returned when a lock file has no target for the requested framework.
	ErrTargetFrameworkNotFound = zerr.New("lock file has no target for framework")

	// ErrInvalidToolDeclaration is returned when the requested tool is declared with an unparseable version or framework.
	ErrInvalidToolDeclaration = zerr.New("tool declaration is invalid")

	// ErrEntryModuleNotFound is returned when a tool package does not ship its entry module.
	ErrEntryModuleNotFound = zerr.New("tool entry module not found")

	// ErrProjectNotFound is returned when the project directory holds no project file.
	ErrProjectNotFound = zerr.New("could not find project.json or project.yaml")

	// ErrProjectReadFailed is returned when the project file cannot be read.
	ErrProjectReadFailed = zerr.New("failed to read project file")

	// ErrProjectParseFailed is returned when the project file cannot be parsed.
	ErrProjectParseFailed = zerr.New("failed to parse project file")

	// ErrInvalidVersion is returned when a version string is not a valid semantic version.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrInvalidVersionRange is returned when a version range cannot be parsed.
	ErrInvalidVersionRange = zerr.New("invalid version range")

	// ErrInvalidFramework is returned when a framework moniker cannot be parsed.
	ErrInvalidFramework = zerr.New("invalid framework moniker")

	// ErrToolVersionUnresolved is returned when no version can be chosen for a tool dependency.
	ErrToolVersionUnresolved = zerr.New("could not resolve tool version")

	// ErrToolsDirReadFailed is returned when the restored tools directory cannot be listed.
	ErrToolsDirReadFailed = zerr.New("failed to read tools directory")

	// ErrCommandNotFound is returned when no resolver matched the requested command.
	ErrCommandNotFound = zerr.New("command not found")

	// ErrSettingsLoadFailed is returned when the settings file cannot be loaded.
	ErrSettingsLoadFailed = zerr.New("failed to load settings")
)
