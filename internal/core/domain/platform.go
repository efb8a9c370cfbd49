package domain

// Platform restricts something to a set of operating systems.
type Platform int

const (
	// PlatformAlways applies on every operating system.
	PlatformAlways Platform = iota
	// PlatformWindowsOnly applies only on Windows.
	PlatformWindowsOnly
	// PlatformNonWindows applies everywhere except Windows.
	PlatformNonWindows
)

// Applies reports whether the platform predicate holds for goos (a runtime.GOOS value).
func (p Platform) Applies(goos string) bool {
	switch p {
	case PlatformWindowsOnly:
		return goos == "windows"
	case PlatformNonWindows:
		return goos != "windows"
	default:
		return true
	}
}

// String returns a readable name for the platform.
func (p Platform) String() string {
	switch p {
	case PlatformWindowsOnly:
		return "windows-only"
	case PlatformNonWindows:
		return "non-windows"
	default:
		return "always"
	}
}

// ExecutableSuffix returns the suffix executables carry on goos.
func ExecutableSuffix(goos string) string {
	if PlatformWindowsOnly.Applies(goos) {
		return ".exe"
	}
	return ""
}
