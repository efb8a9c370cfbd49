package domain

// LockFile is the resolved dependency graph written by a restore.
type LockFile struct {
	// Version is the lock file format version.
	Version int
	// Path is the file the graph was read from.
	Path string
	// Targets maps a full framework name (".NETCoreApp,Version=v1.0") to its target.
	Targets map[string]LockFileTarget
	// Libraries maps "name/version" keys to the library table entries.
	Libraries map[string]LockFileLibrary
}

// Target returns the target for a framework.
func (l *LockFile) Target(fw Framework) (LockFileTarget, bool) {
	if l == nil || fw.IsZero() {
		return LockFileTarget{}, false
	}
	t, ok := l.Targets[fw.DotNetFrameworkName()]
	return t, ok
}

// Library returns the library table entry for a name and version.
func (l *LockFile) Library(name string, version Version) (LockFileLibrary, bool) {
	if l == nil {
		return LockFileLibrary{}, false
	}
	lib, ok := l.Libraries[LibraryKey(name, version)]
	return lib, ok
}

// LockFileTarget holds the libraries selected for one framework.
type LockFileTarget struct {
	Framework Framework
	// Libraries is sorted by key.
	Libraries []TargetLibrary
}

// Library returns the target library with the given name, compared ordinally.
func (t LockFileTarget) Library(name string) (TargetLibrary, bool) {
	for _, lib := range t.Libraries {
		if lib.Name.String() == name {
			return lib, true
		}
	}
	return TargetLibrary{}, false
}

// TargetLibrary is a library as resolved for a single target.
type TargetLibrary struct {
	Name              InternedString
	Version           Version
	Type              string
	Dependencies      []PackageDependency
	RuntimeAssemblies []string
}

// Key returns the "name/version" key of the library.
func (l TargetLibrary) Key() string {
	return LibraryKey(l.Name.String(), l.Version)
}

// PackageDependency is a direct dependency of a target library.
type PackageDependency struct {
	Name  InternedString
	Range string
}

// LockFileLibrary is an entry of the lock file library table.
type LockFileLibrary struct {
	Name    InternedString
	Version Version
	Type    string
	Sha512  string
	// Path is the install path relative to the packages root.
	Path  string
	Files []string
}

// LibraryKey formats the "name/version" key used by lock files and runtime manifests.
func LibraryKey(name string, version Version) string {
	return name + "/" + version.String()
}
