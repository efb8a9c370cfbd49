package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// frameworkFamily pairs the short folder prefix of a framework with its full identifier.
type frameworkFamily struct {
	short      string
	identifier string
	// compactVersion means the short form drops the dots ("net451" for 4.5.1).
	compactVersion bool
}

// Longer prefixes first so "netstandardapp" is not read as "netstandard".
var frameworkFamilies = []frameworkFamily{
	{short: "netstandardapp", identifier: ".NETStandardApp"},
	{short: "netstandard", identifier: ".NETStandard"},
	{short: "netcoreapp", identifier: ".NETCoreApp"},
	{short: "net", identifier: ".NETFramework", compactVersion: true},
}

const frameworkVersionSeparator = ",Version=v"

// Framework is a target framework moniker such as netcoreapp1.0.
type Framework struct {
	family  string
	version string
}

// ParseFramework parses a short folder name ("netcoreapp1.0", "net451") or a full
// framework name (".NETCoreApp,Version=v1.0").
func ParseFramework(raw string) (Framework, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Framework{}, zerr.With(ErrInvalidFramework, "framework", raw)
	}

	if identifier, version, ok := strings.Cut(value, frameworkVersionSeparator); ok {
		for _, f := range frameworkFamilies {
			if strings.EqualFold(f.identifier, identifier) {
				return newFramework(f, version, raw)
			}
		}
		return Framework{}, zerr.With(ErrInvalidFramework, "framework", raw)
	}

	lower := strings.ToLower(value)
	for _, f := range frameworkFamilies {
		rest, ok := strings.CutPrefix(lower, f.short)
		if !ok {
			continue
		}
		if f.compactVersion && !strings.Contains(rest, ".") {
			rest = strings.Join(strings.Split(rest, ""), ".")
		}
		return newFramework(f, rest, raw)
	}

	return Framework{}, zerr.With(ErrInvalidFramework, "framework", raw)
}

func newFramework(f frameworkFamily, version, raw string) (Framework, error) {
	if !isDottedNumber(version) {
		return Framework{}, zerr.With(ErrInvalidFramework, "framework", raw)
	}
	if !strings.Contains(version, ".") {
		version += ".0"
	}
	return Framework{family: f.short, version: version}, nil
}

func isDottedNumber(s string) bool {
	if s == "" || strings.HasPrefix(s, ".") || strings.HasSuffix(s, ".") || strings.Contains(s, "..") {
		return false
	}
	for _, r := range s {
		if (r < '0' || r > '9') && r != '.' {
			return false
		}
	}
	return true
}

// IsZero reports whether the framework was never set.
func (f Framework) IsZero() bool {
	return f.family == ""
}

// ShortFolderName returns the short moniker, e.g. netcoreapp1.0 or net451.
func (f Framework) ShortFolderName() string {
	fam, ok := f.lookup()
	if !ok {
		return ""
	}
	if fam.compactVersion {
		return fam.short + strings.ReplaceAll(f.version, ".", "")
	}
	return fam.short + f.version
}

// DotNetFrameworkName returns the full name used as a lock file target key,
// e.g. .NETCoreApp,Version=v1.0.
func (f Framework) DotNetFrameworkName() string {
	fam, ok := f.lookup()
	if !ok {
		return ""
	}
	return fam.identifier + frameworkVersionSeparator + f.version
}

// String returns the short folder name.
func (f Framework) String() string {
	return f.ShortFolderName()
}

func (f Framework) lookup() (frameworkFamily, bool) {
	for _, fam := range frameworkFamilies {
		if fam.short == f.family {
			return fam, true
		}
	}
	return frameworkFamily{}, false
}
