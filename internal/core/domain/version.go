package domain

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
	"golang.org/x/mod/semver"
)

// Version is a normalised NuGet version.
// Versions with fewer than three numeric parts are padded ("1.0" becomes "1.0.0"), a fourth
// revision part is kept when it is not zero, and build metadata is dropped, so String() is
// stable enough to be used as a directory name.
type Version struct {
	canonical string
	revision  int
}

// ParseVersion parses a version string with or without a leading "v".
func ParseVersion(raw string) (Version, error) {
	invalid := zerr.With(ErrInvalidVersion, "version", raw)

	value := strings.TrimPrefix(strings.TrimSpace(raw), "v")
	value, _, _ = strings.Cut(value, "+")
	numeric, pre, hasPre := strings.Cut(value, "-")

	parts := strings.Split(numeric, ".")
	if numeric == "" || len(parts) > 4 {
		return Version{}, invalid
	}
	nums := make([]int, 4)
	for i, part := range parts {
		if part == "" || strings.ContainsFunc(part, func(r rune) bool { return r < '0' || r > '9' }) {
			return Version{}, invalid
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, invalid
		}
		nums[i] = n
	}

	core := fmt.Sprintf("v%d.%d.%d", nums[0], nums[1], nums[2])
	if hasPre {
		core += "-" + pre
	}
	canonical := semver.Canonical(core)
	if canonical == "" {
		return Version{}, invalid
	}
	return Version{canonical: canonical, revision: nums[3]}, nil
}

// String returns the normalised version without the "v" prefix.
func (v Version) String() string {
	if v.revision == 0 {
		return strings.TrimPrefix(v.canonical, "v")
	}
	release := v.release()
	return fmt.Sprintf("%s.%d%s", strings.TrimPrefix(release, "v"), v.revision, strings.TrimPrefix(v.canonical, release))
}

// IsZero reports whether the version was never set.
func (v Version) IsZero() bool {
	return v.canonical == ""
}

// Compare returns -1, 0 or +1 depending on whether v is lower, equal or higher than other.
// The revision orders before the pre-release label, so 1.0.0.1-beta is above 1.0.0.
func (v Version) Compare(other Version) int {
	if c := semver.Compare(v.release(), other.release()); c != 0 {
		return c
	}
	if c := cmp.Compare(v.revision, other.revision); c != 0 {
		return c
	}
	return semver.Compare(v.canonical, other.canonical)
}

// release is the canonical form without its pre-release label.
func (v Version) release() string {
	return strings.TrimSuffix(v.canonical, semver.Prerelease(v.canonical))
}

// VersionRange is a version constraint as written in a project file.
//
// Supported forms:
//
//	1.0.0        minimum version, inclusive
//	1.0.*        floating version, read as its lowest match
//	[1.0.0]      exact version
//	[1.0,2.0)    interval, either bound may be open or omitted
type VersionRange struct {
	original     string
	min          Version
	max          Version
	minInclusive bool
	maxInclusive bool
}

// ParseVersionRange parses a version range.
func ParseVersionRange(raw string) (VersionRange, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
	}

	first, last := value[0], value[len(value)-1]
	if first != '[' && first != '(' {
		v, err := ParseVersion(floatingLowerBound(value))
		if err != nil {
			return VersionRange{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionRange.Error()), "range", raw)
		}
		return VersionRange{original: value, min: v, minInclusive: true}, nil
	}

	if len(value) < 3 || (last != ']' && last != ')') {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
	}

	r := VersionRange{
		original:     value,
		minInclusive: first == '[',
		maxInclusive: last == ']',
	}
	inner := value[1 : len(value)-1]

	lower, upper, hasComma := strings.Cut(inner, ",")
	if !hasComma {
		// Only "[x]" is meaningful without a comma.
		if !r.minInclusive || !r.maxInclusive {
			return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
		}
		v, err := ParseVersion(inner)
		if err != nil {
			return VersionRange{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionRange.Error()), "range", raw)
		}
		r.min, r.max = v, v
		return r, nil
	}

	if strings.Contains(upper, ",") {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
	}

	lower, upper = strings.TrimSpace(lower), strings.TrimSpace(upper)
	if lower == "" && upper == "" {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
	}

	var err error
	if lower != "" {
		if r.min, err = ParseVersion(lower); err != nil {
			return VersionRange{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionRange.Error()), "range", raw)
		}
	}
	if upper != "" {
		if r.max, err = ParseVersion(upper); err != nil {
			return VersionRange{}, zerr.With(zerr.Wrap(err, ErrInvalidVersionRange.Error()), "range", raw)
		}
	}
	if !r.min.IsZero() && !r.max.IsZero() && r.min.Compare(r.max) > 0 {
		return VersionRange{}, zerr.With(ErrInvalidVersionRange, "range", raw)
	}

	return r, nil
}

// floatingLowerBound turns a floating version ("1.0.*", "1.0.0-*", "*") into its lowest
// matching version. Other values are returned unchanged.
func floatingLowerBound(value string) string {
	prefix, ok := strings.CutSuffix(value, "*")
	if !ok {
		return value
	}
	prefix = strings.TrimSuffix(prefix, ".")
	switch {
	case prefix == "":
		return "0"
	case strings.HasSuffix(prefix, "-"):
		return prefix + "0"
	default:
		return prefix
	}
}

// String returns the range as it was written.
func (r VersionRange) String() string {
	return r.original
}

// MinVersion returns the lower bound of the range, if any.
func (r VersionRange) MinVersion() (Version, bool) {
	return r.min, !r.min.IsZero()
}

// Satisfies reports whether v falls inside the range.
func (r VersionRange) Satisfies(v Version) bool {
	if !r.min.IsZero() {
		c := v.Compare(r.min)
		if c < 0 || (c == 0 && !r.minInclusive) {
			return false
		}
	}
	if !r.max.IsZero() {
		c := v.Compare(r.max)
		if c > 0 || (c == 0 && !r.maxInclusive) {
			return false
		}
	}
	return true
}

// FindBestMatch returns the lowest version in candidates that satisfies the range.
func (r VersionRange) FindBestMatch(candidates []Version) (Version, bool) {
	var best Version
	for _, v := range candidates {
		if !r.Satisfies(v) {
			continue
		}
		if best.IsZero() || v.Compare(best) < 0 {
			best = v
		}
	}
	return best, !best.IsZero()
}
