// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package version parses the version line appended to persisted cipher
// envelopes and compares it against format thresholds.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// linePrefix starts every version line. It is matched case-insensitively.
const linePrefix = "version:"

// MinCurrentFormat is the first release that writes current-generation
// envelopes. Anything older, or carrying no version at all, is legacy.
var MinCurrentFormat = semver.MustParse("2.1.0")

// Parse parses a plain version string. It returns nil for empty or
// unparseable input.
func Parse(s string) *semver.Version {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil
	}
	return v
}

// ParseLine extracts the version from a version line such as
// "version: 4.2.0". It returns nil when line is not a version line.
func ParseLine(line string) *semver.Version {
	line = strings.TrimSpace(line)
	if len(line) < len(linePrefix) || !strings.EqualFold(line[:len(linePrefix)], linePrefix) {
		return nil
	}
	return Parse(line[len(linePrefix):])
}

// Line formats v as a version line.
func Line(v string) string {
	return "version: " + v
}

// AtLeast reports whether v is at or above threshold. A nil version is
// always below.
func AtLeast(v, threshold *semver.Version) bool {
	if v == nil || threshold == nil {
		return v != nil
	}
	return !v.LessThan(threshold)
}

// IsCurrentFormat reports whether an envelope written by v uses the current
// generation format.
func IsCurrentFormat(v *semver.Version) bool {
	return AtLeast(v, MinCurrentFormat)
}
