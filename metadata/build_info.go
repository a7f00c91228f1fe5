/*
 * Copyright (C) 2023 The "VeilNetwork/desktop" Authors.
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

// Package metadata contains build information of the executable, usually
// provided by the build system via linker flags. Default values are populated
// for local builds.
package metadata

import "fmt"

var (
	// Version comes from the BUILD_VERSION env variable (set via linker flags)
	Version = "source.dev-build"
	// BuildCommit comes from the BUILD_COMMIT env variable (set via linker flags)
	BuildCommit = ""
	// BuildBranch comes from the BUILD_BRANCH env variable (set via linker flags)
	BuildBranch = "<unknown>"
	// BuildNumber comes from the BUILD_NUMBER env variable (set via linker flags)
	BuildNumber = "dev-build"
)

// VersionAsString returns the version as a single string
func VersionAsString() string {
	return Version
}

// BuildAsString returns all defined build constants as a single string
func BuildAsString() string {
	return FormatString(BuildCommit, BuildBranch, BuildNumber)
}

// FormatString formats build info to string with given build data
func FormatString(commit, branch, buildNumber string) string {
	return fmt.Sprintf("Branch: %s. Build id: %s. Commit: %s", branch, buildNumber, commit)
}
