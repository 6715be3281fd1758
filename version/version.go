// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the name and version of the application. The
// version number is set at link time by the release makefile target. Revision
// information is taken from the build information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "gbdumper"

// set by the linker for release builds:
//
//	-ldflags "-X github.com/jetsetilly/gbdumper/version.number=v0.1.0"
var number string

// the vcs revision. suffixed with "+dirty" if the source has been modified
// but not committed
var revision string

// the version string is "unreleased" if the project has been built without a
// version number, or "local" if there is no vcs information either. the
// latter happens with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	return version, revision, version == number
}

// String returns a single line describing the application and version.
func String() string {
	if version == number {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	var vcs bool
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	revision = vcsRevision
	switch {
	case revision == "":
		revision = "no revision information"
	case vcsModified:
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		version = number
	case vcs:
		version = "unreleased"
	default:
		version = "local"
	}
}
