// This file is part of Gopher86.
//
// Gopher86 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher86 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher86.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version of the application. The version number
// is set at build time with:
//
//	go build -ldflags "-X github.com/jetsetilly/gopher86/version.number=v0.1.0"
//
// Revision information is taken from the build information embedded by the
// Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Gopher86"

// if number is empty then the project was not built with a version number
var number string

// the vcs revision. if the source has been modified but has not been
// committed then the revision string will be suffixed with "+dirty"
var revision string

// "unreleased" if the project has been built without a version number but
// with vcs information. "local" if there is neither, which happens when
// running with "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered release version.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and the version. Revision information
// is included for unreleased versions.
func String() string {
	v, r, release := Version()
	if release {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

// fromBuildSettings derives the version and revision strings from the
// settings embedded by the Go toolchain.
func fromBuildSettings(settings []debug.BuildSetting) (string, string) {
	var hasVCS bool
	var rev string
	var dirty bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			hasVCS = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}

	switch {
	case rev == "":
		rev = "no revision information"
	case dirty:
		rev += "+dirty"
	}

	switch {
	case number != "":
		return number, rev
	case hasVCS:
		return "unreleased", rev
	}
	return "local", rev
}

func init() {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	version, revision = fromBuildSettings(settings)
}
