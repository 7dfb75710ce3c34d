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

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/jetsetilly/gopher86/curated"
)

// Profile specifies which profiles should be created by RunProfiler().
type Profile int

// List of valid Profile values. Values can be combined.
const (
	ProfileNone Profile = 0x00
	ProfileCPU  Profile = 0x01
	ProfileMem  Profile = 0x02
	ProfileAll          = ProfileCPU | ProfileMem
)

// ProfileError is the curated error pattern returned by the profiling
// functions.
const ProfileError = "profile: %v"

// ParseProfileString converts a comma separated list of profile names to a
// Profile value. Valid names are "none", "cpu", "mem" and "all". The empty
// string is the same as "none".
func ParseProfileString(s string) (Profile, error) {
	var p Profile

	for _, n := range strings.Split(s, ",") {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "", "none":
		case "cpu":
			p |= ProfileCPU
		case "mem":
			p |= ProfileMem
		case "all":
			p |= ProfileAll
		default:
			return ProfileNone, curated.Errorf(ProfileError, fmt.Sprintf("unknown profile type (%s)", n))
		}
	}

	return p, nil
}

func (p Profile) String() string {
	switch p {
	case ProfileNone:
		return "none"
	case ProfileCPU:
		return "cpu"
	case ProfileMem:
		return "mem"
	case ProfileAll:
		return "all"
	}
	return ""
}

// RunProfiler runs the supplied function and creates the requested profile
// files. The filenames of the profiles are prefixed with filenameHeader, for
// example "run_cpu.profile".
func RunProfiler(profile Profile, filenameHeader string, run func() error) error {
	err := cpuProfile(profile&ProfileCPU == ProfileCPU, fmt.Sprintf("%s_cpu.profile", filenameHeader), run)
	if err != nil {
		return err
	}
	return memProfile(profile&ProfileMem == ProfileMem, fmt.Sprintf("%s_mem.profile", filenameHeader))
}

func cpuProfile(profile bool, outFile string, run func() error) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		err = pprof.StartCPUProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer pprof.StopCPUProfile()
	}

	return run()
}

func memProfile(profile bool, outFile string) error {
	if profile {
		f, err := os.Create(outFile)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
		defer f.Close()

		runtime.GC()
		err = pprof.WriteHeapProfile(f)
		if err != nil {
			return curated.Errorf(ProfileError, err)
		}
	}

	return nil
}
