// This file is part of sdsim.
//
// sdsim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// sdsim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with sdsim.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"strings"

	"github.com/dgiuliani/sdsim/curated"
)

// Profile says which profiles to create during a Check() run.
type Profile int

// List of valid Profile values.
const (
	ProfileNone Profile = iota
	ProfileCPU
	ProfileMem
	ProfileAll
)

// filenames of the created profiles. view with "go tool pprof".
const (
	cpuProfileFile = "cpu.profile"
	memProfileFile = "mem.profile"
)

// ParseProfileString converts a profile argument from the command line into
// a Profile value.
func ParseProfileString(s string) (Profile, error) {
	switch strings.ToUpper(s) {
	case "NONE":
		return ProfileNone, nil
	case "CPU":
		return ProfileCPU, nil
	case "MEM":
		return ProfileMem, nil
	case "ALL":
		return ProfileAll, nil
	}
	return ProfileNone, curated.Errorf("performance: %v",
		fmt.Sprintf("unrecognised profile (%s)", s))
}

// profileRun calls the run function, wrapped in whatever profiling the
// profile argument asks for.
func profileRun(profile Profile, run func() error) error {
	if profile == ProfileCPU || profile == ProfileAll {
		f, err := os.Create(cpuProfileFile)
		if err != nil {
			return err
		}
		defer f.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		return err
	}

	if profile == ProfileMem || profile == ProfileAll {
		f, err := os.Create(memProfileFile)
		if err != nil {
			return err
		}
		defer f.Close()

		// flush unreachable objects so the heap profile reflects live data
		runtime.GC()

		if err := pprof.WriteHeapProfile(f); err != nil {
			return err
		}
	}

	return nil
}
