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

package modalflag_test

import (
	"strings"
	"testing"

	"github.com/dgiuliani/sdsim/modalflag"
	"github.com/dgiuliani/sdsim/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "")
}

func TestSubModeSelection(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"dump", "-block", "5", "store.dict"})
	md.AddSubModes("REGISTERS", "DUMP")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "DUMP")

	// second layer carries the mode's flags
	md.NewMode()
	block := md.AddInt("block", -1, "block address")

	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, *block, 5)
	test.Equate(t, len(md.RemainingArgs()), 1)
	test.Equate(t, md.GetArg(0), "store.dict")

	test.Equate(t, md.Path(), "DUMP")
}

func TestDefaultSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"store.dict"})
	md.AddSubModes("REGISTERS", "DUMP")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)

	// an argument that is not a sub-mode selects the default mode and is
	// kept as a remaining argument
	test.Equate(t, md.Mode(), "REGISTERS")
	test.Equate(t, md.GetArg(0), "store.dict")
}

func TestFlagsBeforeSubMode(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-block", "5", "store.dict"})
	md.AddSubModes("DUMP", "IMAGE")

	// the first layer does not recognise the flag. the default sub-mode is
	// selected and the flag left for the next layer
	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, md.Mode(), "DUMP")

	md.NewMode()
	block := md.AddInt("block", -1, "block address")

	p, err = md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseContinue, true)
	test.Equate(t, *block, 5)
	test.Equate(t, md.GetArg(0), "store.dict")
}

func TestUnknownFlag(t *testing.T) {
	md := &modalflag.Modes{Output: &strings.Builder{}}
	md.NewArgs([]string{"-no-such-flag"})

	p, err := md.Parse()
	test.ExpectedFailure(t, err)
	test.Equate(t, p == modalflag.ParseError, true)
}

func TestHelp(t *testing.T) {
	output := &strings.Builder{}
	md := &modalflag.Modes{Output: output}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("REGISTERS", "DUMP")

	p, err := md.Parse()
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == modalflag.ParseHelp, true)
	test.Equate(t, strings.Contains(output.String(), "available sub-modes: REGISTERS, DUMP"), true)
	test.Equate(t, strings.Contains(output.String(), "default: REGISTERS"), true)
}
