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

package performance_test

import (
	"strings"
	"testing"

	"github.com/dgiuliani/sdsim/performance"
	"github.com/dgiuliani/sdsim/test"
)

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("none")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileNone, true)

	// case insensitive
	p, err = performance.ParseProfileString("CPU")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileCPU, true)

	p, err = performance.ParseProfileString("mem")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileMem, true)

	p, err = performance.ParseProfileString("all")
	test.ExpectedSuccess(t, err)
	test.Equate(t, p == performance.ProfileAll, true)

	_, err = performance.ParseProfileString("everything")
	test.ExpectedFailure(t, err)
}

func TestCheck(t *testing.T) {
	w := &strings.Builder{}

	err := performance.Check(w, performance.ProfileNone, "10ms")
	test.ExpectedSuccess(t, err)
	test.Equate(t, strings.Contains(w.String(), "blocks/sec"), true)

	// an unparseable duration is an error
	err = performance.Check(w, performance.ProfileNone, "ten seconds")
	test.ExpectedFailure(t, err)
}
