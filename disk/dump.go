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

package disk

import (
	"fmt"
	"io"
	"strings"
)

// number of bytes shown per row by Dump().
const dumpRowLen = 16

// Dump writes a human readable hex view of the block at the given address.
// A block that has never been written is reported as such rather than
// dumped as zeroes, so that blank media can be told apart from a block of
// explicit zeroes.
//
// Diagnostic use only. The output format is not part of any contract.
func (dsk *Disk) Dump(output io.Writer, addr uint32) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	stored, ok := dsk.blocks[addr]
	if !ok {
		_, err := fmt.Fprintf(output, "block %d has never been written\n", addr)
		return err
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("block %d\n", addr))
	for o := 0; o < BlockSize; o += dumpRowLen {
		s.WriteString(fmt.Sprintf("%03x |", o))
		for _, b := range stored[o : o+dumpRowLen] {
			s.WriteString(fmt.Sprintf(" %02x", b))
		}
		s.WriteString("\n")
	}

	_, err := io.WriteString(output, s.String())
	return err
}
