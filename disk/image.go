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
	"io"
	"os"

	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/logger"
)

// WriteImage writes the disk as a raw contiguous byte image. The image
// covers the inclusive address range from the lowest written block to the
// highest, in ascending order, with never-written holes emitted as zeroed
// blocks. Block N of the range is at byte offset N * BlockSize in the
// image; there is no header or metadata of any kind.
//
// Writing the image of an empty disk is an error because there is no
// address range to cover.
func (dsk *Disk) WriteImage(output io.Writer) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if len(dsk.blocks) == 0 {
		return curated.Errorf(EmptyStore)
	}

	addrs := dsk.list()
	first := addrs[0]
	last := addrs[len(addrs)-1]

	for a := first; ; a++ {
		if _, err := output.Write(dsk.read(a)); err != nil {
			return curated.Errorf("disk: %v", err)
		}

		// loop condition tested here rather than in the for statement.
		// last+1 is not a safe condition when last is the maximum block
		// address
		if a == last {
			break // for loop
		}
	}

	return nil
}

// ExportImage writes the disk image, as described by WriteImage, to a new
// file. An existing file at the same path is truncated.
func (dsk *Disk) ExportImage(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf("disk: %v", err)
	}

	err = dsk.WriteImage(f)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("disk: %v", err)
	}

	logger.Logf("disk", "image exported to %s", path)

	return nil
}
