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

package disk_test

import (
	"bytes"
	"testing"

	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/disk"
	"github.com/dgiuliani/sdsim/test"
)

func TestImageEmptyStore(t *testing.T) {
	dsk := disk.NewDisk()

	w := &bytes.Buffer{}
	err := dsk.WriteImage(w)
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, disk.EmptyStore), true)
	test.Equate(t, w.Len(), 0)
}

func TestImageHolesAreZeroFilled(t *testing.T) {
	dsk := disk.NewDisk()

	// blocks 0 and 2 written, block 1 left as a hole
	test.ExpectedSuccess(t, dsk.Write(0, filled(0xaa)))
	test.ExpectedSuccess(t, dsk.Write(2, filled(0xbb)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteImage(w))

	expected := append(filled(0xaa), make([]byte, disk.BlockSize)...)
	expected = append(expected, filled(0xbb)...)

	test.Equate(t, w.Len(), 3*disk.BlockSize)
	test.Equate(t, w.Bytes(), expected)
}

func TestImageRangeStartsAtLowestBlock(t *testing.T) {
	dsk := disk.NewDisk()

	// image covers [min, max], not [0, max]
	test.ExpectedSuccess(t, dsk.Write(10, filled(0x10)))
	test.ExpectedSuccess(t, dsk.Write(11, filled(0x11)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteImage(w))

	test.Equate(t, w.Len(), 2*disk.BlockSize)
	test.Equate(t, w.Bytes()[:disk.BlockSize], filled(0x10))
}

func TestImageSingleBlock(t *testing.T) {
	dsk := disk.NewDisk()

	test.ExpectedSuccess(t, dsk.Write(0xffffffff, filled(0x55)))

	// a single block at the highest possible address must not wrap the
	// export loop around
	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteImage(w))
	test.Equate(t, w.Len(), disk.BlockSize)
}
