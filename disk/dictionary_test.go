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

func TestDictionaryRoundTrip(t *testing.T) {
	dsk := disk.NewDisk()

	test.ExpectedSuccess(t, dsk.Write(9, filled(0x09)))
	test.ExpectedSuccess(t, dsk.Write(0, filled(0x0a)))
	test.ExpectedSuccess(t, dsk.Write(3, filled(0x0b)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteDictionary(w))

	// one record per written block, nothing else
	test.Equate(t, w.Len(), 3*(4+disk.BlockSize))

	// records are in ascending address order
	test.Equate(t, w.Bytes()[:4], []byte{0x00, 0x00, 0x00, 0x00})

	// a fresh disk built from the dictionary holds the same mapping
	fresh := disk.NewDisk()
	test.ExpectedSuccess(t, fresh.ReadDictionary(w))

	test.Equate(t, fresh.NumBlocks(), dsk.NumBlocks())
	for _, a := range dsk.List() {
		test.Equate(t, fresh.Read(a), dsk.Read(a))
	}
}

func TestDictionaryEmpty(t *testing.T) {
	dsk := disk.NewDisk()

	// an empty disk produces an empty but valid dictionary
	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteDictionary(w))
	test.Equate(t, w.Len(), 0)

	// and an empty stream is a valid dictionary
	test.ExpectedSuccess(t, dsk.ReadDictionary(w))
	test.Equate(t, dsk.NumBlocks(), 0)
}

func TestDictionaryTruncatedContent(t *testing.T) {
	dsk := disk.NewDisk()
	test.ExpectedSuccess(t, dsk.Write(1, filled(0x01)))
	test.ExpectedSuccess(t, dsk.Write(2, filled(0x02)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteDictionary(w))

	// cut the stream part way through the content of the second record
	cut := w.Bytes()[:w.Len()-100]

	fresh := disk.NewDisk()
	err := fresh.ReadDictionary(bytes.NewReader(cut))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, disk.CorruptDictionary), true)

	// the complete record before the cut has been kept. the cut record has
	// not
	test.Equate(t, fresh.NumBlocks(), 1)
	test.Equate(t, fresh.Read(1), filled(0x01))
}

func TestDictionaryTruncatedAddress(t *testing.T) {
	dsk := disk.NewDisk()
	test.ExpectedSuccess(t, dsk.Write(1, filled(0x01)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteDictionary(w))

	// cut the stream so the trailing bytes look like the start of another
	// record's address
	cut := append([]byte{}, w.Bytes()...)
	cut = append(cut, 0x00, 0x00)

	fresh := disk.NewDisk()
	err := fresh.ReadDictionary(bytes.NewReader(cut))
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, disk.CorruptDictionary), true)
	test.Equate(t, fresh.NumBlocks(), 1)
}

func TestDictionaryImportMerges(t *testing.T) {
	dsk := disk.NewDisk()
	test.ExpectedSuccess(t, dsk.Write(5, filled(0x05)))

	w := &bytes.Buffer{}
	test.ExpectedSuccess(t, dsk.WriteDictionary(w))

	// importing on top of an existing disk upserts rather than replaces
	other := disk.NewDisk()
	test.ExpectedSuccess(t, other.Write(5, filled(0xff)))
	test.ExpectedSuccess(t, other.Write(6, filled(0x06)))
	test.ExpectedSuccess(t, other.ReadDictionary(w))

	test.Equate(t, other.NumBlocks(), 2)
	test.Equate(t, other.Read(5), filled(0x05))
	test.Equate(t, other.Read(6), filled(0x06))
}
