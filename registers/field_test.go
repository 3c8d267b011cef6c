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

package registers_test

import (
	"testing"

	"github.com/dgiuliani/sdsim/curated"
	"github.com/dgiuliani/sdsim/registers"
	"github.com/dgiuliani/sdsim/test"
)

func TestPack(t *testing.T) {
	// fields spanning byte boundaries pack MSB first
	b, err := registers.Pack([]registers.Field{
		{Name: "A", Width: 2, Value: 0x1},
		{Name: "B", Width: 6, Value: 0x0},
		{Name: "C", Width: 8, Value: 0x0e},
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, []byte{0x40, 0x0e})

	// a field wider than a byte
	b, err = registers.Pack([]registers.Field{
		{Name: "A", Width: 12, Value: 0x5b5},
		{Name: "B", Width: 4, Value: 0x9},
	})
	test.ExpectedSuccess(t, err)
	test.Equate(t, b, []byte{0x5b, 0x59})
}

func TestPackValueTooWide(t *testing.T) {
	_, err := registers.Pack([]registers.Field{
		{Name: "A", Width: 4, Value: 0x10},
		{Name: "B", Width: 4, Value: 0x0},
	})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, registers.InvalidFieldWidth), true)
}

func TestPackRaggedTotal(t *testing.T) {
	// aggregate width must be a whole number of bytes
	_, err := registers.Pack([]registers.Field{
		{Name: "A", Width: 4, Value: 0x0},
		{Name: "B", Width: 5, Value: 0x0},
	})
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Has(err, registers.InvalidFieldWidth), true)
}
