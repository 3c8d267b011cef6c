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

package card_test

import (
	"testing"

	"github.com/dgiuliani/sdsim/card"
	"github.com/dgiuliani/sdsim/disk"
	"github.com/dgiuliani/sdsim/registers"
	"github.com/dgiuliani/sdsim/test"
)

func TestNewCard(t *testing.T) {
	crd, err := card.NewCard()
	test.ExpectedSuccess(t, err)

	cid := crd.CID()
	test.Equate(t, len(cid), registers.RegisterLen)
	test.Equate(t, cid[0], 0x41)
	test.Equate(t, cid[15]&0x01, 0x01)

	csd := crd.CSD()
	test.Equate(t, len(csd), registers.RegisterLen)
	test.Equate(t, csd[15]&0x01, 0x01)

	test.Equate(t, crd.Disk.NumBlocks(), 0)
}

func TestCardsAreIndependent(t *testing.T) {
	a, err := card.NewCard()
	test.ExpectedSuccess(t, err)
	b, err := card.NewCard()
	test.ExpectedSuccess(t, err)

	content := make([]byte, disk.BlockSize)
	for i := range content {
		content[i] = 0x5a
	}

	test.ExpectedSuccess(t, a.Disk.Write(0, content))
	test.Equate(t, a.Disk.NumBlocks(), 1)
	test.Equate(t, b.Disk.NumBlocks(), 0)
}

func TestRegisterImagesAreCopies(t *testing.T) {
	crd, err := card.NewCard()
	test.ExpectedSuccess(t, err)

	img := crd.CID()
	img[0] = 0x00

	test.Equate(t, crd.CID()[0], 0x41)
}

func TestInvalidIdentity(t *testing.T) {
	cid := registers.NewCID()
	cid.PNM = "TOOLONGNAME"

	// encoding problems surface at card creation
	_, err := card.NewCardFrom(cid, registers.NewCSD())
	test.ExpectedFailure(t, err)
}
