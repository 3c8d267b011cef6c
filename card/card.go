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

package card

import (
	"github.com/dgiuliani/sdsim/disk"
	"github.com/dgiuliani/sdsim/logger"
	"github.com/dgiuliani/sdsim/registers"
)

// Card level constants for the reference card. The version and type words
// use the encoding expected by the stm32f4xx HAL driver that this model was
// built to exercise.
const (
	// version 2.0 card
	Version = 0x00000001

	// CARD_SDHC_SDXC
	Type = 0x00000001

	// relative card address, as published in response to SEND_RELATIVE_ADDR
	RCA = 0x1234
)

// Card is one simulated SD card: the encoded identity registers plus the
// block storage. Every call to NewCard() returns an independent card with
// its own disk, so several cards can be simulated in the same process.
type Card struct {
	cid registers.CID
	csd registers.CSD

	// register images encoded once at card creation. the identity of a card
	// does not change during its lifetime
	cidImage []byte
	csdImage []byte

	// the block storage of the card. the harness drives Read() and Write()
	// on the disk directly when servicing block commands
	Disk *disk.Disk
}

// NewCard creates a card with the identity of the reference card and an
// empty disk. Use NewCardFrom() to simulate a card with a different
// identity.
func NewCard() (*Card, error) {
	return NewCardFrom(registers.NewCID(), registers.NewCSD())
}

// NewCardFrom creates a card with the supplied register values and an empty
// disk. The registers are encoded immediately so an invalid field value is
// reported here rather than when the harness first asks for a register
// image.
func NewCardFrom(cid registers.CID, csd registers.CSD) (*Card, error) {
	crd := &Card{
		cid:  cid,
		csd:  csd,
		Disk: disk.NewDisk(),
	}

	var err error

	crd.cidImage, err = cid.Encode()
	if err != nil {
		return nil, err
	}

	crd.csdImage, err = csd.Encode()
	if err != nil {
		return nil, err
	}

	logger.Logf("card", "new card %s (serial %08x)", cid.PNM, cid.PSN)

	return crd, nil
}

// CID returns the 16 byte image of the card identification register, as the
// card would answer ALL_SEND_CID / SEND_CID. The returned slice is a copy.
func (crd *Card) CID() []byte {
	img := make([]byte, len(crd.cidImage))
	copy(img, crd.cidImage)
	return img
}

// CSD returns the 16 byte image of the card specific data register, as the
// card would answer SEND_CSD. The returned slice is a copy.
func (crd *Card) CSD() []byte {
	img := make([]byte, len(crd.csdImage))
	copy(img, crd.csdImage)
	return img
}
