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

package registers

// CSD is the card specific data register, version 2.0 layout (the layout
// used by SDHC/SDXC cards). The declared bit widths of the 28 fields sum to
// the 120 payload bits of the register.
type CSD struct {
	CSDStructure uint8 // 2 bits
	Reserved1    uint8 // 6 bits

	// data read access time and clock-dependent read access time. fixed
	// values in the version 2.0 layout
	TAAC uint8 // 8 bits
	NSAC uint8 // 8 bits

	TranSpeed uint8  // 8 bits
	CCC       uint16 // 12 bits

	ReadBlLen        uint8 // 4 bits
	ReadBlPartial    uint8 // 1 bit
	WriteBlkMisalign uint8 // 1 bit
	ReadBlkMisalign  uint8 // 1 bit
	DSRImp           uint8 // 1 bit
	Reserved2        uint8 // 6 bits

	// device capacity. memory size is (CSize+1) * 512KiB
	CSize uint32 // 22 bits

	Reserved3   uint8 // 1 bit
	EraseBlkEn  uint8 // 1 bit
	SectorSize  uint8 // 7 bits
	WPGrpSize   uint8 // 7 bits
	WPGrpEnable uint8 // 1 bit
	Reserved4   uint8 // 2 bits

	R2WFactor      uint8 // 3 bits
	WriteBlLen     uint8 // 4 bits
	WriteBlPartial uint8 // 1 bit
	Reserved5      uint8 // 5 bits

	FileFormatGrp    uint8 // 1 bit
	Copy             uint8 // 1 bit
	PermWriteProtect uint8 // 1 bit
	TmpWriteProtect  uint8 // 1 bit
	FileFormat       uint8 // 2 bits
	Reserved6        uint8 // 2 bits
}

// NewCSD returns the CSD of the reference card: a version 2.0 register
// describing a class 10 card with 512 byte blocks and a capacity of
// (0x127f+1) * 512KiB.
func NewCSD() CSD {
	return CSD{
		CSDStructure: 0x1,
		TAAC:         0x0e,
		NSAC:         0x00,
		TranSpeed:    0x5a,
		CCC:          0x5b5,
		ReadBlLen:    0x9,
		CSize:        0x127f,
		EraseBlkEn:   0x1,
		SectorSize:   0x7f,
		R2WFactor:    0x2,
		WriteBlLen:   0x9,
	}
}

// Encode the CSD register. The returned slice is always exactly 16 bytes:
// the 120 bit field concatenation followed by the CRC7 trailer.
func (csd CSD) Encode() ([]byte, error) {
	return packRegister([]Field{
		{Name: "CSD_STRUCTURE", Width: 2, Value: uint64(csd.CSDStructure)},
		{Name: "RESERVED_1", Width: 6, Value: uint64(csd.Reserved1)},
		{Name: "TAAC", Width: 8, Value: uint64(csd.TAAC)},
		{Name: "NSAC", Width: 8, Value: uint64(csd.NSAC)},
		{Name: "TRAN_SPEED", Width: 8, Value: uint64(csd.TranSpeed)},
		{Name: "CCC", Width: 12, Value: uint64(csd.CCC)},
		{Name: "READ_BL_LEN", Width: 4, Value: uint64(csd.ReadBlLen)},
		{Name: "READ_BL_PARTIAL", Width: 1, Value: uint64(csd.ReadBlPartial)},
		{Name: "WRITE_BLK_MISALIGN", Width: 1, Value: uint64(csd.WriteBlkMisalign)},
		{Name: "READ_BLK_MISALIGN", Width: 1, Value: uint64(csd.ReadBlkMisalign)},
		{Name: "DSR_IMP", Width: 1, Value: uint64(csd.DSRImp)},
		{Name: "RESERVED_2", Width: 6, Value: uint64(csd.Reserved2)},
		{Name: "C_SIZE", Width: 22, Value: uint64(csd.CSize)},
		{Name: "RESERVED_3", Width: 1, Value: uint64(csd.Reserved3)},
		{Name: "ERASE_BLK_EN", Width: 1, Value: uint64(csd.EraseBlkEn)},
		{Name: "SECTOR_SIZE", Width: 7, Value: uint64(csd.SectorSize)},
		{Name: "WP_GRP_SIZE", Width: 7, Value: uint64(csd.WPGrpSize)},
		{Name: "WP_GRP_ENABLE", Width: 1, Value: uint64(csd.WPGrpEnable)},
		{Name: "RESERVED_4", Width: 2, Value: uint64(csd.Reserved4)},
		{Name: "R2W_FACTOR", Width: 3, Value: uint64(csd.R2WFactor)},
		{Name: "WRITE_BL_LEN", Width: 4, Value: uint64(csd.WriteBlLen)},
		{Name: "WRITE_BL_PARTIAL", Width: 1, Value: uint64(csd.WriteBlPartial)},
		{Name: "RESERVED_5", Width: 5, Value: uint64(csd.Reserved5)},
		{Name: "FILE_FORMAT_GRP", Width: 1, Value: uint64(csd.FileFormatGrp)},
		{Name: "COPY", Width: 1, Value: uint64(csd.Copy)},
		{Name: "PERM_WRITE_PROTECT", Width: 1, Value: uint64(csd.PermWriteProtect)},
		{Name: "TMP_WRITE_PROTECT", Width: 1, Value: uint64(csd.TmpWriteProtect)},
		{Name: "FILE_FORMAT", Width: 2, Value: uint64(csd.FileFormat)},
		{Name: "RESERVED_6", Width: 2, Value: uint64(csd.Reserved6)},
	})
}
