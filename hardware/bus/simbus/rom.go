// This file is part of gbdumper.
//
// gbdumper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gbdumper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gbdumper.  If not, see <https://www.gnu.org/licenses/>.

package simbus

// NewROM creates ROM data with a valid header. Every byte outside of the
// header region is the bank number of the byte XOR'd with the low byte of the
// offset in the bank, which makes misplaced banks easy to detect.
func NewROM(title string, typeCode, romSizeCode, ramSizeCode uint8) []uint8 {
	size := romSize(romSizeCode)
	rom := make([]uint8, size)

	for i := range rom {
		rom[i] = uint8(i/0x4000) ^ uint8(i)
	}

	// clear the header region before filling it
	for i := 0x0100; i <= 0x014f; i++ {
		rom[i] = 0x00
	}

	t := []byte(title)
	if len(t) > 16 {
		t = t[:16]
	}
	copy(rom[0x0134:0x0144], t)

	rom[0x0147] = typeCode
	rom[0x0148] = romSizeCode
	rom[0x0149] = ramSizeCode
	rom[0x014b] = 0x33
	rom[0x014c] = 0x01

	FixChecksums(rom)

	return rom
}

// FixChecksums recalculates the header and global checksums of the ROM data.
// Useful after changing the header of a ROM created with NewROM().
func FixChecksums(rom []uint8) {
	var hsum uint8
	for i := 0x0134; i <= 0x014c; i++ {
		hsum = hsum - rom[i] - 1
	}
	rom[0x014d] = hsum

	var gsum uint16
	for i := range rom {
		if i == 0x014e || i == 0x014f {
			continue
		}
		gsum += uint16(rom[i])
	}
	rom[0x014e] = uint8(gsum >> 8)
	rom[0x014f] = uint8(gsum)
}

func romSize(code uint8) int {
	switch code {
	case 0x52:
		return 72 * 0x4000
	case 0x53:
		return 80 * 0x4000
	case 0x54:
		return 96 * 0x4000
	}
	if code <= 0x08 {
		return 0x8000 << code
	}
	return 0x8000
}

func ramSize(code uint8) int {
	switch code {
	case 0x02:
		return 0x2000
	case 0x03:
		return 0x8000
	case 0x04:
		return 0x20000
	case 0x05:
		return 0x10000
	}
	return 0
}
