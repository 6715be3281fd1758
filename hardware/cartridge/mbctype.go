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

package cartridge

import "fmt"

// MBCType identifies the memory bank controller of a cartridge and the
// features (RAM, battery, timer, rumble) of the cartridge. Determined from the
// cartridge type byte in the header and never changed after that.
type MBCType int

// List of valid MBCType values.
const (
	ROMOnly MBCType = iota
	MBC1
	MBC1RAM
	MBC1RAMBattery
	MBC2
	MBC2Battery
	MBC3
	MBC3RAM
	MBC3RAMBattery
	MBC3TimerBattery
	MBC3TimerRAMBattery
	MBC5
	MBC5RAM
	MBC5RAMBattery
	MBC5Rumble
	MBC5RumbleRAM
	MBC5RumbleRAMBattery
)

func (t MBCType) String() string {
	switch t {
	case ROMOnly:
		return "ROM only"
	case MBC1:
		return "MBC1"
	case MBC1RAM:
		return "MBC1+RAM"
	case MBC1RAMBattery:
		return "MBC1+RAM+BATTERY"
	case MBC2:
		return "MBC2"
	case MBC2Battery:
		return "MBC2+BATTERY"
	case MBC3:
		return "MBC3"
	case MBC3RAM:
		return "MBC3+RAM"
	case MBC3RAMBattery:
		return "MBC3+RAM+BATTERY"
	case MBC3TimerBattery:
		return "MBC3+TIMER+BATTERY"
	case MBC3TimerRAMBattery:
		return "MBC3+TIMER+RAM+BATTERY"
	case MBC5:
		return "MBC5"
	case MBC5RAM:
		return "MBC5+RAM"
	case MBC5RAMBattery:
		return "MBC5+RAM+BATTERY"
	case MBC5Rumble:
		return "MBC5+RUMBLE"
	case MBC5RumbleRAM:
		return "MBC5+RUMBLE+RAM"
	case MBC5RumbleRAMBattery:
		return "MBC5+RUMBLE+RAM+BATTERY"
	}
	return fmt.Sprintf("unknown MBC (%d)", int(t))
}

// Family is the controller family of an MBCType. Controllers in the same
// family share the same bank switching rules.
type Family int

// List of valid Family values.
const (
	FamilyNone Family = iota
	FamilyMBC1
	FamilyMBC2
	FamilyMBC3
	FamilyMBC5
)

func (f Family) String() string {
	switch f {
	case FamilyNone:
		return "none"
	case FamilyMBC1:
		return "MBC1"
	case FamilyMBC2:
		return "MBC2"
	case FamilyMBC3:
		return "MBC3"
	case FamilyMBC5:
		return "MBC5"
	}
	return "unknown"
}

// Family returns the controller family for the MBCType.
func (t MBCType) Family() Family {
	switch t {
	case MBC1, MBC1RAM, MBC1RAMBattery:
		return FamilyMBC1
	case MBC2, MBC2Battery:
		return FamilyMBC2
	case MBC3, MBC3RAM, MBC3RAMBattery, MBC3TimerBattery, MBC3TimerRAMBattery:
		return FamilyMBC3
	case MBC5, MBC5RAM, MBC5RAMBattery, MBC5Rumble, MBC5RumbleRAM, MBC5RumbleRAMBattery:
		return FamilyMBC5
	}
	return FamilyNone
}

// cartridge type byte (0x0147) to MBCType
var typeCodes = map[uint8]MBCType{
	0x00: ROMOnly,
	0x01: MBC1,
	0x02: MBC1RAM,
	0x03: MBC1RAMBattery,
	0x05: MBC2,
	0x06: MBC2Battery,
	0x0f: MBC3TimerBattery,
	0x10: MBC3TimerRAMBattery,
	0x11: MBC3,
	0x12: MBC3RAM,
	0x13: MBC3RAMBattery,
	0x19: MBC5,
	0x1a: MBC5RAM,
	0x1b: MBC5RAMBattery,
	0x1c: MBC5Rumble,
	0x1d: MBC5RumbleRAM,
	0x1e: MBC5RumbleRAMBattery,
}

// decodeMBCType returns false if the code is not recognised. The returned
// MBCType in that case is ROMOnly.
func decodeMBCType(code uint8) (MBCType, bool) {
	t, ok := typeCodes[code]
	if !ok {
		return ROMOnly, false
	}
	return t, true
}

// bank sizes in bytes
const (
	ROMBankSize = 0x4000
	RAMBankSize = 0x2000
)

// the smallest ROM. ROM size codes 0x00 to 0x08 double this value
const minROMSize = 0x8000

// ROM size codes outside of the doubling sequence
var oddROMSizes = map[uint8]int{
	0x52: 72 * ROMBankSize,
	0x53: 80 * ROMBankSize,
	0x54: 96 * ROMBankSize,
}

// decodeROMSize returns false if the code is not recognised. The returned size
// in that case is the smallest possible ROM.
func decodeROMSize(code uint8) (int, bool) {
	if code <= 0x08 {
		return minROMSize << code, true
	}
	if sz, ok := oddROMSizes[code]; ok {
		return sz, true
	}
	return minROMSize, false
}

// RAM size codes. codes not in this table mean no RAM
var ramSizes = map[uint8]int{
	0x00: 0,
	0x02: 0x2000,
	0x03: 0x8000,
	0x04: 0x20000,
	0x05: 0x10000,
}

func decodeRAMSize(code uint8) int {
	return ramSizes[code]
}
