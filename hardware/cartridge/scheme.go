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

// BankSwitchRule describes how a controller family is driven over the bus.
// Rules are looked up with RuleFor() and are never modified.
//
// The zero value for a register address field is a valid address (0x0000) so
// every register has an accompanying Has field.
type BankSwitchRule struct {
	Family Family

	// RAM enable register. the same register disables RAM
	HasRAMEnable    bool
	RAMEnable       uint16
	RAMEnableValue  uint8
	RAMDisableValue uint8

	// the ROM bank register for the low bits of the bank number. the number of
	// bits is given by the mask
	HasROMBanking bool
	ROMBankLow    uint16
	ROMBankMask   uint8

	// an optional second ROM bank register for the high bits of the bank
	// number. the bank number is shifted by ROMBankHighShift before masking
	HasROMBankHigh   bool
	ROMBankHigh      uint16
	ROMBankHighShift int
	ROMBankHighMask  uint8

	// RAM bank register
	HasRAMBanking bool
	RAMBank       uint16
	RAMBankMask   uint8

	// banking mode register. when in ROM mode the RAM bank register supplies
	// the upper bits of the ROM bank number. when in RAM mode it selects the
	// RAM bank
	HasModeRegister bool
	ModeRegister    uint16
	ModeROM         uint8
	ModeRAM         uint8

	// the RAM bank register doubles as the upper bits of the ROM bank number
	// for large ROMs. upper bits are used when the ROM has more than
	// UpperBitsAbove banks
	ROMUpperViaRAMBank bool
	UpperBitsAbove     int
	UpperBitsShift     int
	UpperBitsMask      uint8

	// some controllers need a throwaway read of an address before RAM writes
	// are accepted
	HasPreWriteRead bool
	PreWriteRead    uint16
}

// the data driven description of all supported controller families. adding
// support for a new family should be a matter of adding an entry here
var rules = map[Family]BankSwitchRule{
	FamilyNone: {
		Family: FamilyNone,
	},

	FamilyMBC1: {
		Family:             FamilyMBC1,
		HasRAMEnable:       true,
		RAMEnable:          0x0000,
		RAMEnableValue:     0x0a,
		RAMDisableValue:    0x00,
		HasROMBanking:      true,
		ROMBankLow:         0x2000,
		ROMBankMask:        0x1f,
		HasRAMBanking:      true,
		RAMBank:            0x4000,
		RAMBankMask:        0x03,
		HasModeRegister:    true,
		ModeRegister:       0x6000,
		ModeROM:            0x00,
		ModeRAM:            0x01,
		ROMUpperViaRAMBank: true,
		UpperBitsAbove:     32,
		UpperBitsShift:     5,
		UpperBitsMask:      0x03,
	},

	// the MBC2 uses bit 8 of the address to distinguish between the RAM
	// enable register (bit 8 clear) and the ROM bank register (bit 8 set)
	FamilyMBC2: {
		Family:          FamilyMBC2,
		HasRAMEnable:    true,
		RAMEnable:       0x0000,
		RAMEnableValue:  0x0a,
		RAMDisableValue: 0x00,
		HasROMBanking:   true,
		ROMBankLow:      0x2100,
		ROMBankMask:     0x0f,
		HasPreWriteRead: true,
		PreWriteRead:    0x0134,
	},

	FamilyMBC3: {
		Family:          FamilyMBC3,
		HasRAMEnable:    true,
		RAMEnable:       0x0000,
		RAMEnableValue:  0x0a,
		RAMDisableValue: 0x00,
		HasROMBanking:   true,
		ROMBankLow:      0x2000,
		ROMBankMask:     0x7f,
		HasRAMBanking:   true,
		RAMBank:         0x4000,
		RAMBankMask:     0x07,
	},

	FamilyMBC5: {
		Family:           FamilyMBC5,
		HasRAMEnable:     true,
		RAMEnable:        0x0000,
		RAMEnableValue:   0x0a,
		RAMDisableValue:  0x00,
		HasROMBanking:    true,
		ROMBankLow:       0x2000,
		ROMBankMask:      0xff,
		HasROMBankHigh:   true,
		ROMBankHigh:      0x3000,
		ROMBankHighShift: 8,
		ROMBankHighMask:  0x01,
		HasRAMBanking:    true,
		RAMBank:          0x4000,
		RAMBankMask:      0x0f,
	},
}

// RuleFor returns the BankSwitchRule for the MBCType.
func RuleFor(t MBCType) BankSwitchRule {
	return rules[t.Family()]
}
