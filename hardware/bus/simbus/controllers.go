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

// controller models the register behaviour of a memory bank controller
type controller interface {
	read(addr uint16) uint8
	write(addr uint16, data uint8)
}

// wrap the offset into the data
func index(data []uint8, offset int) uint8 {
	if len(data) == 0 {
		return 0xff
	}
	return data[offset%len(data)]
}

type romOnly struct {
	rom []uint8
}

func (c *romOnly) read(addr uint16) uint8 {
	if addr < 0x8000 {
		return index(c.rom, int(addr))
	}
	return 0xff
}

func (c *romOnly) write(addr uint16, data uint8) {
}

type mbc1 struct {
	rom []uint8
	ram []uint8

	ramEnabled bool
	low        uint8
	high       uint8
	mode       uint8
}

func (c *mbc1) read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		bank := 0
		if c.mode == 1 {
			bank = int(c.high) << 5
		}
		return index(c.rom, bank*0x4000+int(addr))
	case addr < 0x8000:
		low := c.low
		if low == 0 {
			low = 1
		}
		bank := int(c.high)<<5 | int(low)
		return index(c.rom, bank*0x4000+int(addr-0x4000))
	case addr >= 0xa000 && addr <= 0xbfff:
		if !c.ramEnabled || len(c.ram) == 0 {
			return 0xff
		}
		return c.ram[c.ramOffset(addr)]
	}
	return 0xff
}

func (c *mbc1) ramOffset(addr uint16) int {
	bank := 0
	if c.mode == 1 {
		bank = int(c.high)
	}
	return (bank*0x2000 + int(addr-0xa000)) % len(c.ram)
}

func (c *mbc1) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		c.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		c.low = data & 0x1f
	case addr < 0x6000:
		c.high = data & 0x03
	case addr < 0x8000:
		c.mode = data & 0x01
	case addr >= 0xa000 && addr <= 0xbfff:
		if c.ramEnabled && len(c.ram) > 0 {
			c.ram[c.ramOffset(addr)] = data
		}
	}
}

// the MBC2 has 512 half-bytes of RAM built in. address bit 8 selects
// between the RAM enable and the ROM bank register
type mbc2 struct {
	rom []uint8
	ram [512]uint8

	ramEnabled bool
	bank       uint8

	// writes to RAM are ignored until the cartridge has been read from
	primed bool
}

func (c *mbc2) read(addr uint16) uint8 {
	c.primed = true
	switch {
	case addr < 0x4000:
		return index(c.rom, int(addr))
	case addr < 0x8000:
		bank := c.bank
		if bank == 0 {
			bank = 1
		}
		return index(c.rom, int(bank)*0x4000+int(addr-0x4000))
	case addr >= 0xa000 && addr <= 0xbfff:
		if !c.ramEnabled {
			return 0xff
		}
		return 0xf0 | c.ram[addr&0x01ff]
	}
	return 0xff
}

func (c *mbc2) write(addr uint16, data uint8) {
	switch {
	case addr < 0x4000:
		if addr&0x0100 == 0 {
			c.ramEnabled = data&0x0f == 0x0a
		} else {
			c.bank = data & 0x0f
		}
	case addr >= 0xa000 && addr <= 0xbfff:
		if c.ramEnabled && c.primed {
			c.ram[addr&0x01ff] = data & 0x0f
		}
	}
}

type mbc3 struct {
	rom []uint8
	ram []uint8

	ramEnabled bool
	romBank    uint8
	ramBank    uint8
}

func (c *mbc3) read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return index(c.rom, int(addr))
	case addr < 0x8000:
		bank := c.romBank
		if bank == 0 {
			bank = 1
		}
		return index(c.rom, int(bank)*0x4000+int(addr-0x4000))
	case addr >= 0xa000 && addr <= 0xbfff:
		// RTC registers are not modelled
		if !c.ramEnabled || len(c.ram) == 0 || c.ramBank > 0x07 {
			return 0xff
		}
		return c.ram[(int(c.ramBank)*0x2000+int(addr-0xa000))%len(c.ram)]
	}
	return 0xff
}

func (c *mbc3) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		c.ramEnabled = data&0x0f == 0x0a
	case addr < 0x4000:
		c.romBank = data & 0x7f
	case addr < 0x6000:
		c.ramBank = data
	case addr < 0x8000:
		// clock latch is not modelled
	case addr >= 0xa000 && addr <= 0xbfff:
		if c.ramEnabled && len(c.ram) > 0 && c.ramBank <= 0x07 {
			c.ram[(int(c.ramBank)*0x2000+int(addr-0xa000))%len(c.ram)] = data
		}
	}
}

type mbc5 struct {
	rom []uint8
	ram []uint8

	ramEnabled bool
	romBank    uint16
	ramBank    uint8
}

func (c *mbc5) read(addr uint16) uint8 {
	switch {
	case addr < 0x4000:
		return index(c.rom, int(addr))
	case addr < 0x8000:
		return index(c.rom, int(c.romBank)*0x4000+int(addr-0x4000))
	case addr >= 0xa000 && addr <= 0xbfff:
		if !c.ramEnabled || len(c.ram) == 0 {
			return 0xff
		}
		return c.ram[(int(c.ramBank)*0x2000+int(addr-0xa000))%len(c.ram)]
	}
	return 0xff
}

func (c *mbc5) write(addr uint16, data uint8) {
	switch {
	case addr < 0x2000:
		c.ramEnabled = data&0x0f == 0x0a
	case addr < 0x3000:
		c.romBank = c.romBank&0x100 | uint16(data)
	case addr < 0x4000:
		c.romBank = c.romBank&0x0ff | uint16(data&0x01)<<8
	case addr < 0x6000:
		c.ramBank = data & 0x0f
	case addr >= 0xa000 && addr <= 0xbfff:
		if c.ramEnabled && len(c.ram) > 0 {
			c.ram[(int(c.ramBank)*0x2000+int(addr-0xa000))%len(c.ram)] = data
		}
	}
}
