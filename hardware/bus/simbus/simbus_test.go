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

package simbus_test

import (
	"testing"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/bus/simbus"
	"github.com/jetsetilly/gbdumper/test"
)

func read(t *testing.T, c *simbus.Cartridge, addr uint16) uint8 {
	t.Helper()
	test.DemandSuccess(t, c.SetAddr(addr))
	v, err := c.ReadByte()
	test.DemandSuccess(t, err)
	return v
}

func write(t *testing.T, c *simbus.Cartridge, addr uint16, data uint8) {
	t.Helper()
	test.DemandSuccess(t, c.SetAddr(addr))
	test.DemandSuccess(t, c.WriteByte(data))
}

func TestNewROM(t *testing.T) {
	rom := simbus.NewROM("TEST", 0x01, 0x01, 0x02)
	test.ExpectEquality(t, len(rom), 0x10000)
	test.ExpectEquality(t, rom[0x0147], 0x01)
	test.ExpectEquality(t, rom[0x4000+0x10], uint8(1^0x10))
	test.ExpectEquality(t, string(rom[0x0134:0x0138]), "TEST")
}

func TestMBC1Banking(t *testing.T) {
	// 1MB MBC1 ROM has 64 banks
	c, err := simbus.NewCartridge(simbus.NewROM("MBC1", 0x03, 0x05, 0x03))
	test.DemandSuccess(t, err)

	// bank 1 is visible by default
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(1))

	// bank 0 in the ROM register selects bank 1
	write(t, c, 0x2000, 0x00)
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(1))

	write(t, c, 0x2000, 0x05)
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(5))

	// upper bits
	write(t, c, 0x4000, 0x01)
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(0x25))

	// bank 0x20 is visible in the home window in mode 1
	write(t, c, 0x6000, 0x01)
	test.ExpectEquality(t, read(t, c, 0x0000), uint8(0x20))
}

func TestMBC2Registers(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("MBC2", 0x06, 0x02, 0x00))
	test.DemandSuccess(t, err)

	// bit 8 clear is the RAM enable register and doesn't change the bank
	write(t, c, 0x2000, 0x03)
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(1))

	write(t, c, 0x2100, 0x03)
	test.ExpectEquality(t, read(t, c, 0x4000), uint8(3))

	write(t, c, 0x0000, 0x0a)
	write(t, c, 0xa000, 0x5c)
	test.ExpectEquality(t, read(t, c, 0xa000), uint8(0xfc))
}

func TestMBC5HighBit(t *testing.T) {
	// 8MB ROM has 512 banks
	c, err := simbus.NewCartridge(simbus.NewROM("MBC5", 0x19, 0x08, 0x00))
	test.DemandSuccess(t, err)

	write(t, c, 0x2000, 0x02)
	write(t, c, 0x3000, 0x01)

	// bank 0x102 has a low byte of 0x02
	test.ExpectEquality(t, read(t, c, 0x4000+0x10), uint8(0x02^0x10))
	test.ExpectEquality(t, c.ROM()[0x102*0x4000+0x10], uint8(0x02^0x10))
}

func TestRAMEnable(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("MBC3", 0x13, 0x01, 0x03))
	test.DemandSuccess(t, err)

	// writes are ignored while RAM is disabled
	write(t, c, 0xa000, 0x12)
	test.ExpectEquality(t, c.RAM()[0], uint8(0))
	test.ExpectEquality(t, read(t, c, 0xa000), uint8(0xff))

	write(t, c, 0x0000, 0x0a)
	write(t, c, 0x4000, 0x02)
	write(t, c, 0xa001, 0x12)
	test.ExpectEquality(t, c.RAM()[0x4001], uint8(0x12))

	writes := c.Writes(0x0000, 0x7fff)
	test.ExpectEquality(t, len(writes), 2)
}

func TestFaultInjection(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("ROM", 0x00, 0x00, 0x00))
	test.DemandSuccess(t, err)

	c.FailAfter(1)
	test.ExpectSuccess(t, c.SetAddr(0x0100))
	_, err = c.ReadByte()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.BusError))

	c.FailAfter(-1)
	_, err = c.ReadByte()
	test.ExpectSuccess(t, err)
}
