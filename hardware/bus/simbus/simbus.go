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

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
)

// Operation is the type of bus access.
type Operation int

// List of valid Operation values.
const (
	OpRead Operation = iota
	OpWrite
)

func (op Operation) String() string {
	if op == OpWrite {
		return "write"
	}
	return "read"
}

// Access is a record of a single read or write.
type Access struct {
	Op   Operation
	Addr uint16
	Data uint8
}

func (a Access) String() string {
	return fmt.Sprintf("%s %04x %02x", a.Op, a.Addr, a.Data)
}

// ErrInjected is the error returned by the bus after the number of operations
// specified by FailAfter().
var ErrInjected = errors.New("injected fault")

// Cartridge is a simulated cartridge. It implements the bus.Bus interface.
//
// Cartridge is safe for concurrent use, although the Bus interface itself
// should not be used concurrently.
type Cartridge struct {
	crit sync.Mutex

	ctrl controller
	rom  []uint8
	ram  []uint8

	addr uint16

	// recording is stopped if the limit is reached
	accesses    []Access
	maxAccesses int

	// number of operations before an error is returned. negative values mean
	// no fault is injected
	failAfter int
}

// the default maximum number of recorded accesses
const defaultMaxAccesses = 1 << 20

// NewCartridge creates a simulated cartridge from ROM data. The header of the
// ROM decides the type of controller and the amount of RAM.
func NewCartridge(rom []uint8) (*Cartridge, error) {
	if len(rom) < 0x0150 {
		return nil, curated.Errorf("simbus: %v", "ROM data too short for a header")
	}

	c := &Cartridge{
		rom:         rom,
		maxAccesses: defaultMaxAccesses,
		failAfter:   -1,
	}

	typeCode := rom[0x0147]
	c.ram = make([]uint8, ramSize(rom[0x0149]))

	switch typeCode {
	case 0x00:
		c.ram = nil
		c.ctrl = &romOnly{rom: rom}
	case 0x01, 0x02, 0x03:
		c.ctrl = &mbc1{rom: rom, ram: c.ram}
	case 0x05, 0x06:
		c.ctrl = &mbc2{rom: rom}
	case 0x0f, 0x10, 0x11, 0x12, 0x13:
		c.ctrl = &mbc3{rom: rom, ram: c.ram, romBank: 1}
	case 0x19, 0x1a, 0x1b, 0x1c, 0x1d, 0x1e:
		c.ctrl = &mbc5{rom: rom, ram: c.ram, romBank: 1}
	default:
		c.ram = nil
		c.ctrl = &romOnly{rom: rom}
	}

	return c, nil
}

func (c *Cartridge) String() string {
	return fmt.Sprintf("simulated cartridge (%T) ROM: %d RAM: %d", c.ctrl, len(c.rom), len(c.ram))
}

// FailAfter causes the bus to return ErrInjected (wrapped as a bus error)
// once n more operations have succeeded. A negative value removes the fault.
func (c *Cartridge) FailAfter(n int) {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.failAfter = n
}

func (c *Cartridge) fault() error {
	if c.failAfter < 0 {
		return nil
	}
	if c.failAfter == 0 {
		return curated.Errorf(bus.BusError, ErrInjected)
	}
	c.failAfter--
	return nil
}

func (c *Cartridge) record(op Operation, data uint8) {
	if len(c.accesses) < c.maxAccesses {
		c.accesses = append(c.accesses, Access{Op: op, Addr: c.addr, Data: data})
	}
}

// SetAddr implements the bus.Bus interface.
func (c *Cartridge) SetAddr(address uint16) error {
	c.crit.Lock()
	defer c.crit.Unlock()
	if err := c.fault(); err != nil {
		return err
	}
	c.addr = address
	return nil
}

// ReadByte implements the bus.Bus interface.
func (c *Cartridge) ReadByte() (byte, error) {
	c.crit.Lock()
	defer c.crit.Unlock()
	if err := c.fault(); err != nil {
		return 0, err
	}
	v := c.ctrl.read(c.addr)
	c.record(OpRead, v)
	return v, nil
}

// WriteByte implements the bus.Bus interface.
func (c *Cartridge) WriteByte(data byte) error {
	c.crit.Lock()
	defer c.crit.Unlock()
	if err := c.fault(); err != nil {
		return err
	}
	c.ctrl.write(c.addr, data)
	c.record(OpWrite, data)
	return nil
}

// Accesses returns a copy of the accesses recorded since the cartridge was
// created or since the last call to ClearAccesses().
func (c *Cartridge) Accesses() []Access {
	c.crit.Lock()
	defer c.crit.Unlock()
	a := make([]Access, len(c.accesses))
	copy(a, c.accesses)
	return a
}

// ClearAccesses forgets all recorded accesses.
func (c *Cartridge) ClearAccesses() {
	c.crit.Lock()
	defer c.crit.Unlock()
	c.accesses = c.accesses[:0]
}

// Writes returns the recorded writes to addresses in the range from origin
// to memtop inclusive.
func (c *Cartridge) Writes(origin, memtop uint16) []Access {
	var w []Access
	for _, a := range c.Accesses() {
		if a.Op == OpWrite && a.Addr >= origin && a.Addr <= memtop {
			w = append(w, a)
		}
	}
	return w
}

// ROM returns the ROM data of the cartridge.
func (c *Cartridge) ROM() []uint8 {
	return c.rom
}

// RAM returns a copy of the cartridge RAM. For the MBC2 controller the 512
// half-bytes of built-in RAM are returned.
func (c *Cartridge) RAM() []uint8 {
	c.crit.Lock()
	defer c.crit.Unlock()
	if m, ok := c.ctrl.(*mbc2); ok {
		r := make([]uint8, len(m.ram))
		copy(r, m.ram[:])
		return r
	}
	r := make([]uint8, len(c.ram))
	copy(r, c.ram)
	return r
}

// LoadRAM copies data into the cartridge RAM, bypassing the controller.
func (c *Cartridge) LoadRAM(data []uint8) {
	c.crit.Lock()
	defer c.crit.Unlock()
	copy(c.ram, data)
}
