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

package bus

import (
	"github.com/jetsetilly/gbdumper/logger"
)

// Trace is a decorator for the Bus interface. Every primitive operation is
// logged to the central logger with the "bus" tag.
type Trace struct {
	bus  Bus
	perm logger.Permission
	addr uint16
}

// NewTrace is the preferred method of initialisation for the Trace type. The
// Permission argument controls whether logging is active.
func NewTrace(b Bus, perm logger.Permission) *Trace {
	return &Trace{
		bus:  b,
		perm: perm,
	}
}

// SetAddr implements the Bus interface.
func (t *Trace) SetAddr(address uint16) error {
	err := t.bus.SetAddr(address)
	if err != nil {
		logger.Logf(t.perm, "bus", "addr %04x: %v", address, err)
		return err
	}
	t.addr = address
	return nil
}

// ReadByte implements the Bus interface.
func (t *Trace) ReadByte() (byte, error) {
	data, err := t.bus.ReadByte()
	if err != nil {
		logger.Logf(t.perm, "bus", "read %04x: %v", t.addr, err)
		return data, err
	}
	logger.Logf(t.perm, "bus", "read %04x -> %02x", t.addr, data)
	return data, nil
}

// WriteByte implements the Bus interface.
func (t *Trace) WriteByte(data byte) error {
	err := t.bus.WriteByte(data)
	if err != nil {
		logger.Logf(t.perm, "bus", "write %04x <- %02x: %v", t.addr, data, err)
		return err
	}
	logger.Logf(t.perm, "bus", "write %04x <- %02x", t.addr, data)
	return nil
}

// Close implements the Closer interface.
func (t *Trace) Close() error {
	return Close(t.bus)
}
