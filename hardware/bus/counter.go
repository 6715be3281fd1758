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
	"fmt"
	"sync/atomic"
)

// Counter is a decorator for the Bus interface that counts the number of
// primitive operations. The counts can be read from another goroutine, for
// example by a progress display or the statsview.
type Counter struct {
	bus Bus

	addrs  atomic.Uint64
	reads  atomic.Uint64
	writes atomic.Uint64
	errors atomic.Uint64
}

// NewCounter is the preferred method of initialisation for the Counter type.
func NewCounter(b Bus) *Counter {
	return &Counter{bus: b}
}

func (c *Counter) String() string {
	return fmt.Sprintf("addr: %d, read: %d, write: %d, errors: %d",
		c.addrs.Load(), c.reads.Load(), c.writes.Load(), c.errors.Load())
}

// Stats returns the number of address, read and write operations and the
// number of operations that failed.
func (c *Counter) Stats() (addrs, reads, writes, errors uint64) {
	return c.addrs.Load(), c.reads.Load(), c.writes.Load(), c.errors.Load()
}

// SetAddr implements the Bus interface.
func (c *Counter) SetAddr(address uint16) error {
	c.addrs.Add(1)
	err := c.bus.SetAddr(address)
	if err != nil {
		c.errors.Add(1)
	}
	return err
}

// ReadByte implements the Bus interface.
func (c *Counter) ReadByte() (byte, error) {
	c.reads.Add(1)
	data, err := c.bus.ReadByte()
	if err != nil {
		c.errors.Add(1)
	}
	return data, err
}

// WriteByte implements the Bus interface.
func (c *Counter) WriteByte(data byte) error {
	c.writes.Add(1)
	err := c.bus.WriteByte(data)
	if err != nil {
		c.errors.Add(1)
	}
	return err
}

// Close implements the Closer interface.
func (c *Counter) Close() error {
	return Close(c.bus)
}
