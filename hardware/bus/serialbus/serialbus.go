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

package serialbus

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

// Sentinal error pattern for problems with the adapter protocol.
const AdapterError = "adapter: %v"

// Adapter is a cartridge adapter connected over a serial line. It implements
// the bus.Bus interface.
type Adapter struct {
	port io.ReadWriter

	// resources to release when the Adapter is closed. the lock is released
	// after the port is closed
	closers []io.Closer

	// the device ID reported by the adapter
	id int

	// the address most recently sent to the adapter. a new address is not
	// sent if it is the same as the previous one
	addr      uint16
	addrValid bool

	// reusable buffers
	cmd  []uint8
	resp []uint8
}

// NewAdapter creates a new Adapter using an already opened port. The adapter
// is asked for its ID and an error is returned if the response doesn't look
// like an adapter of the correct type.
//
// If the port implements the io.Closer interface it will be closed by the
// Adapter.Close() function.
func NewAdapter(port io.ReadWriter) (*Adapter, error) {
	adp := &Adapter{
		port: port,
		cmd:  make([]uint8, 0, 8),
		resp: make([]uint8, 2),
	}

	if c, ok := port.(io.Closer); ok {
		adp.closers = append(adp.closers, c)
	}

	id, err := adp.deviceID()
	if err != nil {
		return nil, err
	}

	// both halves of the ID should be the same
	if id == 0 || id&0xff != id>>8 {
		return nil, curated.Errorf(AdapterError, fmt.Sprintf("unexpected device ID (%#04x)", id))
	}
	adp.id = id

	logger.Logf(logger.Allow, "serialbus", "adapter ID %#04x", id)

	return adp, nil
}

func (adp *Adapter) String() string {
	return fmt.Sprintf("serial adapter (ID %#04x)", adp.id)
}

// ID returns the device ID reported by the adapter.
func (adp *Adapter) ID() int {
	return adp.id
}

func (adp *Adapter) send(p []uint8) error {
	n, err := adp.port.Write(p)
	if err != nil {
		adp.addrValid = false
		return curated.Errorf(bus.BusError, curated.Errorf(AdapterError, err))
	}
	if n < len(p) {
		adp.addrValid = false
		return curated.Errorf(bus.BusError, curated.Errorf(AdapterError, fmt.Sprintf("short write: %d of %d bytes", n, len(p))))
	}
	return nil
}

func (adp *Adapter) receive(n int) ([]uint8, error) {
	m, err := io.ReadFull(adp.port, adp.resp[:n])
	if err != nil {
		adp.addrValid = false
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return nil, curated.Errorf(bus.BusError, curated.Errorf(AdapterError, fmt.Sprintf("short read: %d of %d bytes", m, n)))
		}
		return nil, curated.Errorf(bus.BusError, curated.Errorf(AdapterError, err))
	}
	return adp.resp[:n], nil
}

func (adp *Adapter) deviceID() (int, error) {
	if err := adp.send([]uint8{opDeviceID}); err != nil {
		return 0, err
	}
	r, err := adp.receive(2)
	if err != nil {
		return 0, err
	}
	return int(r[0])<<8 | int(r[1]), nil
}

// SetDelay sets the delay the adapter inserts between bus cycles. The unit of
// the delay is specific to the adapter firmware.
func (adp *Adapter) SetDelay(delay uint8) error {
	return adp.send([]uint8{cmdDelay, delay})
}

// SetAddr implements the bus.Bus interface.
func (adp *Adapter) SetAddr(address uint16) error {
	if adp.addrValid && adp.addr == address {
		return nil
	}
	if err := adp.send(addrCommand(address)); err != nil {
		return err
	}
	adp.addr = address
	adp.addrValid = true
	return nil
}

// ReadByte implements the bus.Bus interface.
func (adp *Adapter) ReadByte() (byte, error) {
	if err := adp.send([]uint8{opReadByte}); err != nil {
		return 0, err
	}
	r, err := adp.receive(1)
	if err != nil {
		return 0, err
	}
	return r[0], nil
}

// WriteByte implements the bus.Bus interface.
func (adp *Adapter) WriteByte(data byte) error {
	adp.cmd = append(adp.cmd[:0], opWriteByte, data)
	return adp.send(adp.cmd)
}

// Close the serial port and release the device lock.
func (adp *Adapter) Close() error {
	var first error
	for _, c := range adp.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	adp.closers = nil
	return first
}

// Driver names for the Open() function.
const (
	DriverTerm     = "term"
	DriverGoSerial = "goserial"
)

// Options for the Open() function.
type Options struct {
	Port    string
	Baud    int
	Driver  string
	Timeout time.Duration
}

// Open the serial port named in the Options and return a new Adapter.
func Open(opts Options) (*Adapter, error) {
	lock, err := lockDevice(opts.Port)
	if err != nil {
		return nil, curated.Errorf(AdapterError, err)
	}

	var port io.ReadWriteCloser

	switch opts.Driver {
	case DriverTerm:
		port, err = openTerm(opts)
	case DriverGoSerial:
		port, err = openGoSerial(opts)
	default:
		err = fmt.Errorf("unknown serial driver (%s)", opts.Driver)
	}
	if err != nil {
		lock.Close()
		return nil, curated.Errorf(AdapterError, err)
	}

	logger.Logf(logger.Allow, "serialbus", "opened %s at %d baud (%s)", opts.Port, opts.Baud, opts.Driver)

	adp, err := NewAdapter(port)
	if err != nil {
		port.Close()
		lock.Close()
		return nil, err
	}
	adp.closers = append(adp.closers, lock)

	return adp, nil
}
