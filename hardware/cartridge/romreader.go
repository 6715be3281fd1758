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

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

// ROMReader streams the entire ROM of a cartridge. It implements the
// io.Reader interface and selects ROM banks as required.
//
// The stream can not be restarted. The bank state of the cartridge is held
// by the hardware and a new ROMReader must be created for a new pass.
//
// The Driver is embedded so that the RAM functions are available to users of
// the ROMReader.
type ROMReader struct {
	*Driver

	size   int
	cursor int

	// the bank that is currently visible, -1 if none is
	bank int
}

// NewROMReader parses the cartridge header and returns a ROMReader for the
// cartridge along with the header.
func NewROMReader(b bus.Bus, timing Timing) (*ROMReader, Header, error) {
	h, err := Parse(b)
	if err != nil {
		return nil, h, err
	}
	return NewROMReaderFromHeader(b, h, timing), h, nil
}

// NewROMReaderFromHeader returns a ROMReader for an already parsed header.
func NewROMReaderFromHeader(b bus.Bus, h Header, timing Timing) *ROMReader {
	logger.Logf(logger.Allow, "rom", "%s", h)
	return &ROMReader{
		Driver: NewDriver(b, h.MBC, h.ROMBanks(), timing),
		size:   h.ROMSize,
		bank:   -1,
	}
}

// Size returns the total number of bytes in the ROM.
func (r *ROMReader) Size() int {
	return r.size
}

// Cursor returns the number of bytes read so far.
func (r *ROMReader) Cursor() int {
	return r.cursor
}

// Status returns a short description of reading progress. Suitable for a
// progress display.
func (r *ROMReader) Status() string {
	bank := r.bank
	if bank < 0 {
		bank = 0
	}
	return fmt.Sprintf("bank %d/%d", bank, r.size/ROMBankSize)
}

// Read implements the io.Reader interface. Once the entire ROM has been read
// Read() returns zero and io.EOF for this and every subsequent call.
func (r *ROMReader) Read(p []byte) (int, error) {
	if r.cursor >= r.size {
		return 0, io.EOF
	}

	n := 0
	for n < len(p) && r.cursor < r.size {
		bank := r.cursor / ROMBankSize
		if bank != r.bank {
			// bank zero is always visible in the home window
			if bank > 0 {
				if err := r.SelectROMBank(bank); err != nil {
					return n, err
				}
			}
			r.bank = bank
		}

		var addr uint16
		if bank == 0 {
			addr = HomeWindow + uint16(r.cursor%ROMBankSize)
		} else {
			addr = r.ROMWindow() + uint16(r.cursor%ROMBankSize)
		}

		if err := r.SetAddr(addr); err != nil {
			return n, err
		}
		v, err := r.ReadByte()
		if err != nil {
			return n, err
		}

		p[n] = v
		n++
		r.cursor++
	}

	return n, nil
}
