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
	"errors"
	"io"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/logger"
)

// value written to RAM when the input source has been exhausted
const padValue = 0xff

// RAMAccessor dumps and restores the entire RAM of a cartridge. All bank
// selection is performed through the Driver.
type RAMAccessor struct {
	drv  *Driver
	size int

	// each bank is also written here once it has been restored to the
	// cartridge. padding included
	progress io.Writer
}

// SetProgress sets the io.Writer that receives each bank after it has been
// written by Restore(). A nil value turns progress reporting off.
func (ra *RAMAccessor) SetProgress(w io.Writer) {
	ra.progress = w
}

// NewRAMAccessor is the preferred method of initialisation for the
// RAMAccessor type. The size is the number of bytes of cartridge RAM, usually
// taken from the Header.
func NewRAMAccessor(drv *Driver, size int) *RAMAccessor {
	return &RAMAccessor{
		drv:  drv,
		size: size,
	}
}

// Size returns the number of bytes of cartridge RAM.
func (ra *RAMAccessor) Size() int {
	return ra.size
}

// Banks returns the number of RAM banks.
func (ra *RAMAccessor) Banks() int {
	return ra.size / RAMBankSize
}

// whether banks need to be selected. a cartridge with only one bank, or a
// controller without RAM banking, never has the RAM bank register written
func (ra *RAMAccessor) banking() bool {
	return ra.Banks() > 1 && ra.drv.Rule().HasRAMBanking
}

// disable RAM at the end of an operation. failure is logged but is not
// fatal
func (ra *RAMAccessor) disable() {
	if err := ra.drv.DisableRAM(); err != nil {
		logger.Logf(logger.Allow, "ram", "could not disable RAM: %v", err)
	}
}

// Dump the entire RAM to the io.Writer. Banks are dumped in order. Returns
// the number of bytes written.
func (ra *RAMAccessor) Dump(w io.Writer) (int, error) {
	if ra.size == 0 {
		logger.Log(logger.Allow, "ram", "cartridge has no RAM")
		return 0, nil
	}

	if err := ra.drv.EnableRAM(); err != nil {
		return 0, err
	}
	defer ra.disable()

	n := 0
	data := make([]uint8, RAMBankSize)

	for bank := 0; bank < ra.Banks(); bank++ {
		if ra.banking() {
			if err := ra.drv.SelectRAMBank(bank); err != nil {
				return n, err
			}
		}

		for i := range data {
			if err := ra.drv.SetAddr(uint16(RAMOrigin + i)); err != nil {
				return n, err
			}
			v, err := ra.drv.ReadByte()
			if err != nil {
				return n, err
			}
			data[i] = v
		}

		m, err := w.Write(data)
		n += m
		if err != nil {
			return n, curated.Errorf(FileIoError, err)
		}

		logger.Logf(logger.Allow, "ram", "dumped bank %d", bank)
	}

	return n, nil
}

// Restore the entire RAM from the io.Reader. If the reader is exhausted
// before the RAM is filled then the remaining RAM is filled with 0xff.
// Returns the number of bytes written to RAM, which is always the size of
// the RAM unless there is an error.
//
// A cartridge without RAM is not an error and nothing is written.
func (ra *RAMAccessor) Restore(r io.Reader) (int, error) {
	if ra.size == 0 {
		logger.Log(logger.Allow, "ram", "cartridge has no RAM. nothing to restore")
		return 0, nil
	}

	rule := ra.drv.Rule()
	timing := ra.drv.timing

	// some controllers will not accept writes until a read has happened
	if rule.HasPreWriteRead {
		if err := ra.drv.SetAddr(rule.PreWriteRead); err != nil {
			return 0, err
		}
		if _, err := ra.drv.ReadByte(); err != nil {
			return 0, err
		}
	}

	if err := ra.drv.EnableRAM(); err != nil {
		return 0, err
	}
	defer ra.disable()

	if rule.HasModeRegister {
		if err := ra.drv.SetBankingMode(true); err != nil {
			return 0, err
		}
	}

	n := 0
	padded := 0
	exhausted := false
	data := make([]uint8, RAMBankSize)

	for bank := 0; bank < ra.Banks(); bank++ {
		if ra.banking() {
			if err := ra.drv.SelectRAMBank(bank); err != nil {
				return n, err
			}
		}

		// read as much of the bank from the input as is available
		m := 0
		if !exhausted {
			var err error
			m, err = io.ReadFull(r, data)
			if err != nil {
				if !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
					return n, curated.Errorf(FileIoError, err)
				}
				exhausted = true
			}
		}
		for i := m; i < len(data); i++ {
			data[i] = padValue
		}
		padded += len(data) - m

		for i, v := range data {
			if err := ra.drv.SetAddr(uint16(RAMOrigin + i)); err != nil {
				return n, err
			}
			wait(timing.AddressSettle)
			if err := ra.drv.WriteByte(v); err != nil {
				return n, err
			}
			wait(timing.WritePulse)
			n++
		}

		if ra.progress != nil {
			ra.progress.Write(data)
		}

		logger.Logf(logger.Allow, "ram", "restored bank %d", bank)
	}

	if padded > 0 {
		logger.Logf(logger.Allow, "ram", "input shorter than RAM. %d bytes padded with %#02x", padded, padValue)
	}

	return n, nil
}
