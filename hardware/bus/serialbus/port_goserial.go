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
	"io"

	"github.com/jacobsa/go-serial/serial"
)

func openGoSerial(opts Options) (io.ReadWriteCloser, error) {
	// the inter-character timeout is in milliseconds and must be a multiple
	// of 100
	timeout := uint(opts.Timeout.Milliseconds())
	timeout = (timeout + 99) / 100 * 100

	return serial.Open(serial.OpenOptions{
		PortName:              opts.Port,
		BaudRate:              uint(opts.Baud),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       0,
		InterCharacterTimeout: timeout,
	})
}
