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

// Sentinal error patterns for the cartridge package. Errors from the bus are
// wrapped with bus.BusError.
const (
	// a bank operation requested for a controller that doesn't support it
	UnsupportedOperation = "unsupported operation: %s for %s"

	// problems decoding the header. permissive parsing never returns this
	// error and only records the problem in the Header.Warnings field. strict
	// parsing returns it
	HeaderDecodeWarning = "header: %s"

	// errors from the io.Reader or io.Writer that RAM is restored from or
	// dumped to
	FileIoError = "file error: %v"
)
