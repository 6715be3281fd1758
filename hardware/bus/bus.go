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

// Bus defines the primitive operations of a cartridge adapter. Operations are
// synchronous and must not be called concurrently.
//
// ReadByte() and WriteByte() act on the address most recently specified with
// SetAddr().
type Bus interface {
	SetAddr(address uint16) error
	ReadByte() (byte, error)
	WriteByte(data byte) error
}

// Sentinal error pattern for failures of the physical link or of the adapter.
// Errors returned by Bus implementations should be wrapped with this pattern.
const BusError = "bus error: %v"

// Closer is implemented by Bus implementations that hold a resource that must
// be released.
type Closer interface {
	Close() error
}

// Close the bus if the implementation supports it. Safe to call with any Bus.
func Close(b Bus) error {
	if c, ok := b.(Closer); ok {
		return c.Close()
	}
	return nil
}
