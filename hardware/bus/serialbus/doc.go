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

// Package serialbus implements the bus.Bus interface for cartridge adapters
// connected over a serial line. Adapters of this type understand a
// command-byte protocol. Each command is a single byte, with the command in
// the low bits and parameter flags in the high bits, optionally followed by a
// data byte.
//
// The serial port can be opened with one of two drivers. The "term" driver
// uses github.com/pkg/term and is available on posix systems. The "goserial"
// driver uses github.com/jacobsa/go-serial and is the only driver available
// on Windows.
//
// On posix systems the device is locked for the duration of the session so
// that no other process can interfere with the bank state of the cartridge.
package serialbus
