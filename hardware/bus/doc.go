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

// Package bus defines the Bus interface, the capability exposed by a cartridge
// adapter. A Bus has no knowledge of memory bank controllers. It can only
// set the current address and then read or write a single byte at that
// address.
//
// Implementations of the Bus interface are found in the sub-packages. The
// simbus package is an in-memory cartridge, useful for testing and for
// exercising the rest of the program without any hardware. The serialbus
// package drives a physical adapter over a serial line and the remotebus
// package drives another Bus over a websocket connection.
//
// The Trace and Counter types are decorators that can be wrapped around any
// Bus implementation. Trace logs every primitive to the central logger and
// Counter keeps statistics about how the bus has been used.
package bus
