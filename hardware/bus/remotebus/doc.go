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

// Package remotebus exports a bus.Bus over a websocket connection. The Server
// type wraps a local Bus (usually a serial adapter) and the Client type
// implements the bus.Bus interface by sending requests to a Server.
//
// This allows a cartridge adapter attached to one machine to be driven from
// another. Every request is a binary message of four bytes:
//
//	[op, address high, address low, data]
//
// where op is 'A' (set address), 'R' (read byte) or 'W' (write byte). Every
// response is a binary message of at least two bytes:
//
//	[status, data]
//
// A status of zero means success. Any other status means failure and the
// bytes following the status are the error message.
//
// The Server only allows one client at a time because the bank state of the
// cartridge can not be shared.
package remotebus
