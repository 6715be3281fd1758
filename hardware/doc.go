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

// Package hardware is the base package for access to Game Boy cartridges. It
// and its sub-packages contain everything required to read and write a
// cartridge through an adapter.
//
// The bus package defines the Bus interface, the three primitive operations
// that every adapter supports. The serialbus, remotebus and simbus packages
// provide implementations of the interface for a serial adapter, an adapter
// on another machine and a simulated cartridge respectively.
//
// The cartridge package is built on top of the Bus interface. It decodes the
// cartridge header and drives the memory bank controller of the cartridge so
// that the entire ROM and RAM can be read and the RAM restored.
package hardware
