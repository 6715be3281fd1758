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

// Package simbus is an in-memory Game Boy cartridge that implements the
// bus.Bus interface. It models the register behaviour of the ROM only, MBC1,
// MBC2, MBC3 and MBC5 controllers closely enough to test the cartridge
// package, and to run the program without any hardware attached.
//
// The controller model is independent of the cartridge package. It decodes
// the cartridge type and size bytes itself so that it can act as an oracle
// for the code under test.
//
// Every access is recorded and can be inspected with the Accesses()
// function. Failures can be injected with the FailAfter() function.
package simbus
