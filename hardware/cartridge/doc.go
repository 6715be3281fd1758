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

// Package cartridge implements the memory bank controller protocol of Game Boy
// cartridges. It reads the cartridge header, decides how banks are selected
// for the controller and moves through the banks to dump the ROM and to dump
// or restore the RAM.
//
// The cartridge is accessed through the bus.Bus interface. The Driver type is
// the only type that writes to the controller registers and the only type that
// changes the bank state. The ROMReader and RAMAccessor types request banks
// through the Driver.
//
// Bank switching rules are data. Each controller family has a BankSwitchRule
// entry that names the registers to write and the values to write to them.
//
// Header parsing is permissive. Problems with the header are recorded as
// warnings and a safe value is used instead. ParseStrict() can be used when a
// problem should be an error.
package cartridge
