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

// command bytes. commands are in the low bits and parameters in the high bits
const (
	cmdAddr  uint8 = 0x00
	cmdLen   uint8 = 0x01
	cmdRead  uint8 = 0x02
	cmdWrite uint8 = 0x03
	cmdReady uint8 = 0x04
	cmdDelay uint8 = 0x05

	parMode8  uint8 = 0x10
	parDevID  uint8 = 0x20
	parSingle uint8 = 0x40
	parInc    uint8 = 0x80
)

// the commands used by the Adapter
const (
	opReadByte  = cmdRead | parSingle
	opWriteByte = cmdWrite | parSingle | parMode8
	opDeviceID  = cmdRead | parSingle | parDevID
)

// addrCommand returns the command sequence that sets the address. the high
// byte is sent first
func addrCommand(address uint16) []uint8 {
	return []uint8{cmdAddr, uint8(address >> 8), cmdAddr, uint8(address)}
}
