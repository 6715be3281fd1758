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

package remotebus

import "fmt"

// Sentinal error pattern for protocol errors.
const ProtocolError = "remotebus: %v"

// the path on which the Server listens
const Path = "/bus"

const (
	opSetAddr   = 'A'
	opReadByte  = 'R'
	opWriteByte = 'W'
)

const (
	statusOK   = 0x00
	statusFail = 0x01
)

const requestLen = 4

type request struct {
	op   uint8
	addr uint16
	data uint8
}

func (r request) encode() []uint8 {
	return []uint8{r.op, uint8(r.addr >> 8), uint8(r.addr), r.data}
}

func decodeRequest(p []uint8) (request, error) {
	if len(p) != requestLen {
		return request{}, fmt.Errorf("request length is %d bytes", len(p))
	}
	return request{
		op:   p[0],
		addr: uint16(p[1])<<8 | uint16(p[2]),
		data: p[3],
	}, nil
}

func okResponse(data uint8) []uint8 {
	return []uint8{statusOK, data}
}

func failResponse(err error) []uint8 {
	return append([]uint8{statusFail}, []uint8(err.Error())...)
}
