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

package bus_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/bus/simbus"
	"github.com/jetsetilly/gbdumper/logger"
	"github.com/jetsetilly/gbdumper/test"
)

func TestTrace(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("TRACE", 0x00, 0x00, 0x00))
	test.DemandSuccess(t, err)

	logger.Clear()
	tr := bus.NewTrace(c, logger.Allow)

	test.ExpectSuccess(t, tr.SetAddr(0x0147))
	v, err := tr.ReadByte()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x00))
	test.ExpectSuccess(t, tr.WriteByte(0x0a))

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "bus: read 0147 -> 00\nbus: write 0147 <- 0a\n")

	c.FailAfter(0)
	_, err = tr.ReadByte()
	test.ExpectFailure(t, err)

	w.Clear()
	logger.Tail(w, 1)
	test.ExpectSuccess(t, strings.HasPrefix(w.String(), "bus: read 0147: bus error"))
}

func TestTraceEcho(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("ECHO", 0x00, 0x00, 0x00))
	test.DemandSuccess(t, err)

	logger.Clear()
	w, err := test.NewCappedWriter(64)
	test.DemandSuccess(t, err)
	logger.SetEcho(w, false)
	defer logger.SetEcho(nil, false)

	// reading the whole of the home bank produces far more trace than is kept
	tr := bus.NewTrace(c, logger.Allow)
	for a := 0; a < 0x4000; a++ {
		test.DemandSuccess(t, tr.SetAddr(uint16(a)))
		_, err := tr.ReadByte()
		test.DemandSuccess(t, err)
	}

	test.ExpectSuccess(t, w.Capped())
	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "bus: read 0000 -> 00")
	test.ExpectEquality(t, lines[1], "bus: read 0001 -> 01")
	test.ExpectEquality(t, lines[2], "bus: read 0002 -> 02")
}

func TestCounter(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("COUNT", 0x00, 0x00, 0x00))
	test.DemandSuccess(t, err)

	cnt := bus.NewCounter(c)
	for i := 0; i < 10; i++ {
		test.DemandSuccess(t, cnt.SetAddr(uint16(i)))
		_, err := cnt.ReadByte()
		test.DemandSuccess(t, err)
	}
	test.DemandSuccess(t, cnt.WriteByte(0x00))

	c.FailAfter(0)
	test.ExpectFailure(t, cnt.SetAddr(0x0000))

	addrs, reads, writes, errors := cnt.Stats()
	test.ExpectEquality(t, addrs, uint64(11))
	test.ExpectEquality(t, reads, uint64(10))
	test.ExpectEquality(t, writes, uint64(1))
	test.ExpectEquality(t, errors, uint64(1))

	test.ExpectSuccess(t, bus.Close(cnt))
}
