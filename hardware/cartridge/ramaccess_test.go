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

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/bus/simbus"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/test"
)

func newAccessor(t *testing.T, typeCode, romCode, ramCode uint8) (*cartridge.RAMAccessor, *simbus.Cartridge) {
	t.Helper()
	c := newCart(t, simbus.NewROM("RAM", typeCode, romCode, ramCode))
	h, err := cartridge.Parse(c)
	test.DemandSuccess(t, err)
	c.ClearAccesses()
	d := cartridge.NewDriver(c, h.MBC, h.ROMBanks(), cartridge.NoTiming)
	return cartridge.NewRAMAccessor(d, h.RAMSize), c
}

func pattern(n int) []uint8 {
	p := make([]uint8, n)
	for i := range p {
		p[i] = uint8(i*7) ^ uint8(i>>13)
	}
	return p
}

func TestRAMDump(t *testing.T) {
	ra, c := newAccessor(t, 0x1b, 0x02, 0x04)
	img := pattern(128 * 1024)
	c.LoadRAM(img)

	var out bytes.Buffer
	n, err := ra.Dump(&out)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, len(img))
	test.ExpectSuccess(t, bytes.Equal(out.Bytes(), img))

	// RAM is disabled at the end of the dump
	w := c.Writes(0x0000, 0x1fff)
	test.DemandEquality(t, len(w), 2)
	test.ExpectEquality(t, w[1].Data, uint8(0x00))
}

func TestRAMRoundTrip(t *testing.T) {
	for _, tc := range []struct {
		typeCode uint8
		ramCode  uint8
	}{
		{0x03, 0x02},
		{0x03, 0x03},
		{0x13, 0x03},
		{0x13, 0x05},
		{0x1b, 0x04},
	} {
		ra, c := newAccessor(t, tc.typeCode, 0x01, tc.ramCode)
		img := pattern(ra.Size())

		n, err := ra.Restore(bytes.NewReader(img))
		test.DemandSuccess(t, err, tc)
		test.ExpectEquality(t, n, ra.Size(), tc)
		test.ExpectSuccess(t, bytes.Equal(c.RAM(), img), tc)

		var out bytes.Buffer
		_, err = ra.Dump(&out)
		test.DemandSuccess(t, err, tc)
		test.ExpectSuccess(t, bytes.Equal(out.Bytes(), img), tc)
	}
}

func TestRAMRestoreMBC1(t *testing.T) {
	// 64KB ROM, 32KB RAM. four banks of 8KB
	ra, c := newAccessor(t, 0x03, 0x01, 0x03)
	test.DemandEquality(t, ra.Banks(), 4)

	n, err := ra.Restore(bytes.NewReader(pattern(ra.Size())))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 32768)

	// MBC1 is forced into RAM mode and each bank is selected once
	test.ExpectEquality(t, len(c.Writes(0x4000, 0x5fff)), 4)
	test.ExpectEquality(t, len(c.Writes(cartridge.RAMOrigin, cartridge.RAMMemtop)), 32768)

	mode := c.Writes(0x6000, 0x7fff)
	test.DemandEquality(t, len(mode), 1)
	test.ExpectEquality(t, mode[0].Data, uint8(0x01))
}

func TestRAMRestoreShortFile(t *testing.T) {
	ra, c := newAccessor(t, 0x1b, 0x01, 0x03)

	var progress bytes.Buffer
	ra.SetProgress(&progress)

	img := pattern(10000)
	n, err := ra.Restore(bytes.NewReader(img))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 32768)

	// progress includes the padding
	test.ExpectEquality(t, progress.Len(), 32768)
	test.ExpectSuccess(t, bytes.Equal(progress.Bytes(), c.RAM()))

	ram := c.RAM()
	test.ExpectSuccess(t, bytes.Equal(ram[:len(img)], img))
	for i := len(img); i < len(ram); i++ {
		if ram[i] != 0xff {
			t.Fatalf("RAM at %#04x is not padded (%#02x)", i, ram[i])
		}
	}
}

func TestRAMRestoreNoRAM(t *testing.T) {
	ra, c := newAccessor(t, 0x01, 0x01, 0x00)

	n, err := ra.Restore(bytes.NewReader(pattern(100)))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, len(c.Accesses()), 0)

	var out bytes.Buffer
	n, err = ra.Dump(&out)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
}

func TestRAMSingleBank(t *testing.T) {
	ra, c := newAccessor(t, 0x13, 0x01, 0x02)

	_, err := ra.Restore(bytes.NewReader(pattern(ra.Size())))
	test.DemandSuccess(t, err)

	var out bytes.Buffer
	_, err = ra.Dump(&out)
	test.DemandSuccess(t, err)

	// a single bank cartridge never has the RAM bank register written
	test.ExpectEquality(t, len(c.Writes(0x4000, 0x5fff)), 0)
}

func TestRAMRestoreMBC2Quirk(t *testing.T) {
	ra, c := newAccessor(t, 0x06, 0x01, 0x02)

	_, err := ra.Restore(bytes.NewReader(pattern(ra.Size())))
	test.DemandSuccess(t, err)

	// the first access is a read of the header followed by the RAM enable
	acc := c.Accesses()
	test.DemandEquality(t, len(acc) > 2, true)
	test.ExpectEquality(t, acc[0].Op, simbus.OpRead)
	test.ExpectEquality(t, acc[0].Addr, uint16(0x0134))
	test.ExpectEquality(t, acc[1].Op, simbus.OpWrite)
	test.ExpectEquality(t, acc[1].Addr, uint16(0x0000))

	// the built-in RAM holds the low nibble of the last bytes written to each
	// location
	img := pattern(ra.Size())
	test.ExpectEquality(t, c.RAM()[0x1ff], img[0x1fff]&0x0f)
}

func TestRAMBusError(t *testing.T) {
	ra, c := newAccessor(t, 0x1b, 0x01, 0x03)
	c.FailAfter(5000)

	_, err := ra.Restore(bytes.NewReader(pattern(ra.Size())))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, bus.BusError))
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestRAMDumpFileError(t *testing.T) {
	ra, _ := newAccessor(t, 0x1b, 0x01, 0x03)
	_, err := ra.Dump(failWriter{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.FileIoError))
}
