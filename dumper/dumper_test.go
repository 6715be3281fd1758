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

package dumper_test

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/digest"
	"github.com/jetsetilly/gbdumper/dumper"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/bus/simbus"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/test"
)

func newDumper(t *testing.T, rom []uint8, strict bool) (*dumper.Dumper, *simbus.Cartridge, *strings.Builder) {
	t.Helper()

	c, err := simbus.NewCartridge(rom)
	test.DemandSuccess(t, err)

	out := &strings.Builder{}
	dmp := dumper.NewDumper(c, dumper.Options{
		Output: out,
		Timing: cartridge.NoTiming,
		Strict: strict,
	})

	return dmp, c, out
}

func TestInfo(t *testing.T) {
	dmp, _, out := newDumper(t, simbus.NewROM("POKEMON RED", 0x13, 0x05, 0x03), false)

	h, err := dmp.Info()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.TitleString(), "POKEMON RED")
	test.ExpectEquality(t, h.MBC, cartridge.MBC3RAMBattery)

	s := out.String()
	test.ExpectSuccess(t, strings.HasPrefix(s, "[1/1] parsing header\n"))
	test.ExpectSuccess(t, strings.Contains(s, "title:      POKEMON RED\n"))
	test.ExpectSuccess(t, strings.Contains(s, "ROM size:   1024KB (64 banks)\n"))
	test.ExpectSuccess(t, strings.Contains(s, "RAM size:   32KB (4 banks)\n"))
	test.ExpectSuccess(t, strings.Contains(s, " ok\n"))
}

func TestInfoStrict(t *testing.T) {
	rom := simbus.NewROM("STRICT", 0xfd, 0x00, 0x00)

	dmp, _, _ := newDumper(t, rom, false)
	h, err := dmp.Info()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, h.MBC, cartridge.ROMOnly)
	test.ExpectEquality(t, len(h.Warnings), 1)

	dmp, _, _ = newDumper(t, rom, true)
	_, err = dmp.Info()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.HeaderDecodeWarning))
}

func TestMemviz(t *testing.T) {
	dmp, _, _ := newDumper(t, simbus.NewROM("MEMVIZ", 0x01, 0x00, 0x00), false)
	h, err := dmp.Info()
	test.DemandSuccess(t, err)

	var dot bytes.Buffer
	dmp.Memviz(&dot, h)
	test.ExpectSuccess(t, strings.Contains(dot.String(), "digraph"))
}

func TestDumpROM(t *testing.T) {
	rom := simbus.NewROM("DUMP", 0x1b, 0x03, 0x03)
	dmp, _, out := newDumper(t, rom, false)

	fn := filepath.Join(t.TempDir(), "dump.gb")
	res, err := dmp.DumpROM(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Size, len(rom))
	test.ExpectEquality(t, res.Filename, fn)
	test.ExpectSuccess(t, res.GlobalChecksumOK)
	test.ExpectEquality(t, res.Digest.Sum64(), digest.Sum64(rom))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(data, rom))

	s := out.String()
	for _, stage := range []string{
		"[1/4] parsing header",
		"[2/4] creating output file " + fn,
		"[3/4] reading ROM",
		"[4/4] finishing",
	} {
		test.ExpectSuccess(t, strings.Contains(s, stage), stage)
	}
}

func TestDumpROMChecksum(t *testing.T) {
	rom := simbus.NewROM("CHECKSUM", 0x01, 0x01, 0x00)
	rom[0x7fff] ^= 0xff

	dmp, _, out := newDumper(t, rom, false)
	res, err := dmp.DumpROM(filepath.Join(t.TempDir(), "dump.gb"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, !res.GlobalChecksumOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "global checksum mismatch"))
}

func TestDumpROMBusError(t *testing.T) {
	dmp, c, _ := newDumper(t, simbus.NewROM("FAULT", 0x01, 0x02, 0x00), false)

	// fail after the header has been read
	c.FailAfter(cartridge.HeaderLen*2 + 1000)

	fn := filepath.Join(t.TempDir(), "dump.gb")
	_, err := dmp.DumpROM(fn)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, bus.BusError))

	// partial output is removed
	_, err = os.Stat(fn)
	test.ExpectSuccess(t, os.IsNotExist(err))
}

func TestDumpROMFileError(t *testing.T) {
	dmp, _, _ := newDumper(t, simbus.NewROM("FILE", 0x00, 0x00, 0x00), false)

	_, err := dmp.DumpROM(filepath.Join(t.TempDir(), "missing", "dump.gb"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, cartridge.FileIoError))
}

func TestDumpAndRestoreRAM(t *testing.T) {
	rom := simbus.NewROM("RAM", 0x1b, 0x02, 0x04)
	dmp, c, _ := newDumper(t, rom, false)

	ram := make([]uint8, 0x20000)
	for i := range ram {
		ram[i] = uint8(i>>13) + uint8(i)
	}
	c.LoadRAM(ram)

	fn := filepath.Join(t.TempDir(), "game.sav")
	res, err := dmp.DumpRAM(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, res.Size, len(ram))

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(data, ram))

	// restore a compressed image to a fresh cartridge
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err = w.Write(data)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, w.Close())

	gz := filepath.Join(t.TempDir(), "game.sav.gz")
	test.DemandSuccess(t, os.WriteFile(gz, buf.Bytes(), 0o600))

	dmp, c, _ = newDumper(t, rom, false)
	n, err := dmp.RestoreRAM(gz)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, len(ram))
	test.ExpectSuccess(t, bytes.Equal(c.RAM(), ram))
}

func TestRestoreRAMShortImageProgress(t *testing.T) {
	c, err := simbus.NewCartridge(simbus.NewROM("SHORT", 0x03, 0x00, 0x02))
	test.DemandSuccess(t, err)

	prog := &strings.Builder{}
	dmp := dumper.NewDumper(c, dumper.Options{
		Output:   &strings.Builder{},
		Progress: prog,
		Timing:   cartridge.NoTiming,
	})

	fn := filepath.Join(t.TempDir(), "short.sav")
	test.DemandSuccess(t, os.WriteFile(fn, make([]byte, 100), 0o600))

	n, err := dmp.RestoreRAM(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, n, 0x2000)

	// the bar reaches the end even though most of the RAM is padding
	lines := strings.Split(strings.TrimSpace(prog.String()), "\r")
	test.ExpectSuccess(t, strings.Contains(lines[len(lines)-1], "100%"))
}

func TestRestoreRAMNoRAM(t *testing.T) {
	dmp, c, _ := newDumper(t, simbus.NewROM("NORAM", 0x01, 0x00, 0x00), false)

	fn := filepath.Join(t.TempDir(), "game.sav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{1, 2, 3}, 0o600))

	n, err := dmp.RestoreRAM(fn)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)
	test.ExpectEquality(t, len(c.Writes(cartridge.RAMOrigin, cartridge.RAMMemtop)), 0)
}

func TestRestoreRAMMissingImage(t *testing.T) {
	dmp, _, _ := newDumper(t, simbus.NewROM("MISSING", 0x03, 0x00, 0x02), false)
	_, err := dmp.RestoreRAM(filepath.Join(t.TempDir(), "missing.sav"))
	test.ExpectFailure(t, err)
}

func TestVerify(t *testing.T) {
	rom := simbus.NewROM("VERIFY", 0x19, 0x02, 0x00)
	dir := t.TempDir()

	same := filepath.Join(dir, "same.gb")
	test.DemandSuccess(t, os.WriteFile(same, rom, 0o600))

	dmp, _, out := newDumper(t, rom, false)
	v, err := dmp.Verify(same)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, v.Match)
	test.ExpectEquality(t, v.Offset, -1)
	test.ExpectSuccess(t, v.GlobalChecksumOK)
	test.ExpectSuccess(t, strings.Contains(out.String(), "ROM matches"))

	diff := append([]uint8{}, rom...)
	diff[0x9000] ^= 0x01
	different := filepath.Join(dir, "different.gb")
	test.DemandSuccess(t, os.WriteFile(different, diff, 0o600))

	dmp, _, _ = newDumper(t, rom, false)
	v, err = dmp.Verify(different)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, !v.Match)
	test.ExpectEquality(t, v.Offset, 0x9000)

	short := filepath.Join(dir, "short.gb")
	test.DemandSuccess(t, os.WriteFile(short, rom[:0x4000], 0o600))

	dmp, _, _ = newDumper(t, rom, false)
	v, err = dmp.Verify(short)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, !v.Match)
	test.ExpectEquality(t, v.FileSize, 0x4000)
	test.ExpectEquality(t, v.Offset, 0x4000)
}

func TestDumpROMUniqueFilename(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	dmp, _, _ := newDumper(t, simbus.NewROM("TETRIS", 0x00, 0x00, 0x00), false)
	res, err := dmp.DumpROM("")
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(res.Filename, "TETRIS_"))
	test.ExpectSuccess(t, strings.HasSuffix(res.Filename, ".gb"))

	_, err = os.Stat(res.Filename)
	test.ExpectSuccess(t, err)
}
