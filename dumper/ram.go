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

package dumper

import (
	"io"

	"github.com/jetsetilly/gbdumper/digest"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/imageloader"
	"github.com/jetsetilly/gbdumper/paths"
)

// DumpRAM reads the entire RAM and writes it to the named file. A cartridge
// without RAM produces an empty file. If the filename is empty then a unique
// filename is created from the cartridge title.
func (dmp *Dumper) DumpRAM(filename string) (Result, error) {
	dmp.begin(4)

	dmp.next("parsing header")
	h, err := dmp.header()
	if err != nil {
		return Result{}, err
	}
	dmp.printf("%s\n", h)

	if filename == "" {
		filename = paths.UniqueFilename(h.TitleString(), "sav")
	}

	dmp.next("creating output file %s", filename)
	out, err := create(filename)
	if err != nil {
		return Result{Header: h}, err
	}

	dmp.next("reading RAM")
	drv := cartridge.NewDriver(dmp.bus, h.MBC, h.ROMBanks(), dmp.opts.Timing)
	ra := cartridge.NewRAMAccessor(drv, h.RAMSize)

	dig := digest.NewImage()
	writers := []io.Writer{out, dig}

	bar := dmp.bar("RAM", ra.Size(), nil)
	if bar != nil {
		writers = append(writers, bar)
	}

	n, err := ra.Dump(io.MultiWriter(writers...))
	if bar != nil {
		bar.Finish()
	}
	err = out.finish(err)
	if err != nil {
		return Result{Header: h}, err
	}

	dmp.next("finishing")
	dmp.printf("%s\n", dig)

	return Result{
		Header:   h,
		Filename: filename,
		Size:     n,
		Digest:   dig,
	}, nil
}

// RestoreRAM writes the image in the named file to the cartridge RAM. The
// file can be compressed. See the imageloader package.
//
// Returns the number of bytes written to the cartridge.
func (dmp *Dumper) RestoreRAM(filename string) (int, error) {
	dmp.begin(4)

	dmp.next("parsing header")
	h, err := dmp.header()
	if err != nil {
		return 0, err
	}
	dmp.printf("%s\n", h)

	dmp.next("loading image")
	ld := imageloader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return 0, err
	}
	if h.RAMSize > 0 && len(ld.Data) != h.RAMSize {
		dmp.printf("image is %d bytes, cartridge RAM is %d bytes\n", len(ld.Data), h.RAMSize)
	}

	dmp.next("writing RAM")
	drv := cartridge.NewDriver(dmp.bus, h.MBC, h.ROMBanks(), dmp.opts.Timing)
	ra := cartridge.NewRAMAccessor(drv, h.RAMSize)

	bar := dmp.bar("RAM", ra.Size(), nil)
	if bar != nil {
		ra.SetProgress(bar)
	}

	n, err := ra.Restore(ld.Reader())
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return n, err
	}

	dmp.next("finishing")
	dmp.printf("%d bytes written\n", n)

	return n, nil
}
