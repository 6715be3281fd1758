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
	"bytes"
	"io"

	"github.com/jetsetilly/gbdumper/digest"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/logger"
	"github.com/jetsetilly/gbdumper/paths"
)

// Result of a dump operation.
type Result struct {
	Header cartridge.Header

	// the file the data was written to
	Filename string

	// number of bytes written to the output file
	Size int

	// fingerprint of the data
	Digest *digest.Image

	// whether the global checksum in the header agrees with the ROM data.
	// not used for RAM dumps
	GlobalChecksumOK bool
}

// readROM streams the entire ROM to the io.Writer. Returns the ROM data and
// the fingerprint
func (dmp *Dumper) readROM(h cartridge.Header, w io.Writer) ([]byte, *digest.Image, error) {
	r := cartridge.NewROMReaderFromHeader(dmp.bus, h, dmp.opts.Timing)

	rom := bytes.NewBuffer(make([]byte, 0, r.Size()))
	dig := digest.NewImage()

	writers := []io.Writer{rom, dig}
	if w != nil {
		writers = append(writers, w)
	}

	bar := dmp.bar("ROM", r.Size(), r)
	if bar != nil {
		writers = append(writers, bar)
	}

	_, err := io.Copy(io.MultiWriter(writers...), r)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return nil, nil, err
	}

	return rom.Bytes(), dig, nil
}

// DumpROM reads the entire ROM and writes it to the named file. If the
// filename is empty then a unique filename is created from the cartridge
// title.
func (dmp *Dumper) DumpROM(filename string) (Result, error) {
	dmp.begin(4)

	dmp.next("parsing header")
	h, err := dmp.header()
	if err != nil {
		return Result{}, err
	}
	dmp.printf("%s\n", h)

	if filename == "" {
		filename = paths.UniqueFilename(h.TitleString(), "gb")
	}

	dmp.next("creating output file %s", filename)
	out, err := create(filename)
	if err != nil {
		return Result{Header: h}, err
	}

	dmp.next("reading ROM")
	rom, dig, err := dmp.readROM(h, out)
	err = out.finish(err)
	if err != nil {
		return Result{Header: h}, err
	}

	dmp.next("finishing")
	res := Result{
		Header:           h,
		Filename:         filename,
		Size:             len(rom),
		Digest:           dig,
		GlobalChecksumOK: cartridge.GlobalChecksum(rom) == h.GlobalChecksum,
	}
	dmp.printf("%s\n", dig)
	if !res.GlobalChecksumOK {
		logger.Logf(logger.Allow, "dumper", "global checksum mismatch (%#04x, expected %#04x)", cartridge.GlobalChecksum(rom), h.GlobalChecksum)
		dmp.printf("global checksum mismatch\n")
	}

	return res, nil
}
