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
	"os"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/digest"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
)

// Verification is the result of the Verify() function.
type Verification struct {
	Header cartridge.Header

	// whether the cartridge ROM and the file are identical
	Match bool

	// the sizes of the cartridge ROM and the file
	ROMSize  int
	FileSize int

	// offset of the first byte that differs. -1 if there is no difference.
	// if the data only differs in length then the offset is the length of
	// the shorter data
	Offset int

	// whether the global checksum in the header agrees with the ROM data
	GlobalChecksumOK bool
}

// Verify reads the entire ROM and compares it with the named file.
func (dmp *Dumper) Verify(filename string) (Verification, error) {
	dmp.begin(4)

	dmp.next("parsing header")
	h, err := dmp.header()
	if err != nil {
		return Verification{}, err
	}
	dmp.printf("%s\n", h)

	dmp.next("loading file")
	data, err := os.ReadFile(filename)
	if err != nil {
		return Verification{Header: h}, curated.Errorf(cartridge.FileIoError, err)
	}

	dmp.next("reading ROM")
	rom, dig, err := dmp.readROM(h, nil)
	if err != nil {
		return Verification{Header: h}, err
	}

	dmp.next("comparing")
	v := Verification{
		Header:           h,
		ROMSize:          len(rom),
		FileSize:         len(data),
		Offset:           -1,
		GlobalChecksumOK: cartridge.GlobalChecksum(rom) == h.GlobalChecksum,
	}

	v.Match = len(rom) == len(data) && dig.Sum64() == digest.Sum64(data)
	if !v.Match {
		v.Offset = firstDifference(rom, data)
	}

	switch {
	case v.Match:
		dmp.printf("ROM matches %s\n", filename)
	case v.ROMSize != v.FileSize:
		dmp.printf("ROM is %d bytes, file is %d bytes. first difference at %#06x\n", v.ROMSize, v.FileSize, v.Offset)
	default:
		dmp.printf("ROM differs from file. first difference at %#06x\n", v.Offset)
	}

	if !v.GlobalChecksumOK {
		dmp.printf("global checksum mismatch\n")
	}

	return v, nil
}

func firstDifference(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
