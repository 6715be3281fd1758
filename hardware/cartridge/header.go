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

package cartridge

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/logger"
)

// the header region of the cartridge address space
const (
	HeaderOrigin = 0x0100
	HeaderMemtop = 0x014f
	HeaderLen    = HeaderMemtop - HeaderOrigin + 1
)

// addresses of header fields
const (
	addrTitle          = 0x0134
	addrTitleEnd       = 0x0143
	addrType           = 0x0147
	addrROMSize        = 0x0148
	addrRAMSize        = 0x0149
	addrHeaderChecksum = 0x014d
	addrGlobalChecksum = 0x014e
)

// the title string when none of the title bytes are printable
const TitleFallback = "ERR"

// Header is the decoded cartridge header. Created once per session by Parse()
// and never changed.
type Header struct {
	// title bytes as they appear in the header. use TitleString() for a
	// displayable version
	Title [16]byte

	MBC     MBCType
	ROMSize int
	RAMSize int

	// raw values of the type and size bytes
	TypeCode    uint8
	ROMSizeCode uint8
	RAMSizeCode uint8

	// the checksum stored in the header and whether it agrees with the
	// header data
	HeaderChecksum   uint8
	HeaderChecksumOK bool

	// checksum of the entire ROM as stored in the header. this can only be
	// checked once the ROM has been dumped. see GlobalChecksum()
	GlobalChecksum uint16

	// problems found during decoding. these never prevent the header from
	// being used
	Warnings []string
}

func (h Header) String() string {
	return fmt.Sprintf("%s [%s] ROM: %dKB, RAM: %dKB", h.TitleString(), h.MBC, h.ROMSize/1024, h.RAMSize/1024)
}

// TitleString returns the title as a string. Trailing zero bytes are removed.
// If the title isn't valid text then non-printable bytes are replaced with a
// '.' character. If the title is empty or no bytes are printable the
// TitleFallback string is returned.
func (h Header) TitleString() string {
	t := strings.TrimRight(string(h.Title[:]), "\x00")
	if t == "" {
		return TitleFallback
	}
	if titleIsText(t) {
		return t
	}

	var s strings.Builder
	printable := false
	for i := 0; i < len(t); i++ {
		if t[i] >= 0x20 && t[i] < 0x7f {
			s.WriteByte(t[i])
			printable = true
		} else {
			s.WriteByte('.')
		}
	}

	if !printable {
		return TitleFallback
	}
	return s.String()
}

func titleIsText(t string) bool {
	if !utf8.ValidString(t) {
		return false
	}
	for _, r := range t {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

// ROMBanks returns the number of 16KB ROM banks.
func (h Header) ROMBanks() int {
	return h.ROMSize / ROMBankSize
}

// RAMBanks returns the number of 8KB RAM banks.
func (h Header) RAMBanks() int {
	return h.RAMSize / RAMBankSize
}

// Decode the header region. The data should start at HeaderOrigin and be at
// least HeaderLen bytes long. Problems with the data are recorded in the
// Warnings field and logged. An error is only returned if there is not enough
// data.
func Decode(data []uint8) (Header, error) {
	var h Header

	if len(data) < HeaderLen {
		return h, curated.Errorf(HeaderDecodeWarning, fmt.Sprintf("header too short (%d bytes)", len(data)))
	}

	get := func(addr uint16) uint8 {
		return data[addr-HeaderOrigin]
	}

	copy(h.Title[:], data[addrTitle-HeaderOrigin:addrTitleEnd-HeaderOrigin+1])

	h.TypeCode = get(addrType)
	h.ROMSizeCode = get(addrROMSize)
	h.RAMSizeCode = get(addrRAMSize)
	h.HeaderChecksum = get(addrHeaderChecksum)
	h.GlobalChecksum = uint16(get(addrGlobalChecksum))<<8 | uint16(get(addrGlobalChecksum+1))

	if !titleIsText(strings.TrimRight(string(h.Title[:]), "\x00")) {
		h.warn("title is not valid text (%q)", h.Title[:])
	}

	var ok bool

	h.MBC, ok = decodeMBCType(h.TypeCode)
	if !ok {
		h.warn("unrecognised cartridge type (%#02x) using %s", h.TypeCode, h.MBC)
	}

	h.ROMSize, ok = decodeROMSize(h.ROMSizeCode)
	if !ok {
		h.warn("unrecognised ROM size (%#02x) using %dKB", h.ROMSizeCode, h.ROMSize/1024)
	}

	// a ROM only cartridge, or a cartridge with an unrecognised controller,
	// is treated as having no RAM and only the two banks visible without
	// bank switching
	if h.MBC == ROMOnly {
		if h.ROMSize > minROMSize {
			h.warn("ROM size (%dKB) limited to %dKB for %s", h.ROMSize/1024, minROMSize/1024, h.MBC)
			h.ROMSize = minROMSize
		}
		if decodeRAMSize(h.RAMSizeCode) != 0 {
			h.warn("RAM size (%#02x) ignored for %s", h.RAMSizeCode, h.MBC)
		}
		h.RAMSize = 0
	} else {
		h.RAMSize = decodeRAMSize(h.RAMSizeCode)
	}

	// header checksum covers the title up to the mask ROM version number
	var sum uint8
	for addr := uint16(addrTitle); addr < addrHeaderChecksum; addr++ {
		sum = sum - get(addr) - 1
	}
	h.HeaderChecksumOK = sum == h.HeaderChecksum
	if !h.HeaderChecksumOK {
		h.warn("header checksum mismatch (%#02x, expected %#02x)", h.HeaderChecksum, sum)
	}

	return h, nil
}

func (h *Header) warn(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	h.Warnings = append(h.Warnings, s)
	logger.Log(logger.Allow, "header", s)
}

// Parse the cartridge header by reading it from the bus. Only a bus error
// will cause an error to be returned.
func Parse(b bus.Bus) (Header, error) {
	data := make([]uint8, HeaderLen)
	for i := range data {
		if err := b.SetAddr(uint16(HeaderOrigin + i)); err != nil {
			return Header{}, busError(err)
		}
		v, err := b.ReadByte()
		if err != nil {
			return Header{}, busError(err)
		}
		data[i] = v
	}

	return Decode(data)
}

// ParseStrict is the same as Parse() except that any problem found when
// decoding the header is returned as a HeaderDecodeWarning error.
func ParseStrict(b bus.Bus) (Header, error) {
	h, err := Parse(b)
	if err != nil {
		return h, err
	}
	if len(h.Warnings) > 0 {
		return h, curated.Errorf(HeaderDecodeWarning, strings.Join(h.Warnings, "; "))
	}
	return h, nil
}

// GlobalChecksum calculates the global checksum of ROM data. The checksum is
// the sum of every byte in the ROM except for the two bytes of the checksum
// itself.
func GlobalChecksum(rom []uint8) uint16 {
	var sum uint16
	for i, v := range rom {
		if i == addrGlobalChecksum || i == addrGlobalChecksum+1 {
			continue
		}
		sum += uint16(v)
	}
	return sum
}

// busError makes sure the error is marked as being a bus error
func busError(err error) error {
	if curated.Has(err, bus.BusError) {
		return err
	}
	return curated.Errorf(bus.BusError, err)
}
