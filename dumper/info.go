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
	"fmt"
	"io"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
)

// Info reads and prints the cartridge header.
func (dmp *Dumper) Info() (cartridge.Header, error) {
	dmp.begin(1)
	dmp.next("parsing header")

	h, err := dmp.header()
	if err != nil {
		return h, err
	}

	dmp.printf("%s", Describe(h))
	return h, nil
}

// Describe returns a multiline description of the header.
func Describe(h cartridge.Header) string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("title:      %s\n", h.TitleString()))
	s.WriteString(fmt.Sprintf("controller: %s (%#02x)\n", h.MBC, h.TypeCode))
	s.WriteString(fmt.Sprintf("ROM size:   %dKB (%d banks)\n", h.ROMSize/1024, h.ROMBanks()))
	if h.RAMSize == 0 {
		s.WriteString("RAM size:   none\n")
	} else {
		s.WriteString(fmt.Sprintf("RAM size:   %dKB (%d banks)\n", h.RAMSize/1024, h.RAMBanks()))
	}
	if h.HeaderChecksumOK {
		s.WriteString(fmt.Sprintf("checksum:   %#02x ok\n", h.HeaderChecksum))
	} else {
		s.WriteString(fmt.Sprintf("checksum:   %#02x bad\n", h.HeaderChecksum))
	}
	for _, w := range h.Warnings {
		s.WriteString(fmt.Sprintf("warning:    %s\n", w))
	}
	return s.String()
}

// Memviz writes a graphviz description of the header along with the bank
// switching rule and initial driver state for the cartridge.
func (dmp *Dumper) Memviz(w io.Writer, h cartridge.Header) {
	drv := cartridge.NewDriver(dmp.bus, h.MBC, h.ROMBanks(), dmp.opts.Timing)

	type cartridgeDescription struct {
		Header cartridge.Header
		Rule   cartridge.BankSwitchRule
		State  cartridge.DriverState
	}

	memviz.Map(w, &cartridgeDescription{
		Header: h,
		Rule:   drv.Rule(),
		State:  drv.State(),
	})
}
