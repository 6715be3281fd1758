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

//go:build !windows

package serialbus

import (
	"io"

	"github.com/pkg/term"
)

func openTerm(opts Options) (io.ReadWriteCloser, error) {
	t, err := term.Open(opts.Port, term.Speed(opts.Baud), term.RawMode)
	if err != nil {
		return nil, err
	}
	if opts.Timeout > 0 {
		if err := t.SetReadTimeout(opts.Timeout); err != nil {
			t.Close()
			return nil, err
		}
	}
	if err := t.Flush(); err != nil {
		t.Close()
		return nil, err
	}
	return t, nil
}
