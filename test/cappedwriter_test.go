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

package test_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gbdumper/test"
)

func TestCappedWriter(t *testing.T) {
	_, err := test.NewCappedWriter(0)
	test.ExpectFailure(t, err)

	c, err := test.NewCappedWriter(12)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, c.String(), "")
	test.ExpectEquality(t, len(c.Lines()), 0)

	n, err := c.Write([]byte("abcde\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 6)
	test.ExpectFailure(t, c.Capped())

	// a write that crosses the cap is partially kept but reports the full
	// length
	n, err = c.Write([]byte("fghij\nklm"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 9)
	test.ExpectEquality(t, c.String(), "abcde\nfghij\n")
	test.ExpectSuccess(t, c.Capped())
	test.ExpectEquality(t, c.Dropped(), 3)
	test.ExpectEquality(t, strings.Join(c.Lines(), ","), "abcde,fghij")

	// everything after the cap is dropped
	c.Write([]byte("nop"))
	test.ExpectEquality(t, c.Dropped(), 6)

	c.Reset()
	test.ExpectEquality(t, c.String(), "")
	test.ExpectFailure(t, c.Capped())

	// a cut line is not returned
	c.Write([]byte("0123\n456789abcdef"))
	test.ExpectEquality(t, strings.Join(c.Lines(), ","), "0123")
}
