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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gbdumper/logger"
	"github.com/jetsetilly/gbdumper/test"
)

type deny struct{}

func (_ deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the CompareWriter buffer before continuing, makes comparisons
	// easier to manage
	tw.Clear()

	logger.Logf(logger.Allow, "test2", "this is %s test", "another")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for exactly the correct number of entries is okay
	tw.Clear()
	logger.Tail(tw, 2)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}

func TestRepeatAndPermission(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "bus", "read 0x4000")
	logger.Log(logger.Allow, "bus", "read 0x4000")
	logger.Log(logger.Allow, "bus", "read 0x4000")
	logger.Log(deny{}, "bus", "this should not appear")
	logger.Write(tw)
	test.ExpectEquality(t, tw.String(), "bus: read 0x4000 (repeat x3)\n")

	entries := 0
	logger.BorrowLog(func(e []logger.Entry) {
		entries = len(e)
	})
	test.ExpectEquality(t, entries, 1)
}

func TestEcho(t *testing.T) {
	logger.Clear()

	tw := &test.CompareWriter{}
	logger.Log(logger.Allow, "header", "bad checksum")

	logger.SetEcho(tw, true)
	defer logger.SetEcho(nil, false)
	test.ExpectEquality(t, tw.String(), "header: bad checksum\n")

	tw.Clear()
	logger.Log(logger.Allow, "ram", "enabled")
	test.ExpectEquality(t, tw.String(), "ram: enabled\n")
}
