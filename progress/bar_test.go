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

package progress_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gbdumper/progress"
	"github.com/jetsetilly/gbdumper/test"
)

type status string

func (s status) Status() string {
	return string(s)
}

func TestLine(t *testing.T) {
	var out strings.Builder
	bar := progress.NewBar(&out, "ROM", 100, status("bank 1/4"))
	bar.SetWidth(31)

	test.ExpectEquality(t, bar.Line(), "ROM [          ]   0% bank 1/4")

	bar.Write(make([]byte, 50))
	test.ExpectEquality(t, bar.Line(), "ROM [=====     ]  50% bank 1/4")

	// writes past the total are clamped
	bar.Write(make([]byte, 80))
	test.ExpectEquality(t, bar.Line(), "ROM [==========] 100% bank 1/4")
}

func TestNarrow(t *testing.T) {
	var out strings.Builder
	bar := progress.NewBar(&out, "RAM", 10, nil)
	bar.SetWidth(5)
	bar.Write(make([]byte, 5))
	test.ExpectEquality(t, bar.Line(), "RAM  50%")
}

func TestDraw(t *testing.T) {
	var out strings.Builder
	bar := progress.NewBar(&out, "ROM", 4, nil)
	bar.SetWidth(20)
	bar.SetInterval(0)

	bar.Write([]byte{0, 0})
	bar.Write([]byte{0, 0})
	bar.Finish()

	// the final line is not redrawn by Finish() because it hasn't changed
	test.ExpectEquality(t, out.String(), "\rROM [====    ]  50%\rROM [========] 100%\n")
}
