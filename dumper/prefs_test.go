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
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/prefs"
	"github.com/jetsetilly/gbdumper/test"
)

func TestPreferences(t *testing.T) {
	pth := filepath.Join(t.TempDir(), PreferencesFile)

	p, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.Timing(), cartridge.DefaultTiming)
	test.ExpectEquality(t, p.Baud.Get().(int), 115200)

	// the file is created on first use
	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "timing.settle :: 2µs\n"))

	test.ExpectSuccess(t, p.Settle.Set("5us"))
	test.ExpectSuccess(t, p.Strict.Set(true))
	test.DemandSuccess(t, p.Save())

	// command line values take priority over the file
	prefs.PushCommandLineStack("adapter.baud::9600")
	defer prefs.PopCommandLineStack()

	q, err := newPreferences(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Settle.Duration(), 5*time.Microsecond)
	test.ExpectEquality(t, q.Strict.Get().(bool), true)
	test.ExpectEquality(t, q.Baud.Get().(int), 9600)
}
