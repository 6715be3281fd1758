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

import "time"

// Timing specifies the delays required by cartridge hardware. The delays are
// not optional. Slower RAM chips will not latch writes reliably if the address
// and data lines are not given time to settle.
type Timing struct {
	// the wait after an address has been set and before the data is written
	AddressSettle time.Duration

	// the wait after the data has been written and before the next address is
	// set. the width of the write pulse
	WritePulse time.Duration

	// the wait after a bank has been selected
	BankSwitch time.Duration
}

// DefaultTiming is suitable for all known cartridges.
var DefaultTiming = Timing{
	AddressSettle: 2 * time.Microsecond,
	WritePulse:    2 * time.Microsecond,
	BankSwitch:    10 * time.Microsecond,
}

// NoTiming removes all delays. Only suitable for simulated cartridges.
var NoTiming = Timing{}

func wait(d time.Duration) {
	if d <= 0 {
		return
	}

	// time.Sleep() can't be relied upon for waits shorter than the scheduler
	// granularity so spin for short delays
	if d < time.Millisecond {
		end := time.Now().Add(d)
		for time.Now().Before(end) {
		}
		return
	}

	time.Sleep(d)
}
