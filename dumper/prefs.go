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
	"runtime"
	"time"

	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/paths"
	"github.com/jetsetilly/gbdumper/prefs"
)

// PreferencesFile is the name of the preferences file in the resource path.
const PreferencesFile = "preferences"

// Preferences for the adapter and the cartridge hardware.
type Preferences struct {
	dsk *prefs.Disk

	// serial adapter
	Port    prefs.String
	Baud    prefs.Int
	Driver  prefs.String
	Timeout prefs.Duration

	// cartridge timing
	Settle     prefs.Duration
	Pulse      prefs.Duration
	BankSwitch prefs.Duration

	// treat header warnings as errors
	Strict prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the preferences file in the
// resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", PreferencesFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for _, e := range []struct {
		key string
		v   interface {
			String() string
			Set(prefs.Value) error
			Get() prefs.Value
			Reset() error
		}
	}{
		{"adapter.port", &p.Port},
		{"adapter.baud", &p.Baud},
		{"adapter.driver", &p.Driver},
		{"adapter.timeout", &p.Timeout},
		{"timing.settle", &p.Settle},
		{"timing.pulse", &p.Pulse},
		{"timing.bankswitch", &p.BankSwitch},
		{"header.strict", &p.Strict},
	} {
		if err := p.dsk.Add(e.key, e.v); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	port := "/dev/ttyUSB0"
	driver := "term"
	if runtime.GOOS == "windows" {
		port = "COM3"
		driver = "goserial"
	}

	for _, err := range []error{
		p.Port.Set(port),
		p.Baud.Set(115200),
		p.Driver.Set(driver),
		p.Timeout.Set(time.Second),
		p.Settle.Set(cartridge.DefaultTiming.AddressSettle),
		p.Pulse.Set(cartridge.DefaultTiming.WritePulse),
		p.BankSwitch.Set(cartridge.DefaultTiming.BankSwitch),
		p.Strict.Set(false),
	} {
		if err != nil {
			return err
		}
	}

	return nil
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Timing returns the cartridge timing described by the preferences.
func (p *Preferences) Timing() cartridge.Timing {
	return cartridge.Timing{
		AddressSettle: p.Settle.Duration(),
		WritePulse:    p.Pulse.Duration(),
		BankSwitch:    p.BankSwitch.Duration(),
	}
}
