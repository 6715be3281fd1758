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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/logger"
)

// Sentinal error pattern for the prefs package.
const PrefsError = "prefs: %v"

// WarningBoilerPlate is written to the top of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in the preferences file.
const separator = " :: "

// Disk represents preference values as stored on disk.
type Disk struct {
	crit    sync.Mutex
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// keys returns a sorted list of entry keys. must be called with the critical
// section locked
func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the Disk using the specified key. Keys can not be
// added more than once and must not contain the separator or a newline.
func (dsk *Disk) Add(key string, p pref) error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	if strings.Contains(key, strings.TrimSpace(separator)) || strings.ContainsAny(key, "\n;") {
		return curated.Errorf(PrefsError, fmt.Sprintf("illegal key (%s)", key))
	}
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(PrefsError, fmt.Sprintf("key already added (%s)", key))
	}

	dsk.entries[key] = p
	return nil
}

// Reset all preference values to their zero value. Hooks are called as normal.
func (dsk *Disk) Reset() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(PrefsError, err)
		}
	}
	return nil
}

// read the preferences file into a map. a missing file is not an error
func (dsk *Disk) read() (map[string]string, error) {
	values := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return values, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the warning boiler plate
	if !scanner.Scan() {
		return values, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, fmt.Errorf("not a valid preferences file (%s)", dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		values[kv[0]] = kv[1]
	}

	return values, scanner.Err()
}

// Save current preference values to disk. Values in the file for keys that
// haven't been added to this Disk are preserved.
func (dsk *Disk) Save() error {
	dsk.crit.Lock()
	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(PrefsError, err)
	}

	logger.Logf(logger.Allow, "prefs", "saved %d values to %s", len(dsk.entries), dsk.path)

	return nil
}

// Load preference values from disk. Values on the command line stack take
// priority over values on disk.
//
// If saveOnFirstUse is true and the preferences file does not exist then the
// current values are saved to create it.
func (dsk *Disk) Load(saveOnFirstUse bool) error {
	dsk.crit.Lock()

	if saveOnFirstUse {
		if _, err := os.Stat(dsk.path); os.IsNotExist(err) {
			dsk.crit.Unlock()
			if err := dsk.Save(); err != nil {
				return err
			}
			dsk.crit.Lock()
		}
	}

	defer dsk.crit.Unlock()

	values, err := dsk.read()
	if err != nil {
		return curated.Errorf(PrefsError, err)
	}

	for _, k := range dsk.keys() {
		p := dsk.entries[k]

		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, fmt.Errorf("%s: %w", k, err))
			}
			logger.Logf(logger.Allow, "prefs", "%s set to %s from command line", k, v)
			continue
		}

		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(PrefsError, fmt.Errorf("%s: %w", k, err))
			}
		}
	}

	return nil
}
