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

// Package prefs facilitates the storage of preferential values in the
// gbdumper system. It is a key-value store with typed values.
//
// Values are created by declaring a variable of one of the prefs types (Bool,
// String, Int or Duration) and adding it to a Disk instance with a key:
//
//	var baud prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("adapter.baud", &baud)
//
// The Disk can then be saved and loaded. Preferences files are plain text,
// one key per line in the form:
//
//	key :: value
//
// Values in the file that have not been added to the Disk are preserved when
// the Disk is saved.
//
// Values can be overridden from the command line by pushing a preferences
// string onto the command line stack before the Disk is loaded:
//
//	prefs.PushCommandLineStack("adapter.baud::115200; timing.settle::5us")
//
// Command line values are applied by Load(). They become the current value
// of the preference and so will be written to disk by a later call to Save().
package prefs
