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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Most importantly, the Parse() function returns a
// ParseResult which should be checked before continuing:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	port := md.AddString("port", "", "serial port of the adapter")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		// help message has been printed
//		return
//	case modalflag.ParseError:
//		fmt.Println(err)
//		return
//	}
//
// Modes are added with AddSubModes(). The first sub-mode is the default mode
// and is selected when the first argument is not a recognised mode:
//
//	md.AddSubModes("INFO", "DUMP", "VERIFY")
//	r, err := md.Parse()
//
//	switch md.Mode() {
//	case "DUMP":
//		md.NewMode()
//		output := md.AddString("o", "", "output file")
//		r, err = md.Parse()
//		...
//	}
//
// Mode comparisons are case insensitive. The Path() function returns every
// mode that has been selected, separated by a slash.
//
// Help is requested with the -help flag (or -h) and is printed automatically
// by Parse(). The help message lists the flags and the sub-modes of the
// current mode, along with any text given to AdditionalHelp().
package modalflag
