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

// Package dumper implements the operations of the command line tool. Each
// operation works on a bus.Bus and reports what it is doing as a series of
// numbered stages written to an io.Writer:
//
//	[1/4] parsing header
//	[2/4] creating output file
//	[3/4] reading ROM
//	[4/4] finishing
//
// ROM and RAM dumps are written verbatim to the output file. RAM images for
// restoring are loaded with the imageloader package and so can be compressed.
//
// Errors from the bus are returned as they are. Errors from output files are
// returned as cartridge.FileIoError.
package dumper
