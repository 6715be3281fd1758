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

// Package progress draws a single line progress bar on a terminal. The Bar
// type implements the io.Writer interface and is intended to be used with
// io.TeeReader() or io.MultiWriter() so that progress is updated as data is
// transferred.
//
// The width of the bar is taken from the terminal. If the output is not a
// terminal then a default width is used.
package progress
