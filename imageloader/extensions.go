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

package imageloader

import (
	"path/filepath"
	"strings"
)

// Format of the image data on disk.
type Format int

// List of valid Format values.
const (
	Raw Format = iota
	Gzip
	Zip
	SevenZip
)

func (f Format) String() string {
	switch f {
	case Raw:
		return "raw"
	case Gzip:
		return "gzip"
	case Zip:
		return "zip"
	case SevenZip:
		return "7z"
	}
	return "unknown"
}

// FileExtensions is the list of file extensions that are recognised by the
// imageloader package. Any other extension is treated as a raw image.
var FileExtensions = [...]string{".SAV", ".SRM", ".RAM", ".GZ", ".ZIP", ".7Z"}

// FormatFromFilename returns the Format implied by the file extension.
// Alphabetic characters in file extensions can be in upper or lower case or a
// mixture of both.
func FormatFromFilename(filename string) Format {
	switch strings.ToUpper(filepath.Ext(filename)) {
	case ".GZ":
		return Gzip
	case ".ZIP":
		return Zip
	case ".7Z":
		return SevenZip
	}
	return Raw
}
