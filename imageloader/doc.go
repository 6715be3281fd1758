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

// Package imageloader loads RAM images for restoring to a cartridge. An image
// can be a raw file or a file compressed with gzip, or the first file in a zip
// or 7z archive. The compression type is decided by the file extension.
//
// Images can also be loaded over HTTP by specifying a URL rather than a file
// name.
//
// The Loader type records the sha1 hash of the decompressed data. If the Hash
// field is set before Load() is called then the loaded data must match it.
package imageloader
