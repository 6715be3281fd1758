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

// Package digest contains implementations of the Digest interface. A digest is
// produced from the bytes written to it and can be used to compare the output
// of subsequent runs. If a new digest differs from a previously recorded
// value then something has changed.
//
// The Image type is used to fingerprint cartridge ROM and RAM images as they
// are dumped. A Image should be used with io.MultiWriter() or io.TeeReader()
// so that the fingerprint is created without a second pass over the data.
package digest

// Digest implementations should return a hash in response to a Hash()
// request. Generation of the hash is achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}
