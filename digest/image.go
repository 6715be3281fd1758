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

package digest

import (
	"crypto/sha1"
	"fmt"
	"hash"

	"github.com/cespare/xxhash"
)

// Image is an implementation of the Digest interface and the io.Writer
// interface. It creates two hashes of the data written to it. A sha1 hash
// which is suitable for comparison with published cartridge databases and an
// xxhash which is used for quick comparisons.
//
// Note that the use of sha1 is fine for this application because this is not a
// cryptographic task.
type Image struct {
	sha  hash.Hash
	xx   hash.Hash64
	size int
}

// NewImage is the preferred method of initialisation for the Image type.
func NewImage() *Image {
	return &Image{
		sha: sha1.New(),
		xx:  xxhash.New(),
	}
}

// Write implements the io.Writer interface.
func (dig *Image) Write(p []byte) (int, error) {
	// neither hash ever returns an error
	dig.sha.Write(p)
	dig.xx.Write(p)
	dig.size += len(p)
	return len(p), nil
}

func (dig *Image) String() string {
	return fmt.Sprintf("sha1 %s xxhash %016x (%d bytes)", dig.Hash(), dig.Sum64(), dig.size)
}

// Hash implements the Digest interface. Returns the sha1 hash as a hex string.
func (dig *Image) Hash() string {
	return fmt.Sprintf("%x", dig.sha.Sum(nil))
}

// Sum64 returns the xxhash of the data written so far.
func (dig *Image) Sum64() uint64 {
	return dig.xx.Sum64()
}

// Size returns the number of bytes written so far.
func (dig *Image) Size() int {
	return dig.size
}

// ResetDigest implements the Digest interface.
func (dig *Image) ResetDigest() {
	dig.sha.Reset()
	dig.xx.Reset()
	dig.size = 0
}

// Sum64 is a convenience function that returns the xxhash of the data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}
