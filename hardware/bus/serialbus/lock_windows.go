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

//go:build windows

package serialbus

import "io"

type noLock struct{}

func (noLock) Close() error {
	return nil
}

// COM ports are opened exclusively by windows so there is no need for an
// additional lock
func lockDevice(name string) (io.Closer, error) {
	return noLock{}, nil
}
