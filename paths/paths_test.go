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

package paths_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gbdumper/paths"
	"github.com/jetsetilly/gbdumper/test"
)

func TestPaths(t *testing.T) {
	// the development config directory is relative to the current directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	defer os.Chdir(wd)

	pth, err := paths.ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gbdumper", "foo", "bar", "baz"))

	info, err := os.Stat(filepath.Join(".gbdumper", "foo", "bar"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("foo/bar", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gbdumper", "foo", "bar"))

	pth, err = paths.ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gbdumper", "baz"))

	pth, err = paths.ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gbdumper")
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2023, 4, 5, 6, 7, 8, 0, time.UTC)
	test.ExpectEquality(t, paths.UniqueFilenameAt("POKEMON RED", ".gb", n), "POKEMON_RED_20230405_060708.gb")
	test.ExpectEquality(t, paths.UniqueFilenameAt("  ", "sav", n), "20230405_060708.sav")
	test.ExpectEquality(t, paths.UniqueFilenameAt("TETRIS", "", n), "TETRIS_20230405_060708")
}
