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

package paths

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate default filenames for ROM and RAM dumps. Format of returned
// string is:
//
//	title_YYYYMMDD_HHMMSS.ext
//
// Characters in the title that are not letters or digits are replaced with an
// underscore. If there is no title the returned string will be of the format:
//
//	YYYYMMDD_HHMMSS.ext
func UniqueFilename(title string, ext string) string {
	return uniqueFilename(title, ext, time.Now())
}

func uniqueFilename(title string, ext string, n time.Time) string {
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	c := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, strings.TrimSpace(title))

	ext = strings.TrimPrefix(ext, ".")

	var fn string
	if len(c) > 0 {
		fn = fmt.Sprintf("%s_%s", c, timestamp)
	} else {
		fn = timestamp
	}
	if len(ext) > 0 {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
