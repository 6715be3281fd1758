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

// Package paths contains functions to prepare paths to gbdumper resources.
//
// The ResourcePath() function returns the path to a resource file in the
// config directory. For example, the following will return the path to the
// preferences file.
//
//	pth, err := paths.ResourcePath("", "preferences")
//
// For development builds the config directory is ".gbdumper" in the current
// directory. For release builds (built with the "release" tag) the config
// directory is "gbdumper" in the user's config directory, as returned by
// os.UserConfigDir(). On a modern Linux system the path returned will be:
//
//	/home/user/.config/gbdumper/preferences
//
// In both cases the directory is created if it does not exist.
package paths
