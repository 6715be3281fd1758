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

// Package statsview is an optional package that serves runtime statistics
// (memory, goroutines, garbage collection) as charts in a web browser. It is
// useful when watching the behaviour of long dumps from slow adapters.
//
// The package is only included when the program is built with the statsview
// build tag:
//
//	go build -tags statsview .
//
// Without the tag the Available() function returns false and Launch() does
// nothing.
package statsview
