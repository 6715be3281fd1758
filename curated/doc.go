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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Patterns are stored as exported const strings in the
// package that creates the error. For example, the bus package declares:
//
//	const BusError = "bus error: %v"
//
// and a caller can test for it:
//
//	if curated.Is(err, bus.BusError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(bus.BusError, io.ErrUnexpectedEOF)
//	f := curated.Errorf("dump: %v", e)
//
//	curated.Has(f, bus.BusError) // true
//	curated.Is(f, bus.BusError)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). We can think of the difference between curated and
// uncurated errors as being 'expected' and 'unexpected'.
//
// The Error() function normalises the error chain by removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors.
// A bus error wrapped twice by layers that both add "bus error" reads as:
//
//	bus error: short read
//
// and not:
//
//	bus error: bus error: short read
//
// Parts of the chain are separated by the sub-string ": " as suggested on p239
// of "The Go Programming Language" (Donovan, Kernighan).
//
// Curated errors also implement Unwrap() so that the standard library
// functions errors.Is() and errors.As() work across them.
package curated
