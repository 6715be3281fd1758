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

package dumper

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/gbdumper/curated"
	"github.com/jetsetilly/gbdumper/hardware/bus"
	"github.com/jetsetilly/gbdumper/hardware/cartridge"
	"github.com/jetsetilly/gbdumper/logger"
	"github.com/jetsetilly/gbdumper/progress"
)

// Options for the Dumper type.
type Options struct {
	// stage messages and results are written to Output. if Output is nil
	// they are discarded
	Output io.Writer

	// progress bars are drawn to Progress. if Progress is nil then there is
	// no progress bar
	Progress io.Writer

	// delays required by the cartridge hardware
	Timing cartridge.Timing

	// treat problems decoding the header as errors
	Strict bool
}

// Dumper performs the operations of the tool on a single cartridge.
type Dumper struct {
	bus  bus.Bus
	opts Options

	stages int
	stage  int
}

// NewDumper is the preferred method of initialisation for the Dumper type.
func NewDumper(b bus.Bus, opts Options) *Dumper {
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	return &Dumper{
		bus:  b,
		opts: opts,
	}
}

// begin a new operation with the specified number of stages
func (dmp *Dumper) begin(stages int) {
	dmp.stages = stages
	dmp.stage = 0
}

// print the next stage message
func (dmp *Dumper) next(format string, args ...interface{}) {
	dmp.stage++
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(dmp.opts.Output, "[%d/%d] %s\n", dmp.stage, dmp.stages, msg)
	logger.Logf(logger.Allow, "dumper", "%s", msg)
}

func (dmp *Dumper) printf(format string, args ...interface{}) {
	fmt.Fprintf(dmp.opts.Output, format, args...)
}

func (dmp *Dumper) header() (cartridge.Header, error) {
	if dmp.opts.Strict {
		return cartridge.ParseStrict(dmp.bus)
	}
	return cartridge.Parse(dmp.bus)
}

// bar returns a progress bar or nil if progress bars are not wanted
func (dmp *Dumper) bar(label string, total int, status progress.Status) *progress.Bar {
	if dmp.opts.Progress == nil {
		return nil
	}
	return progress.NewBar(dmp.opts.Progress, label, total, status)
}

// fileWriter wraps errors from an output file with cartridge.FileIoError so
// that they can be told apart from bus errors after an io.Copy()
type fileWriter struct {
	w io.Writer
}

func (fw fileWriter) Write(p []byte) (int, error) {
	n, err := fw.w.Write(p)
	if err != nil {
		return n, curated.Errorf(cartridge.FileIoError, err)
	}
	return n, nil
}

// output is an output file that is removed if the operation fails
type output struct {
	f *os.File
}

func create(filename string) (*output, error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, curated.Errorf(cartridge.FileIoError, err)
	}
	return &output{f: f}, nil
}

func (o *output) Write(p []byte) (int, error) {
	return fileWriter{w: o.f}.Write(p)
}

// finish closes the file. if the operation failed the file is removed and the
// original error is returned
func (o *output) finish(err error) error {
	cerr := o.f.Close()
	if err != nil {
		if rerr := os.Remove(o.f.Name()); rerr != nil {
			logger.Logf(logger.Allow, "dumper", "could not remove %s: %v", o.f.Name(), rerr)
		}
		return err
	}
	if cerr != nil {
		return curated.Errorf(cartridge.FileIoError, cerr)
	}
	return nil
}
