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

package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// Status is implemented by types that can describe their progress in a few
// words. For example, the current bank being read.
type Status interface {
	Status() string
}

// Bar is a progress bar. It implements the io.Writer interface.
type Bar struct {
	out   io.Writer
	width int

	label  string
	total  int
	count  int
	status Status

	// the last drawn line. used to prevent redrawing when nothing has
	// changed
	last string

	// minimum time between redraws. the bar is always drawn when it reaches
	// the total
	interval time.Duration
	drawn    time.Time
}

// NewBar is the preferred method of initialisation for the Bar type. The
// status argument can be nil.
func NewBar(out io.Writer, label string, total int, status Status) *Bar {
	bar := &Bar{
		out:      out,
		width:    DefaultWidth,
		label:    label,
		total:    total,
		status:   status,
		interval: 50 * time.Millisecond,
	}

	if f, ok := out.(*os.File); ok {
		if w, ok := width(f); ok {
			bar.width = w
		}
	}

	return bar
}

// SetWidth overrides the width of the bar.
func (bar *Bar) SetWidth(w int) {
	bar.width = w
}

// SetInterval sets the minimum time between redraws.
func (bar *Bar) SetInterval(d time.Duration) {
	bar.interval = d
}

// Write implements the io.Writer interface. The data is discarded and only
// the length counts towards progress.
func (bar *Bar) Write(p []byte) (int, error) {
	bar.count += len(p)
	if bar.count > bar.total {
		bar.count = bar.total
	}

	if bar.count < bar.total && time.Since(bar.drawn) < bar.interval {
		return len(p), nil
	}

	bar.draw()
	return len(p), nil
}

// Finish ends the line of the progress bar.
func (bar *Bar) Finish() {
	bar.draw()
	fmt.Fprintln(bar.out)
}

// Line returns the progress bar as it would be drawn. The line doesn't
// include the leading carriage return.
func (bar *Bar) Line() string {
	pct := 100
	if bar.total > 0 {
		pct = bar.count * 100 / bar.total
	}

	info := fmt.Sprintf(" %3d%%", pct)
	if bar.status != nil {
		info = fmt.Sprintf("%s %s", info, bar.status.Status())
	}

	prefix := fmt.Sprintf("%s [", bar.label)
	suffix := fmt.Sprintf("]%s", info)

	// one column is left free so that the cursor doesn't wrap
	cols := bar.width - len(prefix) - len(suffix) - 1
	if cols < 1 {
		return strings.TrimSpace(fmt.Sprintf("%s%s", bar.label, info))
	}

	fill := cols
	if bar.total > 0 {
		fill = cols * bar.count / bar.total
	}

	return fmt.Sprintf("%s%s%s%s", prefix, strings.Repeat("=", fill), strings.Repeat(" ", cols-fill), suffix)
}

func (bar *Bar) draw() {
	bar.drawn = time.Now()

	l := bar.Line()
	if l == bar.last {
		return
	}
	bar.last = l

	fmt.Fprintf(bar.out, "\r%s", l)
}
