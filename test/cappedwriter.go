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

package test

import (
	"fmt"
	"strings"
)

// CappedWriter is an implementation of io.Writer that keeps the start of the
// output and discards everything after a predefined size. A bus trace of a
// complete dump is megabytes long and the first few lines are usually all a
// test needs.
//
// Writes never fail. Discarded bytes are counted so that a test can tell the
// output was cut short.
type CappedWriter struct {
	buffer  []byte
	size    int
	dropped int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (c *CappedWriter) String() string {
	return string(c.buffer)
}

// Lines returns the complete lines that have been kept. A line cut by the cap
// is not included.
func (c *CappedWriter) Lines() []string {
	s := string(c.buffer)
	i := strings.LastIndexByte(s, '\n')
	if i < 0 {
		return nil
	}
	return strings.Split(s[:i], "\n")
}

// Capped returns true if any output has been discarded.
func (c *CappedWriter) Capped() bool {
	return c.dropped > 0
}

// Dropped returns the number of bytes discarded.
func (c *CappedWriter) Dropped() int {
	return c.dropped
}

// Reset empties the buffer and the dropped count.
func (c *CappedWriter) Reset() {
	c.buffer = c.buffer[:0]
	c.dropped = 0
}

// Write implements io.Writer.
func (c *CappedWriter) Write(p []byte) (int, error) {
	keep := c.size - len(c.buffer)
	if keep > len(p) {
		keep = len(p)
	}
	c.buffer = append(c.buffer, p[:keep]...)
	c.dropped += len(p) - keep
	return len(p), nil
}
