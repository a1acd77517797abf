// Copyright (C) 2026 csvcore authors.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package grab implements CellGrabber, spec §4.2/§4.2.1/§4.3: tokenizing a
// byte stream into cells while honoring quoting, escaping, and fixed-width
// layouts.
package grab

import (
	"errors"
	"io"
)

// BufferSize is the recommended backing-page size for a CellGrabber's
// internal byte source (spec §4.2).
const BufferSize = 64 * 1024

// byteSource buffers reads from an io.Reader, growing and shifting its
// backing array on demand. Shaped after jsonrl's reader in the deleted
// jsonrl package: shift-then-grow-then-read, sized here for cell framing
// rather than whole-object JSON buffering.
type byteSource struct {
	r       io.Reader
	buf     []byte
	rpos    int
	flushed int
	atEOF   bool
	err     error
}

func newByteSource(r io.Reader) *byteSource {
	return &byteSource{r: r, buf: make([]byte, 0, BufferSize)}
}

// avail is the currently buffered, unread portion of buf.
func (b *byteSource) avail() []byte { return b.buf[b.rpos:] }

func (b *byteSource) advance(n int) { b.rpos += n }

// ensure makes at least n bytes available in avail, refilling and growing
// the backing array as needed. It returns false only once it is certain
// fewer than n bytes will ever be available (stream exhausted or a read
// error, retrievable via err).
func (b *byteSource) ensure(n int) bool {
	for len(b.avail()) < n {
		if b.atEOF {
			return false
		}
		if !b.fill() {
			return false
		}
	}
	return true
}

func (b *byteSource) fill() bool {
	b.shift()
	if b.err != nil {
		return false
	}
	if len(b.buf) == cap(b.buf) {
		next := make([]byte, len(b.buf), 2*cap(b.buf))
		copy(next, b.buf)
		b.buf = next
	}
	tail := b.buf[len(b.buf):cap(b.buf)]
	n, err := b.r.Read(tail)
	b.buf = b.buf[:len(b.buf)+n]
	if err != nil {
		if errors.Is(err, io.EOF) {
			b.atEOF = true
		} else {
			b.err = err
			return false
		}
	}
	return n > 0 || b.atEOF
}

// shift compacts unread bytes to the front of buf, invalidating any raw
// slice a caller has taken directly into buf. Callers that need a value to
// survive a shift must copy it into a spill buffer first.
func (b *byteSource) shift() {
	b.flushed += b.rpos
	if b.rpos == len(b.buf) {
		b.buf = b.buf[:0]
	} else if b.rpos > 0 {
		b.buf = b.buf[:copy(b.buf, b.avail())]
	}
	b.rpos = 0
}
