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

package store

// Writer is the single producer side of a Stream (spec §4.4). Not safe for
// concurrent use by more than one goroutine; a column has exactly one
// Writer.
type Writer struct {
	stream *Stream

	packedCap int
	largeCap  int

	packed    []byte // current packed page under construction
	large     [][]byte
	finished  bool
}

// NewWriter creates a Writer publishing pages to stream. packedPageSize
// bounds the packed page's byte capacity; largePageEntries bounds how many
// large-cell references accumulate before the page rotates.
func NewWriter(stream *Stream, packedPageSize, largePageEntries int) *Writer {
	return &Writer{
		stream:    stream,
		packedCap: packedPageSize,
		largeCap:  largePageEntries,
		packed:    make([]byte, 0, packedPageSize),
		large:     make([][]byte, 0, largePageEntries),
	}
}

// Append writes one cell's worth of bytes, choosing the packed or large
// page depending on LargeThreshold, and rotates the active page when either
// underlying buffer runs out of room. It blocks on the Stream's
// backpressure semaphore whenever a rotation is triggered and returns
// ErrCanceled if the stream is canceled while blocked.
func (w *Writer) Append(cell []byte) error {
	if w.finished {
		return errWriterFinished
	}
	needed := controlWordSize + len(cell)
	if len(cell) >= LargeThreshold {
		if len(w.large) >= w.largeCap {
			if err := w.rotate(); err != nil {
				return err
			}
		}
		w.large = append(w.large, cell)
		w.packed = putSentinelAppend(w.packed, largeSentinel)
		return nil
	}
	if len(w.packed)+needed > w.packedCap && len(w.packed) > 0 {
		if err := w.rotate(); err != nil {
			return err
		}
	}
	w.packed = putLengthPrefixed(w.packed, cell)
	return nil
}

// Finish appends the END sentinel and publishes any buffered cells as the
// stream's terminal node.
func (w *Writer) Finish() error {
	if w.finished {
		return nil
	}
	w.packed = putSentinelAppend(w.packed, endSentinel)
	w.finished = true
	if err := w.publishCurrent(); err != nil {
		return err
	}
	w.stream.markFinished()
	return nil
}

// rotate publishes the currently buffered packed and large pages as one
// QueueNode (spec §4.4: "a rotation bundles both pages' progress together")
// and starts fresh buffers.
func (w *Writer) rotate() error {
	if err := w.publishCurrent(); err != nil {
		return err
	}
	w.packed = make([]byte, 0, w.packedCap)
	w.large = make([][]byte, 0, w.largeCap)
	return nil
}

func (w *Writer) publishCurrent() error {
	if len(w.packed) == 0 && len(w.large) == 0 {
		return nil
	}
	if err := w.stream.acquire(); err != nil {
		return err
	}
	node := &queueNode{packed: w.packed, large: w.large}
	w.stream.publish(node)
	return nil
}

var errWriterFinished = errWriter("store: Append called after Finish")

type errWriter string

func (e errWriter) Error() string { return string(e) }

func putSentinelAppend(b []byte, v int32) []byte {
	off := len(b)
	b = append(b, make([]byte, controlWordSize)...)
	putControlWord(b[off:], v)
	return b
}

func putLengthPrefixed(b []byte, cell []byte) []byte {
	off := len(b)
	b = append(b, make([]byte, controlWordSize)...)
	putControlWord(b[off:], int32(len(cell)))
	b = append(b, cell...)
	return b
}
