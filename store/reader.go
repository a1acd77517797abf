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

// Reader is one independent consumer cursor over a Stream (spec §4.4).
// Multiple Readers may walk the same Stream concurrently; each holds its
// own position and never mutates shared queueNode state except the
// first-observer bookkeeping used for backpressure release.
type Reader struct {
	stream *Stream
	node   *queueNode
	off    int // byte offset into node.packed
	nlarge int // next unread index into node.large
	eof    bool
}

// NewReader returns a Reader positioned at the start of stream.
func NewReader(stream *Stream) *Reader {
	return &Reader{stream: stream, node: stream.root}
}

// Cell is one value read back from a Stream: either inline bytes (Large ==
// false) or a large-cell reference (Large == true).
type Cell struct {
	Data  []byte
	Large bool
}

// Next returns the next cell in the stream, blocking if the writer has not
// yet published it. ok is false at end of stream; err is non-nil only if
// the stream was canceled.
func (r *Reader) Next() (cell Cell, ok bool, err error) {
	if r.eof {
		return Cell{}, false, nil
	}
	for {
		if r.off < len(r.node.packed) {
			ctrl := getControlWord(r.node.packed[r.off : r.off+controlWordSize])
			r.off += controlWordSize
			switch {
			case ctrl == endSentinel:
				r.eof = true
				return Cell{}, false, nil
			case ctrl == largeSentinel:
				data := r.node.large[r.nlarge]
				r.nlarge++
				return Cell{Data: data, Large: true}, true, nil
			default:
				n := int(ctrl)
				data := r.node.packed[r.off : r.off+n]
				r.off += n
				return Cell{Data: data}, true, nil
			}
		}
		next, first, werr := r.stream.waitNext(r.node)
		if werr != nil {
			return Cell{}, false, werr
		}
		if next == nil {
			r.eof = true
			return Cell{}, false, nil
		}
		if first {
			r.stream.release()
		}
		r.node = next
		r.off = 0
		r.nlarge = 0
	}
}

// release returns one backpressure permit to the stream, per spec §4.4's
// rule that only the first reader to cross a given node boundary does so.
func (s *Stream) release() {
	if !s.concurrent {
		return
	}
	select {
	case s.permits <- struct{}{}:
		s.cond.Broadcast() // wake any writer blocked in acquire's slow path
	default:
		// Permits channel is already full; the writer never acquired past
		// capacity, so this should not happen, but don't block a reader on
		// a logic bug elsewhere.
	}
}
