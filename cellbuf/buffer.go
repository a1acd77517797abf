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

package cellbuf

// Buffer is an owned, amortized-growth byte buffer (a "spill buffer" in the
// grabber's terms): used when a cell straddles a backing page boundary or
// contains escape/quote expansions, so the returned Slice must be
// contiguous even though the source bytes were not.
type Buffer struct {
	data []byte
}

// Clear empties the buffer without releasing its capacity.
func (b *Buffer) Clear() { b.data = b.data[:0] }

// Size returns the number of bytes currently held.
func (b *Buffer) Size() int { return len(b.data) }

// Data returns the buffer's current content.
func (b *Buffer) Data() []byte { return b.data }

// Append appends src[off:off+n] to the buffer, growing it by doubling
// capacity when needed (amortized O(1) per byte), and returns the number of
// bytes appended.
func (b *Buffer) Append(src []byte, off, n int) int {
	need := len(b.data) + n
	if cap(b.data) < need {
		grown := make([]byte, len(b.data), growTo(cap(b.data), need))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, src[off:off+n]...)
	return n
}

// AppendByte appends a single byte to the buffer.
func (b *Buffer) AppendByte(c byte) {
	if len(b.data) == cap(b.data) {
		grown := make([]byte, len(b.data), growTo(cap(b.data), len(b.data)+1))
		copy(grown, b.data)
		b.data = grown
	}
	b.data = append(b.data, c)
}

// Slice returns a Slice view over the buffer's current content.
func (b *Buffer) Slice() Slice {
	return Slice{owner: b.data, begin: 0, end: len(b.data)}
}

func growTo(have, need int) int {
	if have == 0 {
		have = 64
	}
	for have < need {
		have *= 2
	}
	return have
}
