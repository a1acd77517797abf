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

// Package cellbuf implements the zero-copy byte views and owned,
// amortized-growth buffers the rest of csvcore builds on: a Slice never
// copies bytes out of its backing page, and a Buffer is only used when a
// cell's bytes cannot be returned as a contiguous view into that page.
package cellbuf

// Slice is a non-owning view {owner, begin, end} over a byte slice. It never
// copies; callers must not retain a Slice past the lifetime of its backing
// array (for store.Stream pages, that means not past the point every reader
// has advanced beyond the page).
type Slice struct {
	owner []byte
	begin int
	end   int
}

// Of returns a Slice over data[begin:end]. Panics if the bounds are invalid,
// the same way a bad slice expression would.
func Of(data []byte, begin, end int) Slice {
	_ = data[begin:end]
	return Slice{owner: data, begin: begin, end: end}
}

// Reset repoints s at data[begin:end].
func (s *Slice) Reset(data []byte, begin, end int) {
	_ = data[begin:end]
	s.owner, s.begin, s.end = data, begin, end
}

// Size returns the number of bytes in the view.
func (s Slice) Size() int { return s.end - s.begin }

// Data returns the bytes of the view. The returned slice aliases the
// backing array; callers must not mutate it.
func (s Slice) Data() []byte { return s.owner[s.begin:s.end] }

// Empty reports whether the view has zero length.
func (s Slice) Empty() bool { return s.begin == s.end }

// CopyTo copies the view's bytes into dst starting at offset, growing dst if
// necessary, and returns the (possibly reallocated) slice.
func (s Slice) CopyTo(dst []byte, offset int) []byte {
	need := offset + s.Size()
	if cap(dst) < need {
		grown := make([]byte, need)
		copy(grown, dst[:offset])
		dst = grown
	} else {
		dst = dst[:need]
	}
	copy(dst[offset:], s.Data())
	return dst
}

// Equal reports whether the two views hold byte-identical content.
func (s Slice) Equal(other Slice) bool {
	a, b := s.Data(), other.Data()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// EqualBytes reports whether the view's content equals b byte-for-byte.
func (s Slice) EqualBytes(b []byte) bool {
	a := s.Data()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// String returns the view's content as a string (allocates a copy).
func (s Slice) String() string { return string(s.Data()) }

// TrimSpacesAndTabs trims leading and trailing ' '/'\t' bytes in place and
// returns the trimmed view. It never allocates.
func (s Slice) TrimSpacesAndTabs() Slice {
	begin, end := s.begin, s.end
	for begin < end && isSpaceOrTab(s.owner[begin]) {
		begin++
	}
	for end > begin && isSpaceOrTab(s.owner[end-1]) {
		end--
	}
	return Slice{owner: s.owner, begin: begin, end: end}
}

func isSpaceOrTab(b byte) bool { return b == ' ' || b == '\t' }
