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

package typed

import "github.com/latticeflow/csvcore/cellbuf"

// Sink receives typed values written by a Parser (spec §3, §4.6). A Sink
// must tolerate writes that arrive out of order (the inference engine
// fills a prefix after choosing a wider type) and both appending writes
// (begin equals the sink's current length) and overwrites of a
// previously null-padded range.
type Sink[T any] interface {
	// WriteRange writes values[i-begin] (and its null flag) to position i
	// for each i in [begin, end). len(values) and len(nulls) must equal
	// end-begin.
	WriteRange(begin, end int, values []T, nulls []bool, appending bool) error
	// Len is the number of positions written so far.
	Len() int
}

// Source is a Sink that additionally supports read-back, letting the
// inference engine widen a narrower integral type into a wider one by
// copying already-typed values instead of re-tokenizing (spec §4.6,
// "Source contract").
type Source[T any] interface {
	Sink[T]
	// Value returns the value and null flag at position i, which must
	// already have been written.
	Value(i int) (T, bool)
}

// CellIterator yields successive cells from a column's DenseStorage
// stream (spec §4.7.1's IteratorHolder).
type CellIterator interface {
	Next() (cell cellbuf.Slice, ok bool, err error)
}
