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

// DefaultChunkSize is the recommended Chunk capacity of spec §3 (≈256k
// elements); Context batches writes to the Sink at this granularity.
const DefaultChunkSize = 256 * 1024

// Context is the fixed-capacity scratch buffer a Parser accumulates
// values into before flushing a batch to its Sink (spec §4.6:
// "makeContext(global, chunkSize) -> Context").
type Context[T any] struct {
	values []T
	nulls  []bool
	n      int
}

// MakeContext allocates a Context with the given chunk capacity.
func MakeContext[T any](chunkSize int) *Context[T] {
	return &Context[T]{values: make([]T, chunkSize), nulls: make([]bool, chunkSize)}
}

func (c *Context[T]) full() bool { return c.n == len(c.values) }

func (c *Context[T]) push(v T, null bool) {
	c.values[c.n] = v
	c.nulls[c.n] = null
	c.n++
}

func (c *Context[T]) reset() { c.n = 0 }

// Tokenize attempts to recognize a cell's bytes as T.
type Tokenize[T any] func(cellbuf.Slice) (T, bool)

// Parser implements the Parser/Sink protocol of spec §4.6 for a single
// comparable logical type T. T must be comparable so a configured null
// sentinel can be checked by value equality.
type Parser[T comparable] struct {
	Type         DataType
	Sink         Sink[T]
	Tokenize     Tokenize[T]
	NullLiterals [][]byte
	Sentinel     T
	HasSentinel  bool
	ChunkSize    int
}

// TryParse reads cells from it, writing recognized values to p.Sink over
// [destBegin, destEnd), stopping at the first cell it cannot interpret,
// at destEnd, or at iterator exhaustion (spec §4.6). destConsumed is the
// exclusive upper bound of values actually written. exhausted reports
// that the stop was caused by the iterator running dry rather than by
// destEnd or an unparseable cell; the inference engine (spec §4.7) uses
// this to distinguish "ran out of column" from "ladder must widen."
func (p *Parser[T]) TryParse(it CellIterator, destBegin, destEnd int, appending bool) (destConsumed int, exhausted bool, err error) {
	chunkSize := p.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	ctx := MakeContext[T](min(chunkSize, destEnd-destBegin))
	pos := destBegin
	batchStart := destBegin
	flush := func() error {
		if ctx.n == 0 {
			return nil
		}
		if err := p.Sink.WriteRange(batchStart, batchStart+ctx.n, ctx.values[:ctx.n], ctx.nulls[:ctx.n], appending); err != nil {
			return err
		}
		batchStart += ctx.n
		ctx.reset()
		return nil
	}
	for pos < destEnd {
		cell, ok, iterErr := it.Next()
		if iterErr != nil {
			flush()
			return pos, false, iterErr
		}
		if !ok {
			exhausted = true
			break
		}
		if isNullLiteral(cell, p.NullLiterals) {
			ctx.push(p.Sentinel, true)
			pos++
		} else {
			v, tok := p.Tokenize(cell)
			if !tok {
				break
			}
			if p.HasSentinel && v == p.Sentinel {
				break
			}
			ctx.push(v, false)
			pos++
		}
		if ctx.full() {
			if err := flush(); err != nil {
				return pos, false, err
			}
		}
	}
	if err := flush(); err != nil {
		return pos, false, err
	}
	return pos, exhausted, nil
}
