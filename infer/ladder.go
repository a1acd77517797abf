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

// Package infer drives spec §4.7's per-column type inference on top of the
// typed.Parser/Sink/Source protocol: it walks a column's configured parser
// universe in precedence order, choosing and filling the Sink of whichever
// parser consumes the entire column.
package infer

import (
	"errors"
	"fmt"

	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/typed"
)

// unbounded stands in for destEnd in ladder walks: the engine does not
// know a column's row count up front, so each rung runs until it either
// fails on a cell or the iterator (not a destination bound) runs dry.
const unbounded = 1 << 62

// errNoParserConsumed indicates every rung in a sequence stopped before
// reaching the end of the column. STRING is the guaranteed terminal rung
// of the non-numeric sequence, so in practice this only surfaces when a
// caller-restricted universe omits it. It is kept as a plain sentinel so
// callers can still errors.Is against it; LadderError.Unwrap exposes it.
var errNoParserConsumed = errors.New("infer: no parser in the sequence consumed the column to its end")

// LadderError reports that a parser stopped before consuming a column (or
// the portion of it it was asked to cover), carrying the context spec §7
// requires for a deep-chunk parse failure: the parser's canonical type
// name, how many cells it successfully processed, and the cell it stopped
// on (falling back to the column's first non-null cell when the exact
// stopping cell was not retained).
type LadderError struct {
	DataType typed.DataType
	Consumed int
	Cell     string
	HasCell  bool
}

func (e *LadderError) Error() string {
	if e.HasCell {
		return fmt.Sprintf("infer: %s parser stopped after %d cells at cell %q", e.DataType, e.Consumed, e.Cell)
	}
	return fmt.Sprintf("infer: %s parser stopped after %d cells", e.DataType, e.Consumed)
}

func (e *LadderError) Unwrap() error { return errNoParserConsumed }

// ladderRung is one parser considered at a given position in either the
// numeric or non-numeric precedence sequence (spec §4.7 steps 4-5).
type ladderRung struct {
	dtype    typed.DataType
	tryParse func(it typed.CellIterator, destBegin, destEnd int, appending bool) (destConsumed int, exhausted bool, err error)

	// sink identifies the concrete Sink object this rung writes to. It is
	// only populated for CUSTOM rungs (typed.Custom is one shared DataType
	// value across every registered custom parser, so dtype alone cannot
	// tell two custom rungs' Sinks apart); built-in rungs are looked up by
	// their own unique DataType instead and leave this nil.
	sink any

	// widen is set only for numeric rungs whose Sink also implements
	// Source (spec §4.6's "Source contract"); fillFloat is set for every
	// numeric rung. Together they
	// let the engine copy an earlier rung's already-typed values into the
	// final Sink through a float64 pivot instead of re-tokenizing (spec
	// §4.7 step 4's "Unification"). Every built-in numeric type widens
	// exactly through float64 without losing precision beyond what a
	// direct conversion to the chosen type would already lose, since
	// float64 represents every byte/short/int/long value exactly up to
	// the point double-precision itself becomes the target.
	widen     func(begin, end int) (values []float64, nulls []bool)
	fillFloat func(begin, end int, values []float64, nulls []bool, appending bool) error
}

func (r ladderRung) hasSource() bool { return r.widen != nil }

// reuseIterator lets walkLadder feed what the algorithm treats as a single
// shared cursor to successive rungs, while replaying the one cell a rung
// stopped on so the next rung starts at that exact cell rather than the
// one after it (spec §4.7 step 4/5: "start each successive parser at the
// position where the previous one failed"). A Parser.TryParse call that
// stops on an unparseable cell has already consumed that cell from the
// underlying iterator with no way to hand it back itself; reuseIterator
// is what lets the ladder replay it for the next rung.
type reuseIterator struct {
	inner typed.CellIterator

	pending    cellbuf.Slice
	hasPending bool

	lastCell cellbuf.Slice
	hasLast  bool
}

func newReuseIterator(inner typed.CellIterator) *reuseIterator {
	return &reuseIterator{inner: inner}
}

func (r *reuseIterator) Next() (cellbuf.Slice, bool, error) {
	if r.hasPending {
		r.hasPending = false
		r.lastCell = r.pending
		r.hasLast = true
		return r.pending, true, nil
	}
	cell, ok, err := r.inner.Next()
	r.hasLast = ok
	if ok {
		r.lastCell = cell
	}
	return cell, ok, err
}

// unreadLast re-queues the most recently yielded cell so the next Next()
// call returns it again. It is a no-op if the last Next() call yielded no
// cell (iterator exhaustion).
func (r *reuseIterator) unreadLast() {
	if r.hasLast {
		r.pending = r.lastCell
		r.hasPending = true
		r.hasLast = false
	}
}

// peekPending returns the cell queued by unreadLast without consuming it,
// for error paths that want to report the cell a rung stopped on.
func (r *reuseIterator) peekPending() (cellbuf.Slice, bool) {
	if r.hasPending {
		return r.pending, true
	}
	return cellbuf.Slice{}, false
}

// walkLadder drives rungs in precedence order over it, each one picking
// up where the previous stopped (spec §4.7 step 4's "first-leg" chaining,
// reused by step 5's non-numeric sequence). It returns the index of the
// first rung whose tryParse reports iterator exhaustion -- the chosen
// parser -- along with the [begin, end) range every attempted rung
// produced.
func walkLadder(rungs []ladderRung, it typed.CellIterator) (chosen int, begins, ends []int, err error) {
	ri := newReuseIterator(it)
	begins = make([]int, len(rungs))
	ends = make([]int, len(rungs))
	begin := 0
	for i, r := range rungs {
		begins[i] = begin
		consumed, exhausted, e := r.tryParse(ri, begin, unbounded, begin == 0)
		if e != nil {
			return -1, begins, ends, e
		}
		ends[i] = consumed
		begin = consumed
		if exhausted {
			return i, begins, ends, nil
		}
		ri.unreadLast()
	}
	last := len(rungs) - 1
	cell, hasCell := ri.peekPending()
	return -1, begins, ends, &LadderError{
		DataType: rungs[last].dtype,
		Consumed: ends[last],
		Cell:     cell.String(),
		HasCell:  hasCell,
	}
}
