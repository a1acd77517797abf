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

package infer

import (
	"errors"

	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token"
	"github.com/latticeflow/csvcore/typed"
)

// ErrNoNullParser is returned for an empty or all-null column when the
// universe has no null-parser configured (spec §4.7 step 1).
var ErrNoNullParser = errors.New("infer: column is empty or all-null and no null-parser is configured")

// ErrEmptyUniverse is returned when a column has at least one non-null
// cell but the universe has no parsers at all.
var ErrEmptyUniverse = errors.New("infer: parser universe is empty")

func isNull(cell cellbuf.Slice, literals [][]byte) bool {
	for _, lit := range literals {
		if cell.EqualBytes(lit) {
			return true
		}
	}
	return false
}

// Column runs spec §4.7's per-column inference algorithm and returns the
// chosen logical type; the corresponding Sink has already been filled by
// the time this returns (or, for step 1's empty/all-null case, left
// empty). The second return value is the winning rung's Sink identity
// when (and only when) a CUSTOM rung won: every CUSTOM rung shares the
// single typed.Custom DataType, so a caller registering more than one
// custom parser on a column cannot otherwise tell which one actually won
// from the DataType alone. It is nil whenever a built-in type won, since
// those are already uniquely identified by DataType. newIterator must
// return a fresh typed.CellIterator positioned at the start of the
// column's stream every time it is called -- callers typically close
// over store.NewReader(stream), since DenseStorage supports any number
// of independent concurrent readers (spec §4.7.1: "Two IteratorHolders
// are created at column start; both point to the same DenseStorage
// stream via independent reader cursors").
func Column(u Universe, newIterator func() typed.CellIterator, nullLiterals [][]byte) (typed.DataType, any, error) {
	sniff := newIterator()
	cell, ok, err := sniff.Next()
	if err != nil {
		return 0, nil, err
	}
	for ok && isNull(cell, nullLiterals) {
		cell, ok, err = sniff.Next()
		if err != nil {
			return 0, nil, err
		}
	}
	if !ok {
		// Step 1 (empty column) and step 3's all-null fallback converge
		// here: no non-null cell was ever found.
		if !u.HasNull {
			return 0, nil, ErrNoNullParser
		}
		return u.NullType, nil, nil
	}

	if u.total() == 0 {
		return 0, nil, ErrEmptyUniverse
	}

	// Step 2: a single configured parser skips inference entirely and
	// must itself consume the whole column.
	if u.total() == 1 {
		only := u.only()
		primary := newIterator()
		ri := newReuseIterator(primary)
		consumed, exhausted, err := only.tryParse(ri, 0, unbounded, true)
		if err != nil {
			return 0, nil, err
		}
		if !exhausted {
			ri.unreadLast()
			le := &LadderError{DataType: only.dtype, Consumed: consumed}
			if stopCell, ok := ri.peekPending(); ok {
				le.Cell, le.HasCell = stopCell.String(), true
			} else {
				le.Cell, le.HasCell = cell.String(), true
			}
			return 0, nil, le
		}
		return only.dtype, only.sink, nil
	}

	// Step 4: numeric fast path, gated on the first non-null cell
	// tokenizing as a double.
	if _, isDouble := token.TryParseDouble(cell, token.StdDoubleParser{}); isDouble && len(u.Numeric) > 0 {
		primary := newIterator()
		secondary := newIterator()
		dtype, sink, err := resolveNumeric(u.Numeric, primary, secondary)
		if err == nil {
			return dtype, sink, nil
		}
		if !errors.Is(err, errNoParserConsumed) {
			return 0, nil, err
		}
		if len(u.NonNumeric) == 0 && len(u.Secondaries) == 0 {
			return 0, nil, err
		}
		// No numeric rung consumed to end-of-input; spec §4.7 step 4's
		// tail clause restarts with the non-numeric branch below.
	}

	// Step 5: non-numeric inference.
	seq := buildNonNumericSequence(u.Secondaries, u.NonNumeric, cell)
	if len(seq) == 0 {
		return 0, nil, ErrEmptyUniverse
	}
	primary := newIterator()
	secondary := newIterator()
	return resolveNonNumeric(seq, primary, secondary)
}
