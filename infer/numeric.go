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
	"fmt"

	"github.com/latticeflow/csvcore/typed"
)

// Number is the scalar constraint for the numeric widening ladder (spec
// §4.7 step 4): byte, short, int, long and both float rungs.
type Number interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// numericRungFrom adapts a configured numeric typed.Parser into a
// ladderRung, wiring widen/fillFloat when the parser's Sink also
// implements Source.
func numericRungFrom[T Number](p *typed.Parser[T]) ladderRung {
	r := ladderRung{dtype: p.Type, tryParse: p.TryParse}
	if src, ok := any(p.Sink).(typed.Source[T]); ok {
		r.widen = func(begin, end int) ([]float64, []bool) {
			values := make([]float64, end-begin)
			nulls := make([]bool, end-begin)
			for i := begin; i < end; i++ {
				v, null := src.Value(i)
				values[i-begin] = float64(v)
				nulls[i-begin] = null
			}
			return values, nulls
		}
	}
	r.fillFloat = func(begin, end int, values []float64, nulls []bool, appending bool) error {
		dest := make([]T, len(values))
		for i, v := range values {
			dest[i] = T(v)
		}
		return p.Sink.WriteRange(begin, end, dest, nulls, appending)
	}
	return r
}

// resolveNumeric drives the numeric ladder (rungs, in spec §4.7 step 4's
// {byte, short, int, long, float_fast, float_strict, double} precedence,
// restricted to the column's universe) to a winner, then fills it to
// cover the whole column: by Source-based unification when every earlier
// rung's Sink supports read-back, otherwise by re-running the winner
// alone over the prefix via secondary, the reserved IteratorHolder (spec
// §4.7.1). The numeric ladder never carries a CUSTOM rung, so the
// returned sink identity is always nil.
func resolveNumeric(rungs []ladderRung, primary, secondary typed.CellIterator) (typed.DataType, any, error) {
	chosen, begins, ends, err := walkLadder(rungs, primary)
	if err != nil {
		return 0, nil, err
	}
	if begins[chosen] == 0 {
		return rungs[chosen].dtype, nil, nil
	}

	allHaveSource := true
	for i := 0; i < chosen; i++ {
		if !rungs[i].hasSource() {
			allHaveSource = false
			break
		}
	}
	if allHaveSource {
		for i := 0; i < chosen; i++ {
			values, nulls := rungs[i].widen(begins[i], ends[i])
			if err := rungs[chosen].fillFloat(begins[i], ends[i], values, nulls, false); err != nil {
				return 0, nil, err
			}
		}
		return rungs[chosen].dtype, nil, nil
	}

	consumed, _, err := rungs[chosen].tryParse(secondary, 0, begins[chosen], false)
	if err != nil {
		return 0, nil, err
	}
	if consumed != begins[chosen] {
		return 0, nil, fmt.Errorf("infer: numeric reparse consumed %d cells, want %d (logic error)", consumed, begins[chosen])
	}
	return rungs[chosen].dtype, nil, nil
}
