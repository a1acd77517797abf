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

	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token"
	"github.com/latticeflow/csvcore/token/calendar"
	"github.com/latticeflow/csvcore/typed"
)

// secondaryCandidate is one of the type-sniffed rungs spec §4.7 step 5
// may insert ahead of CHAR: timestamp, boolean or datetime, offered only
// when the first non-null cell itself tokenizes as that type.
type secondaryCandidate struct {
	rung  ladderRung
	sniff func(cellbuf.Slice) bool
}

func secondaryTimestamp(p *typed.Parser[int64]) secondaryCandidate {
	return secondaryCandidate{
		rung:  ladderRung{dtype: p.Type, tryParse: p.TryParse},
		sniff: func(s cellbuf.Slice) bool { _, ok := token.TryParseLong(s); return ok },
	}
}

func secondaryBoolean(p *typed.Parser[bool]) secondaryCandidate {
	return secondaryCandidate{
		rung:  ladderRung{dtype: p.Type, tryParse: p.TryParse},
		sniff: func(s cellbuf.Slice) bool { _, ok := token.TryParseBool(s); return ok },
	}
}

func secondaryDatetime(p *typed.Parser[int64], zp calendar.ZoneParser) secondaryCandidate {
	return secondaryCandidate{
		rung:  ladderRung{dtype: p.Type, tryParse: p.TryParse},
		sniff: func(s cellbuf.Slice) bool { _, ok := token.TryParseDateTime(s, zp); return ok },
	}
}

// nonNumericRungFrom adapts a non-numeric, non-secondary parser (CHAR, a
// CUSTOM parser, or STRING) into a ladderRung; these never widen into one
// another, so no Source/float pivot machinery applies.
func nonNumericRungFrom(dtype typed.DataType, tryParse func(it typed.CellIterator, destBegin, destEnd int, appending bool) (int, bool, error)) ladderRung {
	return ladderRung{dtype: dtype, tryParse: tryParse}
}

// buildNonNumericSequence assembles spec §4.7 step 5's sequence: at most
// one secondary candidate whose sniff matches firstNonNull, then the
// configured CHAR/CUSTOM/STRING rungs in that order.
func buildNonNumericSequence(secondaries []secondaryCandidate, rest []ladderRung, firstNonNull cellbuf.Slice) []ladderRung {
	seq := make([]ladderRung, 0, len(rest)+1)
	for _, c := range secondaries {
		if c.sniff(firstNonNull) {
			seq = append(seq, c.rung)
			break
		}
	}
	return append(seq, rest...)
}

// resolveNonNumeric drives rungs to a winner, then backfills the prefix
// by re-running the winner alone via secondary if it started mid-stream
// (spec §4.7.2's two-phase reparse for non-numeric parsers). The winning
// rung's sink identity is returned alongside its DataType so a caller can
// disambiguate a winning CUSTOM rung from any other custom rung sharing
// the same typed.Custom DataType.
func resolveNonNumeric(rungs []ladderRung, primary, secondary typed.CellIterator) (typed.DataType, any, error) {
	chosen, begins, _, err := walkLadder(rungs, primary)
	if err != nil {
		return 0, nil, err
	}
	if begins[chosen] == 0 {
		return rungs[chosen].dtype, rungs[chosen].sink, nil
	}
	consumed, _, err := rungs[chosen].tryParse(secondary, 0, begins[chosen], false)
	if err != nil {
		return 0, nil, err
	}
	if consumed != begins[chosen] {
		return 0, nil, fmt.Errorf("infer: non-numeric reparse consumed %d cells, want %d (logic error)", consumed, begins[chosen])
	}
	return rungs[chosen].dtype, rungs[chosen].sink, nil
}
