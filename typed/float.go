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

import (
	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token"
)

// NewFloatParser builds the FLOAT (float32) parser, delegating to dp for
// the underlying double parse (spec §4.5: "floats are derived by
// round-trip through double but must be finite").
func NewFloatParser(sink Sink[float32], dp token.DoubleParser, nullLiterals [][]byte, sentinel float32, hasSentinel bool) *Parser[float32] {
	return &Parser[float32]{
		Type: Float,
		Sink: sink,
		Tokenize: func(s cellbuf.Slice) (float32, bool) {
			return token.TryParseFloat(s, dp)
		},
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}

// NewFloatFastParser builds the "fast" FLOAT rung of the numeric ladder
// (spec §4.7 step 4's "{..., float_fast, float_strict, double}"): it
// narrows directly via strconv instead of paying for a float64 round trip.
// Its DataType is still Float; float_fast and float_strict differ only in
// how eagerly they narrow, not in the logical type they produce.
func NewFloatFastParser(sink Sink[float32], nullLiterals [][]byte, sentinel float32, hasSentinel bool) *Parser[float32] {
	return &Parser[float32]{
		Type:         Float,
		Sink:         sink,
		Tokenize:     token.TryParseFloatFast,
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}

// NewDoubleParser builds the DOUBLE (float64) parser.
func NewDoubleParser(sink Sink[float64], dp token.DoubleParser, nullLiterals [][]byte, sentinel float64, hasSentinel bool) *Parser[float64] {
	return &Parser[float64]{
		Type: Double,
		Sink: sink,
		Tokenize: func(s cellbuf.Slice) (float64, bool) {
			return token.TryParseDouble(s, dp)
		},
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}
