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

package token

import (
	"math"
	"strconv"

	"github.com/latticeflow/csvcore/cellbuf"
)

// DoubleParser is the pluggable double-parsing dependency spec §4.5 and §9
// call for ("a pluggable double parser is selected via caller-supplied
// dependency injection, not process-global lookup"). StdDoubleParser is the
// default, backed by strconv.
type DoubleParser interface {
	ParseFloat(s []byte) (float64, bool)
}

// StdDoubleParser implements DoubleParser on top of strconv.ParseFloat,
// converting the byte slice to a string without copying.
type StdDoubleParser struct{}

// ParseFloat implements DoubleParser.
func (StdDoubleParser) ParseFloat(s []byte) (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(unsafeString(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// TryParseDouble recognizes a double using dp. Infinities and NaN spellings
// accepted by dp are passed through as-is.
func TryParseDouble(s cellbuf.Slice, dp DoubleParser) (float64, bool) {
	return dp.ParseFloat(s.Data())
}

// TryParseFloat recognizes a value that round-trips through float64 (via dp)
// into a finite float32; non-finite results after narrowing fail, per spec
// §4.5 ("floats are derived by round-trip through double but must be
// finite"). This is the "strict" float recognizer in the numeric ladder's
// {..., float_fast, float_strict, double} precedence (spec §4.7 step 4).
func TryParseFloat(s cellbuf.Slice, dp DoubleParser) (float32, bool) {
	d, ok := dp.ParseFloat(s.Data())
	if !ok {
		return 0, false
	}
	f := float32(d)
	if math.IsInf(float64(f), 0) || math.IsNaN(float64(f)) {
		return 0, false
	}
	return f, true
}

// TryParseFloatFast recognizes a float32 directly via strconv, without the
// float64 round trip TryParseFloat performs. It is the "fast" rung of the
// numeric ladder: cheaper, and tried before the strict rung so a column of
// plainly float32-shaped text never pays for a double-width parse.
func TryParseFloatFast(s cellbuf.Slice) (float32, bool) {
	b := s.Data()
	if len(b) == 0 {
		return 0, false
	}
	v, err := strconv.ParseFloat(unsafeString(b), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}
