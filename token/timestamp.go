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

import "github.com/latticeflow/csvcore/cellbuf"

// Scale is the unit a TIMESTAMP_AS_LONG column's epoch values are expressed
// in, per spec §4.6.1.
type Scale int

const (
	ScaleSeconds Scale = iota
	ScaleMillis
	ScaleMicros
	ScaleNanos
)

// nanosPerUnit is the multiplier from the scale's unit to nanoseconds.
func (sc Scale) nanosPerUnit() int64 {
	switch sc {
	case ScaleSeconds:
		return 1e9
	case ScaleMillis:
		return 1e6
	case ScaleMicros:
		return 1e3
	default:
		return 1
	}
}

// TryParseTimestamp recognizes a signed decimal epoch value expressed in
// sc's unit and resolves it to nanoseconds since the Unix epoch. Overflow of
// the int64 multiplication fails the parse.
func TryParseTimestamp(s cellbuf.Slice, sc Scale) (int64, bool) {
	v, ok := TryParseLong(s)
	if !ok {
		return 0, false
	}
	mult := sc.nanosPerUnit()
	if mult == 1 {
		return v, true
	}
	r := v * mult
	if v != 0 && r/mult != v {
		return 0, false // overflow
	}
	return r, true
}
