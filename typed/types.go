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

// Package typed implements the Parser/Sink/Source protocol of spec §4.6
// and the logical type catalog of spec §4.6.1.
package typed

// DataType names a logical column type. Null encoding is per-type: the
// caller supplies a sentinel payload value of the matching Go type plus
// the parallel null flag (spec §4.6.1).
type DataType int

const (
	BooleanAsByte DataType = iota
	Byte
	Short
	Int
	Long
	Float
	Double
	Char
	String
	DatetimeAsLong
	TimestampAsLong
	Custom
)

func (d DataType) String() string {
	switch d {
	case BooleanAsByte:
		return "BOOLEAN_AS_BYTE"
	case Byte:
		return "BYTE"
	case Short:
		return "SHORT"
	case Int:
		return "INT"
	case Long:
		return "LONG"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case Char:
		return "CHAR"
	case String:
		return "STRING"
	case DatetimeAsLong:
		return "DATETIME_AS_LONG"
	case TimestampAsLong:
		return "TIMESTAMP_AS_LONG"
	case Custom:
		return "CUSTOM"
	default:
		return "UNKNOWN"
	}
}

// numeric reports whether d participates in the numeric-widening ladder
// of spec §4.7 step 4: {byte, short, int, long, float, double}.
func (d DataType) numeric() bool {
	switch d {
	case Byte, Short, Int, Long, Float, Double:
		return true
	default:
		return false
	}
}
