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

// TryParseLong recognizes a signed decimal integer with an optional leading
// '+'/'-', failing on overflow of int64 or on any non-digit byte.
func TryParseLong(s cellbuf.Slice) (int64, bool) {
	return parseSigned(s.Data(), 64)
}

// TryParseInt is TryParseLong narrowed to int32's range.
func TryParseInt(s cellbuf.Slice) (int32, bool) {
	v, ok := parseSigned(s.Data(), 32)
	if !ok {
		return 0, false
	}
	return int32(v), true
}

// TryParseShort is TryParseLong narrowed to int16's range.
func TryParseShort(s cellbuf.Slice) (int16, bool) {
	v, ok := parseSigned(s.Data(), 16)
	if !ok {
		return 0, false
	}
	return int16(v), true
}

// TryParseByte is TryParseLong narrowed to int8's range.
func TryParseByte(s cellbuf.Slice) (int8, bool) {
	v, ok := parseSigned(s.Data(), 8)
	if !ok {
		return 0, false
	}
	return int8(v), true
}

// parseSigned parses b as a base-10 signed integer that fits in bitSize
// bits, never allocating. An empty cell, a bare sign, or a non-digit byte
// fails; overflow of the requested width fails.
func parseSigned(b []byte, bitSize int) (int64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	neg := false
	i := 0
	switch b[0] {
	case '-':
		neg = true
		i++
	case '+':
		i++
	}
	if i == len(b) {
		return 0, false
	}

	var maxVal uint64 = 1<<uint(bitSize-1) - 1 // positive bound
	var minMagnitude uint64 = maxVal + 1       // magnitude bound when negative

	var acc uint64
	for ; i < len(b); i++ {
		c := b[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		d := uint64(c - '0')
		if acc > (^uint64(0)-d)/10 {
			return 0, false // unsigned overflow
		}
		acc = acc*10 + d
		bound := maxVal
		if neg {
			bound = minMagnitude
		}
		if acc > bound {
			return 0, false
		}
	}

	if neg {
		return -int64(acc), true
	}
	return int64(acc), true
}
