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
	"unicode/utf8"

	"github.com/latticeflow/csvcore/cellbuf"
)

// TryParseChar recognizes exactly one Unicode scalar value (1-4 UTF-8
// bytes). Scalars outside the Basic Multilingual Plane (which would need a
// UTF-16 surrogate pair) fail, since char is a single 16-bit code unit.
func TryParseChar(s cellbuf.Slice) (uint16, bool) {
	b := s.Data()
	if len(b) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, false
	}
	if size != len(b) {
		return 0, false // more than one scalar
	}
	if r > 0xFFFF {
		return 0, false // would require a UTF-16 surrogate pair
	}
	return uint16(r), true
}
