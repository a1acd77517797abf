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

// TryParseBool recognizes "true"/"false", case-insensitive, ASCII only.
func TryParseBool(s cellbuf.Slice) (bool, bool) {
	b := s.Data()
	switch len(b) {
	case 4:
		if eqFold4(b, 't', 'r', 'u', 'e') {
			return true, true
		}
	case 5:
		if eqFold5(b, 'f', 'a', 'l', 's', 'e') {
			return false, true
		}
	}
	return false, false
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func eqFold4(b []byte, a0, a1, a2, a3 byte) bool {
	return lowerASCII(b[0]) == a0 && lowerASCII(b[1]) == a1 && lowerASCII(b[2]) == a2 && lowerASCII(b[3]) == a3
}

func eqFold5(b []byte, a0, a1, a2, a3, a4 byte) bool {
	return lowerASCII(b[0]) == a0 && lowerASCII(b[1]) == a1 && lowerASCII(b[2]) == a2 && lowerASCII(b[3]) == a3 && lowerASCII(b[4]) == a4
}
