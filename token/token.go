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

// Package token implements the stateless cell recognizers spec §4.5
// describes: pure functions over a cellbuf.Slice that report whether the
// cell's bytes form a value of a given primitive type, without allocating
// on the parse path.
package token

import "unsafe"

// unsafeString views b as a string without copying. b must not be mutated
// afterwards; every caller here only applies this to a cellbuf.Slice's view
// into an immutable store page, which satisfies that constraint.
func unsafeString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}
