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

import "github.com/latticeflow/csvcore/cellbuf"

// DefaultNullLiterals is spec §6.2's default null_value_literals: the
// empty string only.
var DefaultNullLiterals = [][]byte{{}}

// isNullLiteral reports whether cell is byte-exact equal to any of
// literals, the per-cell null check spec §4.6 step 1 describes.
func isNullLiteral(cell cellbuf.Slice, literals [][]byte) bool {
	for _, lit := range literals {
		if cell.EqualBytes(lit) {
			return true
		}
	}
	return false
}
