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

// NewStringParser builds the STRING parser. STRING never fails to
// tokenize — any cell that is not a null literal is accepted verbatim —
// so it is the universal fallback at the end of the non-numeric sequence
// (spec §4.7 step 5).
func NewStringParser(sink Sink[string], nullLiterals [][]byte, sentinel string, hasSentinel bool) *Parser[string] {
	return &Parser[string]{
		Type:         String,
		Sink:         sink,
		Tokenize:     func(s cellbuf.Slice) (string, bool) { return s.String(), true },
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}
