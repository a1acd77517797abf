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

import "github.com/latticeflow/csvcore/token"

// NewCharParser builds the CHAR (uint16 code unit) parser.
func NewCharParser(sink Sink[uint16], nullLiterals [][]byte, sentinel uint16, hasSentinel bool) *Parser[uint16] {
	return &Parser[uint16]{Type: Char, Sink: sink, Tokenize: token.TryParseChar, NullLiterals: nullLiterals, Sentinel: sentinel, HasSentinel: hasSentinel}
}
