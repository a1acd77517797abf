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

// NewBooleanParser builds the BOOLEAN_AS_BYTE parser (spec §4.6.1). The
// logical type is stored as a Go bool; callers that need the literal byte
// encoding translate at the Sink boundary.
func NewBooleanParser(sink Sink[bool], nullLiterals [][]byte, sentinel bool, hasSentinel bool) *Parser[bool] {
	return &Parser[bool]{
		Type:         BooleanAsByte,
		Sink:         sink,
		Tokenize:     token.TryParseBool,
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}
