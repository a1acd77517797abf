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

// NewByteParser builds the BYTE (int8) parser.
func NewByteParser(sink Sink[int8], nullLiterals [][]byte, sentinel int8, hasSentinel bool) *Parser[int8] {
	return &Parser[int8]{Type: Byte, Sink: sink, Tokenize: token.TryParseByte, NullLiterals: nullLiterals, Sentinel: sentinel, HasSentinel: hasSentinel}
}

// NewShortParser builds the SHORT (int16) parser.
func NewShortParser(sink Sink[int16], nullLiterals [][]byte, sentinel int16, hasSentinel bool) *Parser[int16] {
	return &Parser[int16]{Type: Short, Sink: sink, Tokenize: token.TryParseShort, NullLiterals: nullLiterals, Sentinel: sentinel, HasSentinel: hasSentinel}
}

// NewIntParser builds the INT (int32) parser.
func NewIntParser(sink Sink[int32], nullLiterals [][]byte, sentinel int32, hasSentinel bool) *Parser[int32] {
	return &Parser[int32]{Type: Int, Sink: sink, Tokenize: token.TryParseInt, NullLiterals: nullLiterals, Sentinel: sentinel, HasSentinel: hasSentinel}
}

// NewLongParser builds the LONG (int64) parser.
func NewLongParser(sink Sink[int64], nullLiterals [][]byte, sentinel int64, hasSentinel bool) *Parser[int64] {
	return &Parser[int64]{Type: Long, Sink: sink, Tokenize: token.TryParseLong, NullLiterals: nullLiterals, Sentinel: sentinel, HasSentinel: hasSentinel}
}
