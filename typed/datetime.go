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

import (
	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token"
	"github.com/latticeflow/csvcore/token/calendar"
)

// NewDatetimeParser builds the DATETIME_AS_LONG parser, resolving ISO-8601
// text to nanoseconds since the Unix epoch (spec §4.5, §4.6.1). zp may be
// nil if no custom time-zone mnemonic parser is configured.
func NewDatetimeParser(sink Sink[int64], zp calendar.ZoneParser, nullLiterals [][]byte, sentinel int64, hasSentinel bool) *Parser[int64] {
	return &Parser[int64]{
		Type:         DatetimeAsLong,
		Sink:         sink,
		Tokenize:     func(s cellbuf.Slice) (int64, bool) { return token.TryParseDateTime(s, zp) },
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}
