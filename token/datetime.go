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
	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token/calendar"
)

// TryParseDateTime recognizes an ISO-8601 date-time (optionally with a zone
// offset or, via zp, a zone mnemonic) and resolves it to nanoseconds since
// the Unix epoch.
func TryParseDateTime(s cellbuf.Slice, zp calendar.ZoneParser) (int64, bool) {
	t, ok := calendar.Parse(s.Data(), zp)
	if !ok {
		return 0, false
	}
	return t.UnixNano(), true
}
