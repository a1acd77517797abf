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

package calendar

import "time"

// ZoneParser recognizes a short time-zone mnemonic (e.g. "PST", "CEST")
// trailing a timestamp and returns its UTC offset in seconds. It is the
// pluggable hook spec §4.5 calls for; callers that don't need mnemonic
// support pass a nil ZoneParser.
type ZoneParser interface {
	ParseZone(mnemonic []byte) (offsetSeconds int, ok bool)
}

// Parse recognizes an ISO-8601 date-time in data:
//
//	YYYY-MM-DD(T|t| )HH:MM:SS(.fraction)?(Z|z|±HH:MM|±HHMM|±HH| <mnemonic>)?
//
// and also bare dates (YYYY-MM-DD, time defaults to midnight UTC). Leading
// and trailing ASCII whitespace is ignored. On success it returns the
// resolved Time (normalized to UTC) and true.
func Parse(data []byte, zp ZoneParser) (Time, bool) {
	data = trimASCIISpace(data)
	n := len(data)
	if n < 10 {
		return Time{}, false
	}

	year, ok := digits4(data[0:4])
	if !ok || data[4] != '-' {
		return Time{}, false
	}
	month, ok := digits2(data[5:7])
	if !ok || data[7] != '-' {
		return Time{}, false
	}
	day, ok := digits2(data[8:10])
	if !ok {
		return Time{}, false
	}
	if !ValidCalendarDay(year, month, day) {
		return Time{}, false
	}

	if n == 10 {
		return date(year, month, day, 0, 0, 0, 0), true
	}

	rest := data[10:]
	if len(rest) < 9 {
		return Time{}, false
	}
	sep := rest[0]
	if sep != 'T' && sep != 't' && sep != ' ' {
		return Time{}, false
	}
	rest = rest[1:]

	hour, ok := digits2(rest[0:2])
	if !ok || rest[2] != ':' {
		return Time{}, false
	}
	min, ok := digits2(rest[3:5])
	if !ok || rest[5] != ':' {
		return Time{}, false
	}
	sec, ok := digits2(rest[6:8])
	if !ok {
		return Time{}, false
	}
	if hour > 23 || min > 59 || sec > 60 {
		return Time{}, false
	}
	rest = rest[8:]

	ns := 0
	if len(rest) > 0 && rest[0] == '.' {
		j := 1
		for j < len(rest) && isDigit(rest[j]) {
			j++
		}
		if j == 1 {
			return Time{}, false
		}
		frac := rest[1:j]
		ns = fractionToNanos(frac)
		rest = rest[j:]
	}

	offsetSec := 0
	if len(rest) > 0 {
		var consumedOffset bool
		offsetSec, consumedOffset, ok = parseZoneSuffix(rest, zp)
		if !ok {
			return Time{}, false
		}
		_ = consumedOffset
	}

	t := date(year, month, day, hour, min, sec, ns)
	if offsetSec != 0 {
		t = FromStd(t.Std().Add(-time.Duration(offsetSec) * time.Second))
	}
	return t, true
}

func parseZoneSuffix(rest []byte, zp ZoneParser) (offsetSec int, consumed bool, ok bool) {
	if rest[0] == 'Z' || rest[0] == 'z' {
		if len(trimASCIISpace(rest[1:])) != 0 {
			return 0, false, false
		}
		return 0, true, true
	}
	if rest[0] == '+' || rest[0] == '-' {
		sign := 1
		if rest[0] == '-' {
			sign = -1
		}
		rest = rest[1:]
		if len(rest) < 2 {
			return 0, false, false
		}
		hh, ok := digits2(rest[0:2])
		if !ok {
			return 0, false, false
		}
		rest = rest[2:]
		mm := 0
		if len(rest) > 0 && rest[0] == ':' {
			rest = rest[1:]
			if len(rest) < 2 {
				return 0, false, false
			}
			mm, ok = digits2(rest[0:2])
			if !ok {
				return 0, false, false
			}
			rest = rest[2:]
		} else if len(rest) >= 2 && isDigit(rest[0]) && isDigit(rest[1]) {
			mm, ok = digits2(rest[0:2])
			if !ok {
				return 0, false, false
			}
			rest = rest[2:]
		}
		if hh > 23 || mm > 59 {
			return 0, false, false
		}
		if len(trimASCIISpace(rest)) != 0 {
			return 0, false, false
		}
		return sign * (hh*3600 + mm*60), true, true
	}
	// Remaining bytes must be a zone mnemonic; ignore surrounding space.
	mnem := trimASCIISpace(rest)
	if len(mnem) == 0 {
		return 0, true, true
	}
	if zp == nil {
		return 0, false, false
	}
	off, ok := zp.ParseZone(mnem)
	if !ok {
		return 0, false, false
	}
	return off, true, true
}

func trimASCIISpace(b []byte) []byte {
	i, j := 0, len(b)
	for i < j && isASCIISpace(b[i]) {
		i++
	}
	for j > i && isASCIISpace(b[j-1]) {
		j--
	}
	return b[i:j]
}

func isASCIISpace(c byte) bool { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isDigit(c byte) bool      { return c >= '0' && c <= '9' }

func digits2(b []byte) (int, bool) {
	if len(b) < 2 || !isDigit(b[0]) || !isDigit(b[1]) {
		return 0, false
	}
	return int(b[0]-'0')*10 + int(b[1]-'0'), true
}

func digits4(b []byte) (int, bool) {
	if len(b) < 4 {
		return 0, false
	}
	v := 0
	for i := 0; i < 4; i++ {
		if !isDigit(b[i]) {
			return 0, false
		}
		v = v*10 + int(b[i]-'0')
	}
	return v, true
}

// fractionToNanos converts a fractional-seconds digit string (the part
// after '.') to nanoseconds, truncating beyond 9 digits and zero-padding
// short ones.
func fractionToNanos(frac []byte) int {
	var v int
	n := len(frac)
	if n > 9 {
		n = 9
	}
	for i := 0; i < n; i++ {
		v = v*10 + int(frac[i]-'0')
	}
	for i := n; i < 9; i++ {
		v *= 10
	}
	return v
}
