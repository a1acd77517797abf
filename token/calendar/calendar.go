// Copyright (c) 2009 The Go Authors. All rights reserved.
// Copyright (C) 2026 csvcore authors.
//
// Redistribution and use in source and binary forms, with or without
// modification, are permitted provided that the following conditions are
// met:
//
//    * Redistributions of source code must retain the above copyright
// notice, this list of conditions and the following disclaimer.
//    * Redistributions in binary form must reproduce the above
// copyright notice, this list of conditions and the following disclaimer
// in the documentation and/or other materials provided with the
// distribution.
//    * Neither the name of Google Inc. nor the names of its
// contributors may be used to endorse or promote products derived from
// this software without specific prior written permission.
//
// THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
// "AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
// LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
// A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
// OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
// SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
// LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
// DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
// THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
// (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
// OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

// Package calendar is the ISO-8601 calendar engine behind the DATETIME and
// TIMESTAMP tokenizers. It packs a (year, month, day, hour, minute, second)
// tuple plus a nanosecond component into a single 64-bit+32-bit value, the
// same representation used by sneller's date package, so that extracting
// components and resolving to nanoseconds-since-epoch is cheap.
package calendar

import "time"

// Time represents a date and time with a nanosecond component.
//
// This representation cannot store years below 0 or above 16,383; years
// falling outside that range are truncated to fit.
type Time struct {
	ts uint64
	ns uint32
}

// Date constructs a Time from components, normalizing out-of-range values
// (e.g. month=13 rolls over into the next year) the way time.Date does.
func Date(year, month, day, hour, min, sec, ns int) Time {
	sec, ns = norm(sec, ns, 1e9)
	min, sec = norm(min, sec, 60)
	hour, min = norm(hour, min, 60)
	day, hour = norm(day, hour, 24)
	year, month, day = normdate(year, month, day)
	return date(year, month, day, hour, min, sec, ns)
}

func date(year, month, day, hour, min, sec, ns int) Time {
	if year < 0 {
		year = 0
	} else if year > (1<<14)-1 {
		year = (1 << 14) - 1
	}
	ts := (uint64(year) & 0xffff << 40) |
		(uint64(month-1) & 0xff << 32) |
		(uint64(day-1) & 0xff << 24) |
		(uint64(hour) & 0xff << 16) |
		(uint64(min) & 0xff << 8) |
		(uint64(sec) & 0xff)
	return Time{ts: ts, ns: uint32(ns)}
}

// Unix returns a Time for the given Unix time in seconds and nanoseconds.
func Unix(sec, ns int64) Time {
	return FromStd(time.Unix(sec, ns).UTC())
}

// FromStd converts a standard library time.Time (normalized to UTC) to Time.
func FromStd(t time.Time) Time {
	t = t.UTC()
	return date(t.Year(), int(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond())
}

// Year returns the year component of t.
func (t Time) Year() int { return int(t.ts & 0xffff0000000000 >> 40) }

// Month returns the month component of t, in [1,12].
func (t Time) Month() int { return int(t.ts&0xff00000000>>32) + 1 }

// Day returns the day-of-month component of t, in [1,31].
func (t Time) Day() int { return int(t.ts&0xff000000>>24) + 1 }

// Hour returns the hour component of t, in [0,23].
func (t Time) Hour() int { return int(t.ts & 0xff0000 >> 16) }

// Minute returns the minute component of t, in [0,59].
func (t Time) Minute() int { return int(t.ts & 0xff00 >> 8) }

// Second returns the second component of t, in [0,60]; 60 only occurs for
// a leap second accepted by Parse.
func (t Time) Second() int { return int(t.ts & 0xff) }

// Nanosecond returns the sub-second nanosecond component of t.
func (t Time) Nanosecond() int { return int(t.ns) }

// Std returns t as a standard library time.Time in UTC.
func (t Time) Std() time.Time {
	return time.Date(t.Year(), time.Month(t.Month()), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// UnixNano returns t as nanoseconds since the Unix epoch.
func (t Time) UnixNano() int64 { return t.Std().UnixNano() }

// Unix returns t as seconds since the Unix epoch.
func (t Time) Unix() int64 { return t.Std().Unix() }

// Equal reports whether t == t2.
func (t Time) Equal(t2 Time) bool { return t == t2 }

// IsZero reports whether t is the zero value (January 1, year 0).
func (t Time) IsZero() bool { return t == Time{} }

var monthdays = [12]int{
	31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
}

func isleap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func daysin(y, m int) int {
	d := monthdays[m-1]
	if m == 2 && isleap(y) {
		d++
	}
	return d
}

// norm normalizes lo into [0,base) by folding overflow/underflow into hi,
// lifted from the Go standard library's time.norm.
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

func normdate(y, m, d int) (year, month, day int) {
	y, m = norm(y, m-1, 12)
	m++
	md := daysin(y, m)
	if d >= 1 && d <= md {
		return y, m, d
	}
	for d < 1 {
		if m--; m < 1 {
			y, m = y-1, 12
		}
		md = daysin(y, m)
		d += md
	}
	for ; d > md; md = daysin(y, m) {
		d -= md
		if m++; m > 12 {
			y, m = y+1, 1
		}
	}
	return y, m, d
}

// ValidCalendarDay reports whether day is a valid day-of-month for the given
// year and month without any normalization/rollover -- used by Parse to
// reject e.g. 2023-02-30 rather than silently rolling it into March.
func ValidCalendarDay(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysin(year, month)
}
