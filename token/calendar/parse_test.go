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

import "testing"

type mnemonicZones map[string]int

func (m mnemonicZones) ParseZone(b []byte) (int, bool) {
	off, ok := m[string(b)]
	return off, ok
}

func TestParseBasic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2023-01-15", "2023-01-15T00:00:00"},
		{"2023-01-15T10:30:00", "2023-01-15T10:30:00"},
		{"2023-01-15T10:30:00Z", "2023-01-15T10:30:00"},
		{"2023-01-15 10:30:00", "2023-01-15T10:30:00"},
		{"2023-01-15T10:30:00.500Z", "2023-01-15T10:30:00.500"},
		{"2023-01-15T10:30:00+02:00", "2023-01-15T08:30:00"},
		{"2023-01-15T10:30:00-0500", "2023-01-15T15:30:00"},
	}
	for _, c := range cases {
		got, ok := Parse([]byte(c.in), nil)
		if !ok {
			t.Errorf("Parse(%q) failed", c.in)
			continue
		}
		want, ok := Parse([]byte(c.want), nil)
		if !ok {
			t.Fatalf("bad test case %q", c.want)
		}
		if !got.Equal(want) {
			t.Errorf("Parse(%q) = %v, want %v", c.in, got, want)
		}
	}
}

func TestParseFraction(t *testing.T) {
	got, ok := Parse([]byte("2023-01-15T10:30:00.5"), nil)
	if !ok {
		t.Fatal("parse failed")
	}
	if got.Nanosecond() != 500000000 {
		t.Errorf("Nanosecond() = %d, want 500000000", got.Nanosecond())
	}
}

func TestParseMnemonicZone(t *testing.T) {
	zones := mnemonicZones{"PST": -8 * 3600}
	got, ok := Parse([]byte("2023-01-15T10:30:00 PST"), zones)
	if !ok {
		t.Fatal("parse failed")
	}
	want, _ := Parse([]byte("2023-01-15T18:30:00Z"), nil)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, ok := Parse([]byte("2023-01-15T10:30:00 PST"), nil); ok {
		t.Error("expected failure without a ZoneParser")
	}
}

func TestParseRejectsInvalidDates(t *testing.T) {
	bad := []string{
		"2023-02-30",          // Feb 30 doesn't exist
		"2023-13-01",          // month 13
		"2023-01-15T25:00:00", // hour 25
		"2023-01-15T10:60:00", // minute 60
		"not-a-date",
		"2023-01-15T10:30:00+99:00",
		"",
	}
	for _, b := range bad {
		if _, ok := Parse([]byte(b), nil); ok {
			t.Errorf("Parse(%q) unexpectedly succeeded", b)
		}
	}
}

func TestLeapYear(t *testing.T) {
	if !ValidCalendarDay(2024, 2, 29) {
		t.Error("2024-02-29 should be valid (leap year)")
	}
	if ValidCalendarDay(2023, 2, 29) {
		t.Error("2023-02-29 should be invalid (not a leap year)")
	}
}
