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
	"testing"

	"github.com/latticeflow/csvcore/cellbuf"
)

func slice(s string) cellbuf.Slice {
	b := []byte(s)
	return cellbuf.Of(b, 0, len(b))
}

func TestTryParseBool(t *testing.T) {
	cases := []struct {
		in      string
		want    bool
		wantOK  bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"True", true, true},
		{"false", false, true},
		{"FALSE", false, true},
		{"yes", false, false},
		{"", false, false},
		{"truee", false, false},
	}
	for _, c := range cases {
		got, ok := TryParseBool(slice(c.in))
		if ok != c.wantOK || (ok && got != c.want) {
			t.Errorf("TryParseBool(%q) = (%v,%v), want (%v,%v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestTryParseLongOverflow(t *testing.T) {
	if _, ok := TryParseLong(slice("9223372036854775807")); !ok {
		t.Error("max int64 should parse")
	}
	if _, ok := TryParseLong(slice("9223372036854775808")); ok {
		t.Error("max int64 + 1 should overflow")
	}
	if _, ok := TryParseLong(slice("-9223372036854775808")); !ok {
		t.Error("min int64 should parse")
	}
	if _, ok := TryParseLong(slice("abc")); ok {
		t.Error("non-numeric should fail")
	}
	if _, ok := TryParseLong(slice("+")); ok {
		t.Error("bare sign should fail")
	}
	if _, ok := TryParseLong(slice("")); ok {
		t.Error("empty should fail")
	}
}

func TestTryParseByteRange(t *testing.T) {
	if _, ok := TryParseByte(slice("127")); !ok {
		t.Error("127 should fit in int8")
	}
	if _, ok := TryParseByte(slice("128")); ok {
		t.Error("128 should overflow int8")
	}
	if _, ok := TryParseByte(slice("-128")); !ok {
		t.Error("-128 should fit in int8")
	}
	if _, ok := TryParseByte(slice("-129")); ok {
		t.Error("-129 should overflow int8")
	}
}

func TestTryParseDouble(t *testing.T) {
	dp := StdDoubleParser{}
	v, ok := TryParseDouble(slice("3.14"), dp)
	if !ok || v != 3.14 {
		t.Errorf("got (%v,%v)", v, ok)
	}
	if _, ok := TryParseDouble(slice("not-a-number"), dp); ok {
		t.Error("expected failure")
	}
}

func TestTryParseFloatMustBeFinite(t *testing.T) {
	dp := StdDoubleParser{}
	// A double that overflows float32's range must fail as FLOAT.
	if _, ok := TryParseFloat(slice("1e400"), dp); ok {
		t.Error("expected failure (double itself is +Inf)")
	}
	huge := "3.5e38" // within float64 range, overflows float32
	if _, ok := TryParseFloat(slice(huge), dp); ok {
		t.Error("expected failure narrowing to float32")
	}
	if v, ok := TryParseFloat(slice("1.5"), dp); !ok || v != 1.5 {
		t.Errorf("got (%v,%v)", v, ok)
	}
}

func TestTryParseChar(t *testing.T) {
	if v, ok := TryParseChar(slice("a")); !ok || v != 'a' {
		t.Errorf("got (%v,%v)", v, ok)
	}
	if _, ok := TryParseChar(slice("ab")); ok {
		t.Error("expected failure (more than one scalar)")
	}
	if _, ok := TryParseChar(slice("")); ok {
		t.Error("expected failure (empty)")
	}
	// U+1F600 (grinning face) needs a UTF-16 surrogate pair -> fails.
	if _, ok := TryParseChar(slice("\U0001F600")); ok {
		t.Error("expected failure (outside BMP)")
	}
	// A BMP character outside ASCII, e.g. U+00E9 (e acute), is fine.
	if v, ok := TryParseChar(slice("é")); !ok || v != 0x00e9 {
		t.Errorf("got (%v,%v)", v, ok)
	}
}

func TestTryParseTimestampScale(t *testing.T) {
	v, ok := TryParseTimestamp(slice("1000"), ScaleMillis)
	if !ok || v != 1_000_000_000 {
		t.Errorf("got (%v,%v), want 1e9", v, ok)
	}
	v, ok = TryParseTimestamp(slice("1"), ScaleSeconds)
	if !ok || v != 1_000_000_000 {
		t.Errorf("got (%v,%v), want 1e9", v, ok)
	}
	v, ok = TryParseTimestamp(slice("1234"), ScaleNanos)
	if !ok || v != 1234 {
		t.Errorf("got (%v,%v), want 1234", v, ok)
	}
}

func TestTryParseDateTime(t *testing.T) {
	v, ok := TryParseDateTime(slice("2023-01-15T10:30:00Z"), nil)
	if !ok {
		t.Fatal("parse failed")
	}
	v2, ok2 := TryParseDateTime(slice("2023-01-15T10:30:00Z"), nil)
	if !ok2 || v != v2 {
		t.Error("expected deterministic result")
	}
}
