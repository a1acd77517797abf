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

package cellbuf

import "testing"

func TestSliceTrim(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  abc  ", "abc"},
		{"\t\tabc\t", "abc"},
		{"abc", "abc"},
		{"   ", ""},
		{"", ""},
	}
	for _, c := range cases {
		data := []byte(c.in)
		s := Of(data, 0, len(data))
		got := s.TrimSpacesAndTabs().String()
		if got != c.want {
			t.Errorf("TrimSpacesAndTabs(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestSliceEqualBytes(t *testing.T) {
	data := []byte("hello")
	s := Of(data, 0, 5)
	if !s.EqualBytes([]byte("hello")) {
		t.Error("expected equal")
	}
	if s.EqualBytes([]byte("hell")) {
		t.Error("expected not equal (length)")
	}
	if s.EqualBytes([]byte("world")) {
		t.Error("expected not equal (content)")
	}
}

func TestBufferAppendGrows(t *testing.T) {
	var b Buffer
	src := []byte("0123456789")
	for i := 0; i < 20; i++ {
		b.Append(src, 0, len(src))
	}
	if b.Size() != 200 {
		t.Fatalf("Size() = %d, want 200", b.Size())
	}
	sl := b.Slice()
	if sl.Size() != 200 {
		t.Fatalf("Slice().Size() = %d, want 200", sl.Size())
	}
}

func TestBufferClearReusesCapacity(t *testing.T) {
	var b Buffer
	b.Append([]byte("abcdef"), 0, 6)
	cap0 := cap(b.data)
	b.Clear()
	b.Append([]byte("xyz"), 0, 3)
	if cap(b.data) != cap0 {
		t.Errorf("capacity changed after Clear: got %d, want %d", cap(b.data), cap0)
	}
	if b.Slice().String() != "xyz" {
		t.Errorf("Data() = %q, want %q", b.Slice().String(), "xyz")
	}
}
