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
	"testing"

	"github.com/latticeflow/csvcore/cellbuf"
)

type sliceIter struct {
	cells []string
	pos   int
}

func (s *sliceIter) Next() (cellbuf.Slice, bool, error) {
	if s.pos >= len(s.cells) {
		return cellbuf.Slice{}, false, nil
	}
	b := []byte(s.cells[s.pos])
	s.pos++
	return cellbuf.Of(b, 0, len(b)), true, nil
}

func TestLongParserBasic(t *testing.T) {
	sink := NewMemColumn[int64]()
	p := NewLongParser(sink, DefaultNullLiterals, -1, true)
	it := &sliceIter{cells: []string{"1", "2", "", "4"}}
	// destEnd lies past the last cell, so the stop comes from the iterator
	// running dry rather than from reaching destEnd.
	n, exhausted, err := p.TryParse(it, 0, 5, true)
	if err != nil || n != 4 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if !exhausted {
		t.Errorf("expected exhausted=true after consuming the whole iterator")
	}
	values, nulls := sink.Values()
	want := []int64{1, 2, -1, 4}
	wantNull := []bool{false, false, true, false}
	for i := range want {
		if values[i] != want[i] || nulls[i] != wantNull[i] {
			t.Errorf("i=%d got (%v,%v) want (%v,%v)", i, values[i], nulls[i], want[i], wantNull[i])
		}
	}
}

func TestLongParserStopsAtFirstUnparseable(t *testing.T) {
	sink := NewMemColumn[int64]()
	p := NewLongParser(sink, DefaultNullLiterals, -1, true)
	it := &sliceIter{cells: []string{"1", "2", "notanumber", "4"}}
	n, exhausted, err := p.TryParse(it, 0, 4, true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 2 {
		t.Fatalf("expected to stop at 2, got %d", n)
	}
	if exhausted {
		t.Errorf("expected exhausted=false: stopped on a bad cell, not iterator end")
	}
}

func TestLongParserSentinelCollisionFails(t *testing.T) {
	sink := NewMemColumn[int64]()
	// Sentinel for null encoding is -1: an actual -1 value in the input
	// must not be accepted, to preserve the null encoding (spec §4.6 step 3).
	p := NewLongParser(sink, DefaultNullLiterals, -1, true)
	it := &sliceIter{cells: []string{"5", "-1"}}
	n, _, err := p.TryParse(it, 0, 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected stop at 1 (sentinel collision), got %d", n)
	}
}

func TestStringParserNeverFails(t *testing.T) {
	sink := NewMemColumn[string]()
	p := NewStringParser(sink, DefaultNullLiterals, "<NULL>", true)
	it := &sliceIter{cells: []string{"hello", "", "world"}}
	n, _, err := p.TryParse(it, 0, 3, true)
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	values, nulls := sink.Values()
	if values[1] != "<NULL>" || !nulls[1] {
		t.Errorf("expected null sentinel at index 1, got %q %v", values[1], nulls[1])
	}
}

func TestMemColumnOutOfOrderWrite(t *testing.T) {
	sink := NewMemColumn[int32]()
	if err := sink.WriteRange(5, 8, []int32{1, 2, 3}, []bool{false, false, false}, false); err != nil {
		t.Fatal(err)
	}
	if err := sink.WriteRange(0, 5, []int32{0, 0, 0, 0, 0}, []bool{true, true, true, true, true}, false); err != nil {
		t.Fatal(err)
	}
	if sink.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", sink.Len())
	}
	v, null := sink.Value(6)
	if v != 2 || null {
		t.Errorf("Value(6) = (%v,%v), want (2,false)", v, null)
	}
}
