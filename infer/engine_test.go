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

package infer

import (
	"testing"

	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/token"
	"github.com/latticeflow/csvcore/typed"
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

func iteratorFactory(cells []string) func() typed.CellIterator {
	return func() typed.CellIterator { return &sliceIter{cells: cells} }
}

// noSourceColumn wraps a MemColumn but does not expose a Value method, so
// it satisfies Sink[T] but never Source[T]. This forces the numeric
// ladder's Unification branch off so tests can exercise the
// fallback-reparse branch instead.
type noSourceColumn[T any] struct {
	inner *typed.MemColumn[T]
}

func newNoSourceColumn[T any]() *noSourceColumn[T] { return &noSourceColumn[T]{typed.NewMemColumn[T]()} }

func (c *noSourceColumn[T]) WriteRange(begin, end int, values []T, nulls []bool, appending bool) error {
	return c.inner.WriteRange(begin, end, values, nulls, appending)
}

func (c *noSourceColumn[T]) Len() int { return c.inner.Len() }

func TestColumnEmptyWithNullParser(t *testing.T) {
	u := NewBuilder(UniverseSpec{}).
		AddString(typed.NewStringParser(typed.NewMemColumn[string](), typed.DefaultNullLiterals, "<NULL>", true)).
		SetNullParser(typed.String).
		Build()
	dtype, _, err := Column(u, iteratorFactory(nil), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.String {
		t.Fatalf("got %v, want STRING", dtype)
	}
}

func TestColumnEmptyWithoutNullParserFails(t *testing.T) {
	u := NewBuilder(UniverseSpec{}).
		AddString(typed.NewStringParser(typed.NewMemColumn[string](), typed.DefaultNullLiterals, "<NULL>", true)).
		Build()
	_, _, err := Column(u, iteratorFactory(nil), typed.DefaultNullLiterals)
	if err != ErrNoNullParser {
		t.Fatalf("got %v, want ErrNoNullParser", err)
	}
}

func TestColumnAllNull(t *testing.T) {
	u := NewBuilder(UniverseSpec{}).
		AddString(typed.NewStringParser(typed.NewMemColumn[string](), typed.DefaultNullLiterals, "<NULL>", true)).
		SetNullParser(typed.String).
		Build()
	dtype, _, err := Column(u, iteratorFactory([]string{"", "", ""}), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.String {
		t.Fatalf("got %v, want STRING", dtype)
	}
}

func TestColumnSingleParserSetMustConsumeEverything(t *testing.T) {
	sink := typed.NewMemColumn[int64]()
	u := NewBuilder(UniverseSpec{}).
		AddLong(typed.NewLongParser(sink, typed.DefaultNullLiterals, -1, true)).
		Build()
	dtype, _, err := Column(u, iteratorFactory([]string{"1", "2", "3"}), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.Long {
		t.Fatalf("got %v, want LONG", dtype)
	}

	u2 := NewBuilder(UniverseSpec{}).
		AddLong(typed.NewLongParser(typed.NewMemColumn[int64](), typed.DefaultNullLiterals, -1, true)).
		Build()
	if _, _, err := Column(u2, iteratorFactory([]string{"1", "notanumber"}), typed.DefaultNullLiterals); err == nil {
		t.Fatal("expected an error when the sole parser cannot consume the whole column")
	}
}

func TestColumnNumericLadderUnifiesViaSource(t *testing.T) {
	longSink := typed.NewMemColumn[int64]()
	doubleSink := typed.NewMemColumn[float64]()
	u := NewBuilder(UniverseSpec{}).
		AddLong(typed.NewLongParser(longSink, typed.DefaultNullLiterals, -1, true)).
		AddDouble(typed.NewDoubleParser(doubleSink, token.StdDoubleParser{}, typed.DefaultNullLiterals, 0, false)).
		Build()
	dtype, _, err := Column(u, iteratorFactory([]string{"1", "2", "3.5", "4.25"}), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.Double {
		t.Fatalf("got %v, want DOUBLE", dtype)
	}
	values, nulls := doubleSink.Values()
	want := []float64{1, 2, 3.5, 4.25}
	for i := range want {
		if values[i] != want[i] || nulls[i] {
			t.Errorf("i=%d got (%v,%v) want (%v,false)", i, values[i], nulls[i], want[i])
		}
	}
}

func TestColumnNumericLadderFallsBackToReparseWithoutSource(t *testing.T) {
	longSink := newNoSourceColumn[int64]()
	doubleSink := typed.NewMemColumn[float64]()
	u := NewBuilder(UniverseSpec{}).
		AddLong(typed.NewLongParser(longSink, typed.DefaultNullLiterals, -1, true)).
		AddDouble(typed.NewDoubleParser(doubleSink, token.StdDoubleParser{}, typed.DefaultNullLiterals, 0, false)).
		Build()
	dtype, _, err := Column(u, iteratorFactory([]string{"1", "2", "3.5"}), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.Double {
		t.Fatalf("got %v, want DOUBLE", dtype)
	}
	values, nulls := doubleSink.Values()
	want := []float64{1, 2, 3.5}
	for i := range want {
		if values[i] != want[i] || nulls[i] {
			t.Errorf("i=%d got (%v,%v) want (%v,false)", i, values[i], nulls[i], want[i])
		}
	}
}

func TestColumnNonNumericTwoPhaseReparse(t *testing.T) {
	charSink := typed.NewMemColumn[uint16]()
	stringSink := typed.NewMemColumn[string]()
	u := NewBuilder(UniverseSpec{}).
		AddChar(typed.NewCharParser(charSink, typed.DefaultNullLiterals, 0, false)).
		AddString(typed.NewStringParser(stringSink, typed.DefaultNullLiterals, "<NULL>", true)).
		Build()
	dtype, _, err := Column(u, iteratorFactory([]string{"a", "bb", "ccc"}), typed.DefaultNullLiterals)
	if err != nil {
		t.Fatal(err)
	}
	if dtype != typed.String {
		t.Fatalf("got %v, want STRING", dtype)
	}
	values, nulls := stringSink.Values()
	want := []string{"a", "bb", "ccc"}
	for i := range want {
		if values[i] != want[i] || nulls[i] {
			t.Errorf("i=%d got (%v,%v) want (%v,false)", i, values[i], nulls[i], want[i])
		}
	}
}

func TestColumnNoParserConsumesEverythingFails(t *testing.T) {
	sink := typed.NewMemColumn[uint16]()
	u := NewBuilder(UniverseSpec{}).
		AddChar(typed.NewCharParser(sink, typed.DefaultNullLiterals, 0, false)).
		Build()
	if _, _, err := Column(u, iteratorFactory([]string{"a", "bb"}), typed.DefaultNullLiterals); err == nil {
		t.Fatal("expected an error: CHAR cannot consume \"bb\" and no fallback rung is configured")
	}
}
