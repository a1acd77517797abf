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

package grab

import (
	"strings"
	"testing"
)

func TestFixedWidthBasic(t *testing.T) {
	g := NewFixedWidthGrabber(strings.NewReader("abXYZ12\ncdUVW34\n"), []int{2, 3, 2}, WidthUTF32)
	var cells []string
	for {
		c, last, eof, err := g.Next()
		if err != nil {
			t.Fatal(err)
		}
		cells = append(cells, c.String())
		_ = last
		if eof {
			break
		}
	}
	want := []string{"ab", "XYZ", "12", "cd", "UVW", "34"}
	if len(cells) != len(want) {
		t.Fatalf("got %v, want %v", cells, want)
	}
	for i := range want {
		if cells[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, cells[i], want[i])
		}
	}
}

func TestInferColumnWidths(t *testing.T) {
	// Column width spans from one space-to-non-space transition to the
	// next, so each column absorbs its own trailing padding.
	widths, err := InferColumnWidths([]byte("AA BBB CC"), WidthUTF32)
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 4, 2}
	if len(widths) != len(want) {
		t.Fatalf("got %v, want %v", widths, want)
	}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("width %d = %d, want %d", i, widths[i], want[i])
		}
	}
}

func TestInferColumnWidthsRejectsLeadingSpace(t *testing.T) {
	if _, err := InferColumnWidths([]byte(" AA BBB"), WidthUTF32); err != ErrFixedWidthHeader {
		t.Fatalf("got %v, want ErrFixedWidthHeader", err)
	}
}

func TestColumnWidthsAbsorbsRemainder(t *testing.T) {
	row := []byte("abXYZ1234567")
	byteWidths := ColumnWidths(row, []int{2, 3}, WidthUTF32)
	if len(byteWidths) != 2 {
		t.Fatalf("got %v", byteWidths)
	}
	if byteWidths[0] != 2 || byteWidths[1] != len(row)-2 {
		t.Errorf("got %v", byteWidths)
	}
}
