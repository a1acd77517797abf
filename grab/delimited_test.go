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
	"errors"
	"io"
	"strings"
	"testing"
)

func defaultConfig() Config {
	return Config{Delimiter: ',', Quote: '"', Escape: NoEscape, IgnoreSurroundingSpaces: true}
}

func grabAll(t *testing.T, g CellGrabber) [][]string {
	t.Helper()
	var rows [][]string
	var row []string
	for {
		cell, last, eof, err := g.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		row = append(row, cell.String())
		if last {
			rows = append(rows, row)
			row = nil
		}
		if eof {
			break
		}
	}
	return rows
}

func TestDelimitedBasic(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader("a,b,c\n1,2,3\n"), defaultConfig())
	rows := grabAll(t, g)
	want := [][]string{{"a", "b", "c"}, {"1", "2", "3"}}
	assertRows(t, rows, want)
}

func TestDelimitedQuotedDoubledQuote(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader(`"a""b",x`+"\n"), defaultConfig())
	rows := grabAll(t, g)
	assertRows(t, rows, [][]string{{`a"b`, "x"}})
}

func TestDelimitedQuotedEmbeddedNewline(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader("\"He said \"\"hi\"\"\nthere\",x\n"), defaultConfig())
	rows := grabAll(t, g)
	assertRows(t, rows, [][]string{{"He said \"hi\"\nthere", "x"}})
}

func TestDelimitedQuotedTrailingJunkFails(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader(`"abc" junk,x`+"\n"), defaultConfig())
	_, _, _, err := g.Next()
	if !errors.Is(err, ErrMalformedQuoting) {
		t.Fatalf("got %v, want ErrMalformedQuoting", err)
	}
}

func TestDelimitedUnterminatedQuoteFails(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader(`"abc`), defaultConfig())
	_, _, _, err := g.Next()
	if !errors.Is(err, ErrMalformedQuoting) {
		t.Fatalf("got %v, want ErrMalformedQuoting", err)
	}
}

func TestDelimitedEscapeExpansion(t *testing.T) {
	cfg := Config{Delimiter: ',', Quote: '`', Escape: int32('|'), IgnoreSurroundingSpaces: true}
	g := NewDelimitedGrabber(strings.NewReader("a|tb,c\n"), cfg)
	rows := grabAll(t, g)
	assertRows(t, rows, [][]string{{"a\tb", "c"}})
}

func TestDelimitedEscapeOfNewlineFails(t *testing.T) {
	cfg := Config{Delimiter: ',', Quote: '`', Escape: int32('|'), IgnoreSurroundingSpaces: true}
	g := NewDelimitedGrabber(strings.NewReader("a|\nb,c\n"), cfg)
	_, _, _, err := g.Next()
	if !errors.Is(err, ErrMalformedEscape) {
		t.Fatalf("got %v, want ErrMalformedEscape", err)
	}
}

func TestDelimitedCRLFRowTerminators(t *testing.T) {
	g := NewDelimitedGrabber(strings.NewReader("a,b\r\nc,d\r"), defaultConfig())
	rows := grabAll(t, g)
	assertRows(t, rows, [][]string{{"a", "b"}, {"c", "d"}})
	if g.Row() != 2 {
		t.Errorf("Row() = %d, want 2", g.Row())
	}
}

func TestDelimitedBufferStraddling(t *testing.T) {
	// Force the field to span multiple internal reads by wrapping the
	// reader so Read only ever returns a handful of bytes at a time.
	long := strings.Repeat("x", BufferSize*2+37)
	g := NewDelimitedGrabber(&tinyReader{data: []byte(long + ",end\n")}, defaultConfig())
	rows := grabAll(t, g)
	if len(rows) != 1 || rows[0][0] != long || rows[0][1] != "end" {
		t.Fatalf("got %d rows, first cell len %d", len(rows), len(rows[0][0]))
	}
}

func assertRows(t *testing.T, got, want [][]string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows %v, want %d rows %v", len(got), got, len(want), want)
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("row %d: got %v, want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Errorf("row %d col %d: got %q, want %q", i, j, got[i][j], want[i][j])
			}
		}
	}
}

// tinyReader returns at most 17 bytes per Read call, to exercise
// buffer-straddling and refill logic deterministically.
type tinyReader struct {
	data []byte
	pos  int
}

func (r *tinyReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := 17
	if n > len(p) {
		n = len(p)
	}
	if r.pos+n > len(r.data) {
		n = len(r.data) - r.pos
	}
	copy(p, r.data[r.pos:r.pos+n])
	r.pos += n
	return n, nil
}
