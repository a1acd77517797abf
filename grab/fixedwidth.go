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
	"unicode/utf16"
	"unicode/utf8"

	"github.com/latticeflow/csvcore/cellbuf"
)

// ErrFixedWidthHeader is returned when a header row used to infer column
// widths starts with a space (spec §4.3).
var ErrFixedWidthHeader = errors.New("grab: fixed-width header starts with space")

var newlineTable = newClassTable('\n', '\r')

// lineGrabber yields whole physical rows with the row terminator stripped.
// It is the degenerate delimited grabber (no delimiter, quote, or escape)
// spec §4.3 says the fixed-width grabber wraps.
type lineGrabber struct {
	src   *byteSource
	spill cellbuf.Buffer
	row   int64
}

func newLineGrabber(r io.Reader) *lineGrabber {
	return &lineGrabber{src: newByteSource(r)}
}

func (l *lineGrabber) next() (cellbuf.Slice, bool, error) {
	l.spill.Clear()
	spilled := false
	for {
		avail := l.src.avail()
		if len(avail) == 0 {
			if !l.src.ensure(1) {
				if !spilled {
					return cellbuf.Slice{}, true, nil
				}
				return l.spill.Slice(), true, nil
			}
			continue
		}
		idx := newlineTable.indexSpecial(avail)
		if idx == len(avail) {
			l.spill.Append(avail, 0, idx)
			spilled = true
			l.src.advance(idx)
			continue
		}
		b := avail[idx]
		// The ensure calls below may shift the byte source, so the row is
		// returned from spill rather than as a view into avail.
		l.spill.Append(avail, 0, idx)
		val := l.spill.Slice()
		l.src.advance(idx + 1)
		l.row++
		if b == '\r' {
			if l.src.ensure(1) && l.src.avail()[0] == '\n' {
				l.src.advance(1)
			}
		}
		eof := !l.src.ensure(1)
		return val, eof, nil
	}
}

// ColumnWidths converts a vector of character widths (measured per conv)
// into UTF-8 byte widths for row, by walking row's UTF-8 leading bytes.
// Any trailing bytes left over after the declared widths are absorbed by
// the last column (spec §4.3).
func ColumnWidths(row []byte, charWidths []int, conv WidthConvention) []int {
	byteWidths := make([]int, len(charWidths))
	pos := 0
	for i, cw := range charWidths {
		consumed := 0
		for consumed < cw && pos < len(row) {
			_, size := utf8.DecodeRune(row[pos:])
			if size <= 0 {
				size = 1
			}
			pos += size
			consumed += runeWidth(row[pos-size:pos], conv)
		}
		byteWidths[i] = pos
	}
	for i := len(byteWidths) - 1; i > 0; i-- {
		byteWidths[i] -= byteWidths[i-1]
	}
	if len(byteWidths) > 0 {
		byteWidths[len(byteWidths)-1] += len(row) - pos
	}
	return byteWidths
}

// runeWidth reports how many units of conv a single decoded rune (encoded
// as the UTF-8 bytes r) occupies: one UTF-32 scalar, or one or two UTF-16
// code units depending on whether it needs a surrogate pair.
func runeWidth(r []byte, conv WidthConvention) int {
	if conv == WidthUTF32 {
		return 1
	}
	ru, _ := utf8.DecodeRune(r)
	if ru > 0xFFFF {
		return len(utf16.Encode([]rune{ru}))
	}
	return 1
}

// WidthConvention selects how a declared fixed-width column width is
// measured (spec §4.3).
type WidthConvention int

const (
	WidthUTF16 WidthConvention = iota
	WidthUTF32
)

// InferColumnWidths derives a character-width vector from a header row by
// treating a space-to-non-space transition as the start of a new column
// (spec §4.3). It rejects a header that starts with a space.
func InferColumnWidths(header []byte, conv WidthConvention) ([]int, error) {
	if len(header) > 0 && header[0] == ' ' {
		return nil, ErrFixedWidthHeader
	}
	runes := decodeRunes(header)
	if len(runes) == 0 {
		return nil, nil
	}
	starts := []int{0}
	prevSpace := false
	for i, ru := range runes {
		isSpace := ru == ' '
		if prevSpace && !isSpace {
			starts = append(starts, i)
		}
		prevSpace = isSpace
	}
	widths := make([]int, len(starts))
	for i, s := range starts {
		end := len(runes)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		w := 0
		for _, ru := range runes[s:end] {
			w += runeWidth([]byte(string(ru)), conv)
		}
		widths[i] = w
	}
	return widths, nil
}

func decodeRunes(b []byte) []rune {
	runes := make([]rune, 0, len(b))
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		runes = append(runes, r)
		b = b[size:]
	}
	return runes
}

// FixedWidthGrabber implements the fixed-width CellGrabber of spec §4.3.
type FixedWidthGrabber struct {
	lines      *lineGrabber
	charWidths []int
	conv       WidthConvention

	cur     []int // byte widths for the row currently being split
	curRow  []byte
	pending int // index of the next column to yield from cur
	lastRow bool
	eof     bool
	baseRow int64
}

// NewFixedWidthGrabber creates a FixedWidthGrabber with pre-determined
// character widths (e.g. supplied by configuration rather than inferred
// from a header).
func NewFixedWidthGrabber(r io.Reader, charWidths []int, conv WidthConvention) *FixedWidthGrabber {
	return &FixedWidthGrabber{lines: newLineGrabber(r), charWidths: charWidths, conv: conv}
}

func (g *FixedWidthGrabber) Row() int64 { return g.lines.row + g.baseRow }

// SetBaseRow implements CellGrabber.
func (g *FixedWidthGrabber) SetBaseRow(base int64) { g.baseRow = base }

// Next implements CellGrabber.
func (g *FixedWidthGrabber) Next() (cellbuf.Slice, bool, bool, error) {
	if g.pending >= len(g.cur) {
		if g.eof {
			return cellbuf.Slice{}, true, true, nil
		}
		row, eof, err := g.lines.next()
		if err != nil {
			return cellbuf.Slice{}, false, false, err
		}
		g.curRow = row.CopyTo(make([]byte, row.Size()), 0)
		g.cur = ColumnWidths(g.curRow, g.charWidths, g.conv)
		g.pending = 0
		g.eof = eof
		if len(g.cur) == 0 {
			return cellbuf.Slice{}, true, eof, nil
		}
	}
	off := 0
	for i := 0; i < g.pending; i++ {
		off += g.cur[i]
	}
	width := g.cur[g.pending]
	cell := cellbuf.Of(g.curRow, off, off+width)
	g.pending++
	last := g.pending >= len(g.cur)
	eof := last && g.eof
	return cell, last, eof, nil
}
