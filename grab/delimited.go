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
	"fmt"
	"io"

	"github.com/latticeflow/csvcore/cellbuf"
)

// DelimitedGrabber implements the quoted/unquoted CellGrabber of spec
// §4.2. It is not safe for concurrent use.
type DelimitedGrabber struct {
	src  *byteSource
	cfg  Config
	tblU classTable // unquoted-mode stop bytes
	tblQ classTable // quoted-mode stop bytes

	spill   cellbuf.Buffer
	row     int64
	baseRow int64
}

// NewDelimitedGrabber creates a DelimitedGrabber reading from r under cfg.
// Callers are responsible for validating cfg (7-bit ASCII delimiter/quote,
// escape distinct from both) before construction.
func NewDelimitedGrabber(r io.Reader, cfg Config) *DelimitedGrabber {
	tblU := newClassTable(cfg.Delimiter, '\n', '\r')
	tblU.mark(cfg.Escape)
	tblQ := newClassTable(cfg.Quote, '\n', '\r')
	tblQ.mark(cfg.Escape)
	return &DelimitedGrabber{
		src:  newByteSource(r),
		cfg:  cfg,
		tblU: tblU,
		tblQ: tblQ,
	}
}

func (g *DelimitedGrabber) Row() int64 { return g.row + g.baseRow }

// SetBaseRow implements CellGrabber.
func (g *DelimitedGrabber) SetBaseRow(base int64) { g.baseRow = base }

// Next implements CellGrabber.
func (g *DelimitedGrabber) Next() (cellbuf.Slice, bool, bool, error) {
	g.spill.Clear()
	g.skipLeadingSpaces()
	if !g.src.ensure(1) {
		return cellbuf.Slice{}, true, true, nil
	}
	var cell cellbuf.Slice
	var last, eof bool
	var err error
	if g.src.avail()[0] == g.cfg.Quote {
		g.src.advance(1)
		cell, last, eof, err = g.grabQuoted()
	} else {
		cell, last, eof, err = g.grabUnquoted()
	}
	if err == nil && last && !eof && len(g.src.avail()) == 0 {
		// The row terminator was the last buffered byte: probe for more
		// input so a final row reports eof itself rather than being
		// followed by an empty row. The probe may refill the byte source
		// and overwrite bytes cell aliases, so cell is copied first.
		owned := append([]byte(nil), cell.Data()...)
		cell = cellbuf.Of(owned, 0, len(owned))
		eof = !g.src.ensure(1)
	}
	return cell, last, eof, err
}

func (g *DelimitedGrabber) skipLeadingSpaces() {
	if !g.cfg.IgnoreSurroundingSpaces {
		return
	}
	for {
		if !g.src.ensure(1) {
			return
		}
		b := g.src.avail()[0]
		if (b != ' ' && b != '\t') || b == g.cfg.Delimiter {
			return
		}
		g.src.advance(1)
	}
}

func (g *DelimitedGrabber) trimIfConfigured(s cellbuf.Slice) cellbuf.Slice {
	if g.cfg.IgnoreSurroundingSpaces {
		return s.TrimSpacesAndTabs()
	}
	return s
}

func (g *DelimitedGrabber) grabUnquoted() (cellbuf.Slice, bool, bool, error) {
	spilled := false
	for {
		avail := g.src.avail()
		if len(avail) == 0 {
			if !g.src.ensure(1) {
				return g.trimIfConfigured(g.spillView(spilled, nil)), true, true, nil
			}
			continue
		}
		idx := g.tblU.indexSpecial(avail)
		if idx == len(avail) {
			g.spill.Append(avail, 0, idx)
			spilled = true
			g.src.advance(idx)
			continue
		}
		switch b := avail[idx]; {
		case b == g.cfg.Delimiter:
			val := g.trimIfConfigured(g.spillView(spilled, avail[:idx]))
			g.src.advance(idx + 1)
			return val, false, false, nil
		case b == '\n':
			val := g.trimIfConfigured(g.spillView(spilled, avail[:idx]))
			g.src.advance(idx + 1)
			g.row++
			return val, true, false, nil
		case b == '\r':
			g.spill.Append(avail, 0, idx)
			val := g.trimIfConfigured(g.spill.Slice())
			g.src.advance(idx + 1)
			g.row++
			if g.src.ensure(1) && g.src.avail()[0] == '\n' {
				g.src.advance(1)
			}
			return val, true, false, nil
		default: // escape
			g.spill.Append(avail, 0, idx)
			spilled = true
			g.src.advance(idx)
			if err := g.expandEscape(); err != nil {
				return cellbuf.Slice{}, false, false, err
			}
		}
	}
}

func (g *DelimitedGrabber) grabQuoted() (cellbuf.Slice, bool, bool, error) {
	for {
		avail := g.src.avail()
		if len(avail) == 0 {
			if !g.src.ensure(1) {
				return cellbuf.Slice{}, false, false, fmt.Errorf("grab: unterminated quoted cell: %w", ErrMalformedQuoting)
			}
			continue
		}
		idx := g.tblQ.indexSpecial(avail)
		if idx == len(avail) {
			g.spill.Append(avail, 0, idx)
			g.src.advance(idx)
			continue
		}
		switch b := avail[idx]; {
		case b == '\n':
			g.spill.Append(avail, 0, idx)
			g.src.advance(idx + 1)
			g.spill.AppendByte('\n')
			g.row++
		case b == '\r':
			g.spill.Append(avail, 0, idx)
			g.src.advance(idx + 1)
			g.row++
			if g.src.ensure(1) && g.src.avail()[0] == '\n' {
				g.src.advance(1)
				g.spill.AppendByte('\n')
			} else {
				g.spill.AppendByte('\r')
			}
		case b == g.cfg.Quote:
			g.spill.Append(avail, 0, idx)
			g.src.advance(idx + 1)
			if g.src.ensure(1) && g.src.avail()[0] == g.cfg.Quote {
				g.src.advance(1)
				g.spill.AppendByte(g.cfg.Quote)
				continue
			}
			return g.afterCloseQuote()
		default: // escape
			g.spill.Append(avail, 0, idx)
			g.src.advance(idx)
			if err := g.expandEscape(); err != nil {
				return cellbuf.Slice{}, false, false, err
			}
		}
	}
}

// afterCloseQuote consumes trailing whitespace up to the next delimiter or
// row terminator, rejecting any other trailing byte (spec §4.2: rejects
// `"abc" junk`).
func (g *DelimitedGrabber) afterCloseQuote() (cellbuf.Slice, bool, bool, error) {
	val := g.spill.Slice()
	if g.cfg.Trim {
		val = val.TrimSpacesAndTabs()
	}
	for {
		if !g.src.ensure(1) {
			return val, true, true, nil
		}
		switch b := g.src.avail()[0]; {
		case b == ' ' || b == '\t':
			g.src.advance(1)
		case b == g.cfg.Delimiter:
			g.src.advance(1)
			return val, false, false, nil
		case b == '\n':
			g.src.advance(1)
			g.row++
			return val, true, false, nil
		case b == '\r':
			g.src.advance(1)
			g.row++
			if g.src.ensure(1) && g.src.avail()[0] == '\n' {
				g.src.advance(1)
			}
			return val, true, false, nil
		default:
			return cellbuf.Slice{}, false, false, fmt.Errorf("grab: trailing data after closing quote: %w", ErrMalformedQuoting)
		}
	}
}

// expandEscape consumes the escape byte (already at the front of avail)
// and the byte that follows it, mapping it per spec §4.2.1 and appending
// the result to spill.
func (g *DelimitedGrabber) expandEscape() error {
	g.src.advance(1) // consume the escape byte itself
	if !g.src.ensure(1) {
		return fmt.Errorf("grab: escape at end of input: %w", ErrMalformedEscape)
	}
	x := g.src.avail()[0]
	g.src.advance(1)
	if x == '\r' || x == '\n' || x&0x80 != 0 {
		return fmt.Errorf("grab: escape of %#x: %w", x, ErrMalformedEscape)
	}
	g.spill.AppendByte(mapEscape(x))
	return nil
}

func mapEscape(x byte) byte {
	switch x {
	case 'b':
		return 0x08
	case 't':
		return 0x09
	case 'n':
		return 0x0A
	case 'r':
		return 0x0D
	case 'f':
		return 0x0C
	default:
		return x
	}
}

// spillView returns the direct (zero-copy) view of prefix when nothing has
// been spilled yet, otherwise appends prefix to spill and returns the
// spill buffer's view.
func (g *DelimitedGrabber) spillView(spilled bool, prefix []byte) cellbuf.Slice {
	if !spilled {
		if prefix == nil {
			return cellbuf.Slice{}
		}
		return cellbuf.Of(prefix, 0, len(prefix))
	}
	if len(prefix) > 0 {
		g.spill.Append(prefix, 0, len(prefix))
	}
	return g.spill.Slice()
}
