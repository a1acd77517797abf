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

import "github.com/latticeflow/csvcore/cellbuf"

// NoEscape marks escape as disabled (spec §4.2: "a sentinel value outside
// valid UTF-8").
const NoEscape int32 = -1

// Config parameterizes a delimited CellGrabber. Quote, Escape, and
// Delimiter must be 7-bit ASCII; Escape may additionally be NoEscape.
type Config struct {
	Delimiter               byte
	Quote                   byte
	Escape                  int32
	IgnoreSurroundingSpaces bool
	Trim                    bool
}

// CellGrabber tokenizes an input stream into successive cells (spec §3).
type CellGrabber interface {
	// Next yields the next cell. last marks the end of the current row;
	// eof marks that no further bytes remain anywhere in the stream. The
	// returned slice is only valid until the next call to Next — copy it
	// before calling Next again.
	Next() (cell cellbuf.Slice, last bool, eof bool, err error)
	// Row is the current 1-based physical row number; CR, LF, and CRLF
	// terminators each count as exactly one row boundary.
	Row() int64
	// SetBaseRow offsets Row() by base, so a grabber constructed partway
	// through a stream (after rows a caller already consumed itself, such
	// as skipped rows or a header row) still reports true physical row
	// numbers.
	SetBaseRow(base int64)
}
