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

package csvcore

import "github.com/latticeflow/csvcore/typed"

// ColumnResult is one column's outcome (spec §6.4): its legalized/validated
// name, the inferred DataType, and the caller's own Sink object (obtained
// from the SinkFactory) now holding the column's parsed values.
type ColumnResult struct {
	Name  string
	Type  typed.DataType
	Index int
	// Sink is the object the matching SinkFactory constructor returned;
	// callers type-assert it back to the concrete Sink/Source type they
	// expect for this column (e.g. *typed.MemColumn[int64]).
	Sink any
}

// Result is the core's output object (spec §6.4): the final row count and
// one ColumnResult per column, in column order.
type Result struct {
	RowCount int64
	Columns  []ColumnResult
}

// ByName returns the column named name, or ok == false if no column has
// that name (after legalization).
func (r Result) ByName(name string) (ColumnResult, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnResult{}, false
}
