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
	"github.com/latticeflow/csvcore/cellbuf"
	"github.com/latticeflow/csvcore/store"
)

// StoreIterator adapts a store.Reader to CellIterator. Large-cell
// references and packed cells are both surfaced as a cellbuf.Slice view
// over the reference's or page's backing bytes.
type StoreIterator struct {
	r *store.Reader
}

// NewStoreIterator wraps r.
func NewStoreIterator(r *store.Reader) *StoreIterator {
	return &StoreIterator{r: r}
}

func (s *StoreIterator) Next() (cellbuf.Slice, bool, error) {
	c, ok, err := s.r.Next()
	if err != nil || !ok {
		return cellbuf.Slice{}, ok, err
	}
	return cellbuf.Of(c.Data, 0, len(c.Data)), true, nil
}
