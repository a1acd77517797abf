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

import "golang.org/x/sys/cpu"

// wideScan gates the unrolled byte-classification loop. Neither path ever
// touches an assembly routine or a SIMD intrinsic directly -- x/sys/cpu
// only inspects feature bits -- this just picks a loop shape that plays
// better with a wide CPU pipeline, the same caution
// nnnkkk7-go-simdcsv's useAVX512 gate applies before it even considers
// touching assembly.
var wideScan = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// classTable marks which bytes in 0..255 stop a scan (quote, escape,
// delimiter, CR, LF -- the exact set depends on mode).
type classTable [256]bool

func newClassTable(special ...byte) classTable {
	var t classTable
	for _, b := range special {
		t[b] = true
	}
	return t
}

func (t *classTable) mark(escape int32) {
	if escape >= 0 && escape < 256 {
		t[byte(escape)] = true
	}
}

// indexSpecial returns the offset of the first marked byte in data, or
// len(data) if none is present.
func (t *classTable) indexSpecial(data []byte) int {
	if wideScan {
		return t.indexSpecialUnrolled(data)
	}
	for i, b := range data {
		if t[b] {
			return i
		}
	}
	return len(data)
}

func (t *classTable) indexSpecialUnrolled(data []byte) int {
	i, n := 0, len(data)
	for ; i+8 <= n; i += 8 {
		chunk := data[i : i+8]
		if t[chunk[0]] {
			return i
		}
		if t[chunk[1]] {
			return i + 1
		}
		if t[chunk[2]] {
			return i + 2
		}
		if t[chunk[3]] {
			return i + 3
		}
		if t[chunk[4]] {
			return i + 4
		}
		if t[chunk[5]] {
			return i + 5
		}
		if t[chunk[6]] {
			return i + 6
		}
		if t[chunk[7]] {
			return i + 7
		}
	}
	for ; i < n; i++ {
		if t[data[i]] {
			return i
		}
	}
	return n
}
