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

// Package store implements DenseStorage, spec §4.4: a bounded
// single-producer/multi-consumer FIFO of immutable byte slices per column,
// used to decouple CellGrabber tokenization from type inference. The wire
// format of its control stream is fixed by spec §6.7.
package store

import "encoding/binary"

// Control-word values (spec §6.7). All multi-byte values are little-endian.
const (
	endSentinel   int32 = -2
	largeSentinel int32 = -1
)

// LargeThreshold is the minimum cell size (in bytes) stored by reference in
// the large-cell page rather than inline in the packed page (spec §3,
// recommended 1024).
const LargeThreshold = 1024

func putControlWord(b []byte, v int32) {
	binary.LittleEndian.PutUint32(b, uint32(v))
}

func getControlWord(b []byte) int32 {
	return int32(binary.LittleEndian.Uint32(b))
}

const controlWordSize = 4
