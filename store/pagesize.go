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

package store

import "github.com/klauspost/cpuid/v2"

// DefaultPackedPageSize is spec §3's recommended 1 MiB packed-page capacity,
// rounded up at init time to a multiple of the detected L1 data-cache line
// size so the writer's page-rotation cadence lines up with cache geometry.
// Falls back to the plain 1 MiB figure when detection is unavailable.
var DefaultPackedPageSize = computeDefaultPageSize()

// DefaultMaxUnobservedPages is spec §4.4's MAX_UNOBSERVED_PAGES.
const DefaultMaxUnobservedPages = 4

// DefaultLargePageEntries bounds how many large-cell references a single
// large-cell page holds. Reaching the bound triggers a rotation that
// publishes the packed and large-cell pages together in one node; the
// large-cell page does not rotate on its own.
const DefaultLargePageEntries = 4096

const baselinePageSize = 1 << 20 // 1 MiB

func computeDefaultPageSize() int {
	line := cpuid.CPU.CacheLine
	if line <= 0 {
		return baselinePageSize
	}
	if baselinePageSize%line == 0 {
		return baselinePageSize
	}
	return ((baselinePageSize / line) + 1) * line
}
