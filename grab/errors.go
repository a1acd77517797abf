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

import "errors"

var (
	// ErrMalformedQuoting covers an unterminated quoted cell and trailing
	// non-whitespace between a closing quote and the next delimiter.
	ErrMalformedQuoting = errors.New("grab: malformed quoting")
	// ErrMalformedEscape covers an escape at the final byte of the input
	// and an escape of CR, LF, or a non-ASCII byte.
	ErrMalformedEscape = errors.New("grab: malformed escape sequence")
)
