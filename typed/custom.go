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

// NewCustomParser builds a CUSTOM-typed parser around a caller-supplied
// recognizer, letting a column host an application-specific scalar type
// (spec §4.6.1's CUSTOM catalog entry) without csvcore knowing its shape.
// T must be comparable so the null-sentinel check in Parser[T] works.
func NewCustomParser[T comparable](sink Sink[T], tokenize Tokenize[T], nullLiterals [][]byte, sentinel T, hasSentinel bool) *Parser[T] {
	return &Parser[T]{
		Type:         Custom,
		Sink:         sink,
		Tokenize:     tokenize,
		NullLiterals: nullLiterals,
		Sentinel:     sentinel,
		HasSentinel:  hasSentinel,
	}
}
