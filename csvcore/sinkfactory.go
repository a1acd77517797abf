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

// SinkFactory is the caller-supplied constructor set spec §6.3 describes:
// "one constructor per logical type plus an optional reserved sentinel
// value per type". Go forbids a generic method on an interface (there is
// no NewCustom[T]() shape a single interface could expose), so SinkFactory
// is a struct of per-type constructor funcs instead of an interface;
// CUSTOM types are registered separately via CustomBuilder closures that
// close over the caller's concrete T (see NewCoordinator).
//
// Each constructor returns a fresh Sink, its sentinel value, and whether
// that sentinel is in effect; the core calls these on demand, per column,
// and must tolerate concurrent calls when Config.Concurrent is true.
type SinkFactory struct {
	NewBoolean   func() (sink typed.Sink[bool], sentinel bool, hasSentinel bool)
	NewByte      func() (sink typed.Sink[int8], sentinel int8, hasSentinel bool)
	NewShort     func() (sink typed.Sink[int16], sentinel int16, hasSentinel bool)
	NewInt       func() (sink typed.Sink[int32], sentinel int32, hasSentinel bool)
	NewLong      func() (sink typed.Sink[int64], sentinel int64, hasSentinel bool)
	NewFloat     func() (sink typed.Sink[float32], sentinel float32, hasSentinel bool)
	NewDouble    func() (sink typed.Sink[float64], sentinel float64, hasSentinel bool)
	NewChar      func() (sink typed.Sink[uint16], sentinel uint16, hasSentinel bool)
	NewString    func() (sink typed.Sink[string], sentinel string, hasSentinel bool)
	NewDatetime  func() (sink typed.Sink[int64], sentinel int64, hasSentinel bool)
	NewTimestamp func() (sink typed.Sink[int64], sentinel int64, hasSentinel bool)
}

// DefaultSinkFactory returns a SinkFactory whose constructors materialize
// into typed.MemColumn, the in-memory Sink/Source implementation. It is
// the factory cmd/csvcoreload uses and a convenient default for callers
// who do not need a custom storage backend.
func DefaultSinkFactory() SinkFactory {
	return SinkFactory{
		NewBoolean: func() (typed.Sink[bool], bool, bool) {
			return typed.NewMemColumn[bool](), false, false
		},
		NewByte: func() (typed.Sink[int8], int8, bool) {
			return typed.NewMemColumn[int8](), 0, false
		},
		NewShort: func() (typed.Sink[int16], int16, bool) {
			return typed.NewMemColumn[int16](), 0, false
		},
		NewInt: func() (typed.Sink[int32], int32, bool) {
			return typed.NewMemColumn[int32](), 0, false
		},
		NewLong: func() (typed.Sink[int64], int64, bool) {
			return typed.NewMemColumn[int64](), 0, false
		},
		NewFloat: func() (typed.Sink[float32], float32, bool) {
			return typed.NewMemColumn[float32](), 0, false
		},
		NewDouble: func() (typed.Sink[float64], float64, bool) {
			return typed.NewMemColumn[float64](), 0, false
		},
		NewChar: func() (typed.Sink[uint16], uint16, bool) {
			return typed.NewMemColumn[uint16](), 0, false
		},
		NewString: func() (typed.Sink[string], string, bool) {
			return typed.NewMemColumn[string](), "", false
		},
		NewDatetime: func() (typed.Sink[int64], int64, bool) {
			return typed.NewMemColumn[int64](), 0, false
		},
		NewTimestamp: func() (typed.Sink[int64], int64, bool) {
			return typed.NewMemColumn[int64](), 0, false
		},
	}
}
