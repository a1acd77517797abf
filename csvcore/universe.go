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

import (
	"github.com/latticeflow/csvcore/infer"
	"github.com/latticeflow/csvcore/token"
	"github.com/latticeflow/csvcore/typed"
)

// CustomBuilder lets a caller fold one additional CUSTOM-tagged parser
// into a column's universe (spec §6.2's parser "ordered set" is not
// limited to the built-in catalog). index and name identify the column
// being assembled; the builder registers its parser on b (typically via
// a call to infer.AddCustom[T], since the caller alone knows its concrete
// T). Its return value is the Sink object registered with that call,
// available to callers that want it directly; Coordinator itself instead
// recovers the winning Sink from infer.Column's own return, since that is
// the only way to tell two CUSTOM rungs apart once more than one is
// registered on the same column.
type CustomBuilder func(index int, name string, b *infer.Builder) any

// columnUniverse bundles one column's assembled Universe with the Sink
// object backing each DataType it can resolve to, so Coordinator.Run can
// hand the winning Sink back in the Result without re-deriving it.
type columnUniverse struct {
	universe infer.Universe
	sinks    map[typed.DataType]any
}

// buildDefaultUniverse assembles a column's Universe by calling every
// non-nil SinkFactory constructor spec.allows, wiring each into the
// typed package's matching Parser constructor (spec §4.7's default
// "increasing width" universe, restricted by the column's UniverseSpec).
// STRING always doubles as the null-parser: an empty or all-null column
// with no narrower type configured resolves to STRING (spec §4.7 step 1
// needs some null-parser whenever the universe is non-empty).
func buildDefaultUniverse(factory SinkFactory, spec infer.UniverseSpec, nullLiterals [][]byte, customs []CustomBuilder, index int, name string) columnUniverse {
	b := infer.NewBuilder(spec)
	sinks := map[typed.DataType]any{}

	if factory.NewByte != nil {
		sink, sentinel, hasSentinel := factory.NewByte()
		sinks[typed.Byte] = sink
		b.AddByte(typed.NewByteParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewShort != nil {
		sink, sentinel, hasSentinel := factory.NewShort()
		sinks[typed.Short] = sink
		b.AddShort(typed.NewShortParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewInt != nil {
		sink, sentinel, hasSentinel := factory.NewInt()
		sinks[typed.Int] = sink
		b.AddInt(typed.NewIntParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewLong != nil {
		sink, sentinel, hasSentinel := factory.NewLong()
		sinks[typed.Long] = sink
		b.AddLong(typed.NewLongParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewFloat != nil {
		sink, sentinel, hasSentinel := factory.NewFloat()
		sinks[typed.Float] = sink
		b.AddFloatFast(typed.NewFloatFastParser(sink, nullLiterals, sentinel, hasSentinel))
		b.AddFloatStrict(typed.NewFloatParser(sink, token.StdDoubleParser{}, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewDouble != nil {
		sink, sentinel, hasSentinel := factory.NewDouble()
		sinks[typed.Double] = sink
		b.AddDouble(typed.NewDoubleParser(sink, token.StdDoubleParser{}, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewTimestamp != nil {
		sink, sentinel, hasSentinel := factory.NewTimestamp()
		sinks[typed.TimestampAsLong] = sink
		b.SetSecondaryTimestamp(typed.NewTimestampParser(sink, token.ScaleSeconds, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewBoolean != nil {
		sink, sentinel, hasSentinel := factory.NewBoolean()
		sinks[typed.BooleanAsByte] = sink
		b.SetSecondaryBoolean(typed.NewBooleanParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	if factory.NewDatetime != nil {
		sink, sentinel, hasSentinel := factory.NewDatetime()
		sinks[typed.DatetimeAsLong] = sink
		b.SetSecondaryDatetime(typed.NewDatetimeParser(sink, nil, nullLiterals, sentinel, hasSentinel), nil)
	}
	if factory.NewChar != nil {
		sink, sentinel, hasSentinel := factory.NewChar()
		sinks[typed.Char] = sink
		b.AddChar(typed.NewCharParser(sink, nullLiterals, sentinel, hasSentinel))
	}
	// Custom Sinks are deliberately not recorded in sinks: typed.Custom is
	// one shared DataType across every registered custom parser, so a map
	// keyed by DataType cannot tell multiple custom rungs' Sinks apart.
	// infer.Column instead returns the winning CUSTOM rung's Sink
	// directly, which Coordinator.inferColumns uses in preference to this
	// map whenever CUSTOM wins.
	for _, custom := range customs {
		custom(index, name, b)
	}
	if factory.NewString != nil {
		sink, sentinel, hasSentinel := factory.NewString()
		sinks[typed.String] = sink
		b.AddString(typed.NewStringParser(sink, nullLiterals, sentinel, hasSentinel))
		b.SetNullParser(typed.String)
	}

	return columnUniverse{universe: b.Build(), sinks: sinks}
}
