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

package infer

import (
	"golang.org/x/exp/slices"

	"github.com/latticeflow/csvcore/token/calendar"
	"github.com/latticeflow/csvcore/typed"
)

// UniverseSpec restricts which of the built-in logical types (named as in
// spec §4.6.1: "BYTE", "INT", "STRING", "CUSTOM", ...) a column's universe
// includes. A zero UniverseSpec (nil Tags) means no restriction: every
// rung the caller registers with Builder participates. A caller-specified
// universe (spec §4.7's "user-specified ... parser universe") passes its
// tags here.
type UniverseSpec struct {
	Tags []string
}

func (u UniverseSpec) allows(tag string) bool {
	if u.Tags == nil {
		return true
	}
	return slices.Contains(u.Tags, tag)
}

// Universe is one column's assembled, ordered parser set: the numeric
// ladder in precedence order, the non-numeric sequence in precedence
// order, the secondary candidates step 5 sniffs ahead of CHAR, and the
// null-parser used for empty/all-null columns (spec §4.7's "effective
// parser universe").
type Universe struct {
	Numeric     []ladderRung
	NonNumeric  []ladderRung
	Secondaries []secondaryCandidate
	NullType    typed.DataType
	HasNull     bool
}

// total counts every configured rung, including secondary candidates --
// the size spec §4.7 step 2's "single-parser set" test checks.
func (u Universe) total() int {
	return len(u.Numeric) + len(u.NonNumeric) + len(u.Secondaries)
}

// only returns the sole configured rung when total() == 1.
func (u Universe) only() ladderRung {
	for _, r := range u.Numeric {
		return r
	}
	for _, r := range u.NonNumeric {
		return r
	}
	for _, c := range u.Secondaries {
		return c.rung
	}
	return ladderRung{}
}

// Builder assembles a Universe from a column's configured typed.Parser
// instances in spec §4.7's default "increasing width" order, filtered by
// an optional UniverseSpec restriction (spec §6.2's per-column parser
// override).
type Builder struct {
	spec UniverseSpec
	u    Universe
}

// NewBuilder starts a Universe assembly restricted to spec (pass
// UniverseSpec{} for the unrestricted default universe).
func NewBuilder(spec UniverseSpec) *Builder {
	return &Builder{spec: spec}
}

func (b *Builder) AddByte(p *typed.Parser[int8]) *Builder {
	if b.spec.allows("BYTE") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

func (b *Builder) AddShort(p *typed.Parser[int16]) *Builder {
	if b.spec.allows("SHORT") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

func (b *Builder) AddInt(p *typed.Parser[int32]) *Builder {
	if b.spec.allows("INT") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

func (b *Builder) AddLong(p *typed.Parser[int64]) *Builder {
	if b.spec.allows("LONG") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

// AddFloatFast and AddFloatStrict both register FLOAT rungs (spec §4.7
// step 4's "{..., float_fast, float_strict, double}"); call AddFloatFast
// before AddFloatStrict to preserve that precedence.
func (b *Builder) AddFloatFast(p *typed.Parser[float32]) *Builder {
	if b.spec.allows("FLOAT") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

func (b *Builder) AddFloatStrict(p *typed.Parser[float32]) *Builder {
	if b.spec.allows("FLOAT") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

func (b *Builder) AddDouble(p *typed.Parser[float64]) *Builder {
	if b.spec.allows("DOUBLE") {
		b.u.Numeric = append(b.u.Numeric, numericRungFrom(p))
	}
	return b
}

// SetSecondaryTimestamp registers the TIMESTAMP_AS_LONG secondary
// candidate sniffed in spec §4.7 step 5.
func (b *Builder) SetSecondaryTimestamp(p *typed.Parser[int64]) *Builder {
	if b.spec.allows("TIMESTAMP_AS_LONG") {
		b.u.Secondaries = append(b.u.Secondaries, secondaryTimestamp(p))
	}
	return b
}

// SetSecondaryBoolean registers the BOOLEAN_AS_BYTE secondary candidate.
func (b *Builder) SetSecondaryBoolean(p *typed.Parser[bool]) *Builder {
	if b.spec.allows("BOOLEAN_AS_BYTE") {
		b.u.Secondaries = append(b.u.Secondaries, secondaryBoolean(p))
	}
	return b
}

// SetSecondaryDatetime registers the DATETIME_AS_LONG secondary
// candidate, using zp to resolve zone mnemonics during both the sniff and
// the real parse.
func (b *Builder) SetSecondaryDatetime(p *typed.Parser[int64], zp calendar.ZoneParser) *Builder {
	if b.spec.allows("DATETIME_AS_LONG") {
		b.u.Secondaries = append(b.u.Secondaries, secondaryDatetime(p, zp))
	}
	return b
}

func (b *Builder) AddChar(p *typed.Parser[uint16]) *Builder {
	if b.spec.allows("CHAR") {
		b.u.NonNumeric = append(b.u.NonNumeric, nonNumericRungFrom(p.Type, p.TryParse))
	}
	return b
}

// AddCustom registers one CUSTOM-typed parser; callers with more than one
// custom type call this once per type, in the order spec §6.2's
// parser_for_name/parser_for_index configuration lists them. Every CUSTOM
// rung shares the single typed.Custom DataType, so the rung also carries
// p.Sink directly (as the generic T is only known here); Column returns
// the winning rung's sink so a caller with multiple custom parsers on one
// column can tell them apart without going through DataType.
func AddCustom[T comparable](b *Builder, p *typed.Parser[T]) *Builder {
	if b.spec.allows("CUSTOM") {
		r := nonNumericRungFrom(p.Type, p.TryParse)
		r.sink = any(p.Sink)
		b.u.NonNumeric = append(b.u.NonNumeric, r)
	}
	return b
}

func (b *Builder) AddString(p *typed.Parser[string]) *Builder {
	if b.spec.allows("STRING") {
		b.u.NonNumeric = append(b.u.NonNumeric, nonNumericRungFrom(p.Type, p.TryParse))
	}
	return b
}

// SetNullParser records the Sink/DataType used for an empty or all-null
// column (spec §4.7 step 1): instantiated without ever writing a value.
func (b *Builder) SetNullParser(dtype typed.DataType) *Builder {
	b.u.NullType = dtype
	b.u.HasNull = true
	return b
}

// Build returns the assembled Universe.
func (b *Builder) Build() Universe { return b.u }
