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
	"github.com/latticeflow/csvcore/grab"
	"github.com/latticeflow/csvcore/infer"
)

// HeaderLegalizer rewrites a raw header cell into a column name (spec
// §6.2's "pure function over names"), e.g. trimming or deduplicating.
type HeaderLegalizer func(raw string, index int) string

// HeaderValidator reports whether a legalized column name is acceptable;
// returning false surfaces a HeaderError.
type HeaderValidator func(name string, index int) bool

// Config enumerates every option spec §6.2 lists. The zero Config is not
// directly usable: Delimiter and Quote default to 0, not ',' and '"', so
// callers should start from DefaultConfig and override fields.
type Config struct {
	HasHeaderRow   bool
	SkipHeaderRows int
	SkipRows       int
	MaxRows        int64 // 0 means unlimited

	Headers         []string     // override list, applied positionally
	HeadersByIndex  map[int]string // sparse override

	UniverseSpec        infer.UniverseSpec // default parser universe restriction
	UniverseSpecForName  map[string]infer.UniverseSpec
	UniverseSpecForIndex map[int]infer.UniverseSpec

	NullValueLiterals         [][]byte // default: {""}
	NullValueLiteralsForName  map[string][][]byte
	NullValueLiteralsForIndex map[int][][]byte

	Delimiter               byte
	Quote                   byte
	Escape                  int32 // grab.NoEscape disables
	IgnoreSurroundingSpaces bool
	Trim                    bool
	IgnoreEmptyLines        bool
	AllowMissingColumns     bool
	IgnoreExcessColumns     bool

	HasFixedWidthColumns      bool
	FixedColumnWidths         []int // nil means infer from the header row
	UseUTF32CountingConvention bool

	Concurrent bool

	HeaderLegalizer HeaderLegalizer
	HeaderValidator HeaderValidator
}

// DefaultConfig returns the spec §6.2 defaults.
func DefaultConfig() Config {
	return Config{
		NullValueLiterals:          [][]byte{{}},
		Delimiter:                  ',',
		Quote:                      '"',
		Escape:                     grab.NoEscape,
		IgnoreSurroundingSpaces:    true,
		UseUTF32CountingConvention: true,
		Concurrent:                 true,
	}
}

// Validate applies spec §6.2's validation rules, returning a ConfigError
// wrapping the first violation found.
func (c Config) Validate() error {
	if !c.HasFixedWidthColumns {
		if c.Delimiter >= 0x80 {
			return configErr("delimiter must be 7-bit ASCII")
		}
		if c.Quote >= 0x80 {
			return configErr("quote must be 7-bit ASCII")
		}
		if c.Escape != grab.NoEscape {
			if c.Escape < 0 || c.Escape >= 0x80 {
				return configErr("escape must be 7-bit ASCII or disabled")
			}
			if byte(c.Escape) == c.Quote {
				return configErr("escape must not equal quote")
			}
			if byte(c.Escape) == c.Delimiter {
				return configErr("escape must not equal delimiter")
			}
		}
	}
	if c.SkipHeaderRows < 0 {
		return configErr("skip_header_rows must be non-negative")
	}
	if c.SkipRows < 0 {
		return configErr("skip_rows must be non-negative")
	}
	if c.SkipHeaderRows > 0 && !c.HasHeaderRow {
		return configErr("skip_header_rows > 0 requires has_header_row")
	}
	for _, w := range c.FixedColumnWidths {
		if w < 1 {
			return configErr("fixed column widths must all be >= 1")
		}
	}
	if c.HasFixedWidthColumns {
		if c.Trim {
			return configErr("fixed-width mode forbids trim")
		}
	} else if len(c.FixedColumnWidths) > 0 {
		return configErr("delimited mode forbids fixed_column_widths")
	}
	return nil
}

func configErr(format string, args ...any) error {
	return newError(TaxonConfigError, -1, "", 0, nil, format, args...)
}

// widthConvention maps the boolean configuration flag to grab's enum.
func (c Config) widthConvention() grab.WidthConvention {
	if c.UseUTF32CountingConvention {
		return grab.WidthUTF32
	}
	return grab.WidthUTF16
}

func (c Config) grabberConfig() grab.Config {
	return grab.Config{
		Delimiter:               c.Delimiter,
		Quote:                   c.Quote,
		Escape:                  c.Escape,
		IgnoreSurroundingSpaces: c.IgnoreSurroundingSpaces,
		Trim:                    c.Trim,
	}
}

func (c Config) universeSpecFor(index int, name string) infer.UniverseSpec {
	if s, ok := c.UniverseSpecForIndex[index]; ok {
		return s
	}
	if s, ok := c.UniverseSpecForName[name]; ok {
		return s
	}
	return c.UniverseSpec
}

func (c Config) nullLiteralsFor(index int, name string) [][]byte {
	if l, ok := c.NullValueLiteralsForIndex[index]; ok {
		return l
	}
	if l, ok := c.NullValueLiteralsForName[name]; ok {
		return l
	}
	if c.NullValueLiterals != nil {
		return c.NullValueLiterals
	}
	return [][]byte{{}}
}
