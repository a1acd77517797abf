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

// Command csvcoreload reads a CSV (or fixed-width) file through csvcore
// and prints the inferred schema, exercising the full
// grab/store/infer/csvcore pipeline end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/latticeflow/csvcore"
	"github.com/latticeflow/csvcore/grab"
)

var (
	path         string
	hasHeader    bool
	delimiter    string
	quote        string
	fixedWidth   bool
	concurrent   bool
	maxRows      int64
	trim         bool
	allowMissing bool
	ignoreExcess bool
)

func main() {
	flag.StringVar(&path, "f", "", "input file path")
	flag.BoolVar(&hasHeader, "header", true, "first row is a header")
	flag.StringVar(&delimiter, "d", ",", "field delimiter")
	flag.StringVar(&quote, "q", `"`, "quote character")
	flag.BoolVar(&fixedWidth, "fixed-width", false, "treat input as fixed-width columns, widths inferred from the header")
	flag.BoolVar(&concurrent, "concurrent", true, "drive column inference concurrently")
	flag.Int64Var(&maxRows, "max-rows", 0, "stop after this many data rows (0 means unlimited)")
	flag.BoolVar(&trim, "trim", false, "trim surrounding whitespace from quoted cells")
	flag.BoolVar(&allowMissing, "allow-missing-columns", false, "null-fill rows with too few cells instead of failing")
	flag.BoolVar(&ignoreExcess, "ignore-excess-columns", false, "drop extra cells from rows that are too long instead of failing")
	flag.Parse()

	if path == "" {
		flag.Usage()
		os.Exit(2)
	}

	f, err := os.Open(path)
	if err != nil {
		log.Fatalf("csvcoreload: %v", err)
	}
	defer f.Close()

	cfg := csvcore.DefaultConfig()
	cfg.HasHeaderRow = hasHeader
	cfg.HasFixedWidthColumns = fixedWidth
	cfg.Concurrent = concurrent
	cfg.MaxRows = maxRows
	cfg.Trim = trim
	cfg.AllowMissingColumns = allowMissing
	cfg.IgnoreExcessColumns = ignoreExcess
	if !fixedWidth {
		if len(delimiter) != 1 {
			log.Fatalf("csvcoreload: -d must be exactly one byte")
		}
		cfg.Delimiter = delimiter[0]
		if len(quote) != 1 {
			log.Fatalf("csvcoreload: -q must be exactly one byte")
		}
		cfg.Quote = quote[0]
	}
	cfg.Escape = grab.NoEscape

	co := csvcore.NewCoordinator(cfg, csvcore.DefaultSinkFactory())
	result, err := co.Run(context.Background(), f)
	if err != nil {
		log.Fatalf("csvcoreload: %v", err)
	}

	fmt.Printf("%d rows\n", result.RowCount)
	for _, col := range result.Columns {
		fmt.Printf("  %-24s %s\n", col.Name, col.Type)
	}
}
