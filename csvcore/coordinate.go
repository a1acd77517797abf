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
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/latticeflow/csvcore/grab"
	"github.com/latticeflow/csvcore/infer"
	"github.com/latticeflow/csvcore/store"
	"github.com/latticeflow/csvcore/typed"
)

// Coordinator is the small framing layer of spec §4.8: it reads skipped
// rows and an optional header, then dispatches cells to N per-column
// DenseStorage writers and drives N inference tasks, one per column
// (spec §5's "coarse-grained parallel tasks with message passing through
// DenseStorage").
type Coordinator struct {
	Config  Config
	Factory SinkFactory
	Customs []CustomBuilder
}

// NewCoordinator returns a Coordinator ready to Run against cfg and
// factory. customs registers any CUSTOM-tagged parsers alongside the
// built-in universe; pass nil when none are needed.
func NewCoordinator(cfg Config, factory SinkFactory, customs ...CustomBuilder) *Coordinator {
	return &Coordinator{Config: cfg, Factory: factory, Customs: customs}
}

// Run executes the full pipeline against r and returns the assembled
// Result. ctx is checked between cells while rows are distributed:
// canceling it stops distribution with a TaxonCanceled *Error. It does not
// wake a writer already blocked on backpressure, and it is not consulted
// once column inference has started.
func (co *Coordinator) Run(ctx context.Context, r io.Reader) (Result, error) {
	cfg := co.Config
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}

	br := bufio.NewReaderSize(r, 64*1024)
	for i := 0; i < cfg.SkipRows; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			break
		}
	}

	widths := cfg.FixedColumnWidths
	var headerNames []string
	var ignoredTrailing int

	if cfg.HasHeaderRow {
		for i := 0; i < cfg.SkipHeaderRows; i++ {
			if _, err := br.ReadString('\n'); err != nil {
				break
			}
		}
		line, err := br.ReadString('\n')
		if line == "" && err != nil {
			return Result{}, headerErr("could not read a header row: %v", err)
		}
		line = strings.TrimRight(line, "\r\n")
		if cfg.HasFixedWidthColumns {
			if widths == nil {
				widths, err = grab.InferColumnWidths([]byte(line), cfg.widthConvention())
				if err != nil {
					return Result{}, headerErr("%v", err)
				}
			}
			headerNames = splitFixedWidthLine([]byte(line), widths, cfg.widthConvention())
		} else {
			headerNames, err = splitDelimitedLine(line, cfg)
			if err != nil {
				return Result{}, err
			}
		}
	} else if cfg.HasFixedWidthColumns {
		if widths == nil {
			return Result{}, headerErr("fixed-width mode without a header row requires fixed_column_widths")
		}
		headerNames = make([]string, len(widths))
	} else if len(cfg.Headers) > 0 {
		headerNames = make([]string, len(cfg.Headers))
	} else {
		return Result{}, headerErr("unable to determine column count: no header row, fixed_column_widths, or headers override configured")
	}

	// Trailing empty header columns are phantom columns whose data cells
	// must be empty and are dropped rather than distributed (spec §4.8).
	// This only applies when a real header row was read; placeholder
	// names synthesized below for a headerless column count are not
	// header cells and must not be mistaken for phantom trailing columns.
	if cfg.HasHeaderRow {
		for len(headerNames) > 0 && headerNames[len(headerNames)-1] == "" {
			headerNames = headerNames[:len(headerNames)-1]
			ignoredTrailing++
		}
	}

	names, err := co.legalizeHeaders(headerNames)
	if err != nil {
		return Result{}, err
	}
	numColumns := len(names)
	totalPhysical := numColumns + ignoredTrailing

	maxUnobserved := 0
	if cfg.Concurrent {
		maxUnobserved = store.DefaultMaxUnobservedPages
	}
	streams := make([]*store.Stream, numColumns)
	writers := make([]*store.Writer, numColumns)
	for i := range streams {
		streams[i] = store.NewStream(maxUnobserved)
		writers[i] = store.NewWriter(streams[i], store.DefaultPackedPageSize, store.DefaultLargePageEntries)
	}

	var grabber grab.CellGrabber
	if cfg.HasFixedWidthColumns {
		grabber = grab.NewFixedWidthGrabber(br, widths, cfg.widthConvention())
	} else {
		grabber = grab.NewDelimitedGrabber(br, cfg.grabberConfig())
	}
	// SkipRows, SkipHeaderRows and the header row itself were consumed
	// directly off br before the grabber was constructed, so its own row
	// counter starts at zero: offset it so Row() keeps reporting the true
	// physical (1-based) file row, per spec §7.
	baseRow := int64(cfg.SkipRows)
	if cfg.HasHeaderRow {
		baseRow += int64(cfg.SkipHeaderRows) + 1
	}
	grabber.SetBaseRow(baseRow)

	firstNull := make([][]byte, numColumns)
	for i, name := range names {
		lits := cfg.nullLiteralsFor(i, name)
		if len(lits) > 0 {
			firstNull[i] = lits[0]
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := co.distributeRows(gctx, grabber, writers, numColumns, totalPhysical, firstNull)
		if err != nil {
			for _, s := range streams {
				s.Cancel(err)
			}
			return err
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	return co.inferColumns(ctx, streams, names, cfg)
}

func (co *Coordinator) legalizeHeaders(raw []string) ([]string, error) {
	cfg := co.Config
	names := make([]string, len(raw))
	copy(names, raw)
	for i, override := range cfg.Headers {
		if i < len(names) {
			names[i] = override
		}
	}
	for i, override := range cfg.HeadersByIndex {
		if i >= 0 && i < len(names) {
			names[i] = override
		}
	}
	for i, name := range names {
		if cfg.HeaderLegalizer != nil {
			name = cfg.HeaderLegalizer(name, i)
			names[i] = name
		}
		if cfg.HeaderValidator != nil && !cfg.HeaderValidator(name, i) {
			return nil, headerErr("column %d name %q rejected by header_validator", i, name)
		}
	}
	seen := make(map[string]int, len(names))
	for i, name := range names {
		if prev, ok := seen[name]; ok {
			return nil, headerErr("duplicate column name %q at indices %d and %d", name, prev, i)
		}
		seen[name] = i
	}
	return names, nil
}

// distributeRows runs the single-task grabber/writer loop of spec §4.8,
// applying the short/long/empty-row policies before handing a row off to
// its column writers.
func (co *Coordinator) distributeRows(ctx context.Context, grabber grab.CellGrabber, writers []*store.Writer, numColumns, totalPhysical int, firstNull [][]byte) error {
	cfg := co.Config
	col := 0
	var rowsWritten int64
	excess := false

	finish := func() error {
		for _, w := range writers {
			if err := w.Finish(); err != nil {
				return ioErr("%v", err)
			}
		}
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return newError(TaxonCanceled, -1, "", 0, ErrCanceled, "%v", ErrCanceled)
		default:
		}

		cell, last, eof, err := grabber.Next()
		if err != nil {
			return wrapGrabErr(err, grabber.Row())
		}

		if col == 0 && last && cell.Empty() && cfg.IgnoreEmptyLines {
			if eof {
				return finish()
			}
			continue
		}

		switch {
		case col < numColumns:
			data := append([]byte(nil), cell.Data()...)
			if err := writers[col].Append(data); err != nil {
				return ioErr("column %d: %v", col, err)
			}
		case col < totalPhysical:
			if !cell.Empty() {
				return headerErr("row %d: trailing column %d must be empty (implied by a blank trailing header)", grabber.Row(), col)
			}
		default:
			excess = true
		}
		col++

		if last {
			if excess && !cfg.IgnoreExcessColumns {
				return longRowErr(grabber.Row(), col)
			}
			if col < numColumns {
				if !cfg.AllowMissingColumns {
					return shortRowErr(grabber.Row(), col)
				}
				for ; col < numColumns; col++ {
					if err := writers[col].Append(firstNull[col]); err != nil {
						return ioErr("column %d: %v", col, err)
					}
				}
			}
			rowsWritten++
			col = 0
			excess = false
			if cfg.MaxRows > 0 && rowsWritten >= cfg.MaxRows {
				return finish()
			}
		}
		if eof {
			return finish()
		}
	}
}

// inferColumns runs infer.Column once per column, concurrently when
// Config.Concurrent is set (spec §5's N inference tasks), and assembles
// the Result.
func (co *Coordinator) inferColumns(ctx context.Context, streams []*store.Stream, names []string, cfg Config) (Result, error) {
	results := make([]ColumnResult, len(streams))
	g, _ := errgroup.WithContext(ctx)
	if !cfg.Concurrent {
		g.SetLimit(1)
	}
	for i := range streams {
		i := i
		g.Go(func() error {
			name := names[i]
			nullLiterals := cfg.nullLiteralsFor(i, name)
			spec := cfg.universeSpecFor(i, name)
			cu := buildDefaultUniverse(co.Factory, spec, nullLiterals, co.Customs, i, name)
			stream := streams[i]
			newIter := func() typed.CellIterator {
				return typed.NewStoreIterator(store.NewReader(stream))
			}
			dtype, customSink, err := infer.Column(cu.universe, newIter, nullLiterals)
			if err != nil {
				for _, s := range streams {
					s.Cancel(err)
				}
				return columnErr(i, name, err)
			}
			// customSink is only non-nil when a CUSTOM rung won: every
			// custom parser shares the single typed.Custom DataType, so
			// cu.sinks (keyed by DataType) cannot tell two custom rungs'
			// Sinks apart on its own.
			sink := cu.sinks[dtype]
			if customSink != nil {
				sink = customSink
			}
			results[i] = ColumnResult{Name: name, Type: dtype, Index: i, Sink: sink}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	var rows int64
	if len(results) > 0 {
		if s, ok := results[0].Sink.(interface{ Len() int }); ok {
			rows = int64(s.Len())
		}
	}
	return Result{RowCount: rows, Columns: results}, nil
}

func splitDelimitedLine(line string, cfg Config) ([]string, error) {
	grabber := grab.NewDelimitedGrabber(strings.NewReader(line+"\n"), cfg.grabberConfig())
	var names []string
	for {
		cell, last, eof, err := grabber.Next()
		if err != nil {
			return nil, malformedErr(err)
		}
		names = append(names, cell.String())
		if last {
			return names, nil
		}
		if eof {
			return names, nil
		}
	}
}

func splitFixedWidthLine(line []byte, widths []int, conv grab.WidthConvention) []string {
	byteWidths := grab.ColumnWidths(line, widths, conv)
	names := make([]string, len(byteWidths))
	off := 0
	for i, w := range byteWidths {
		end := off + w
		if end > len(line) {
			end = len(line)
		}
		names[i] = strings.TrimSpace(string(line[off:end]))
		off = end
	}
	return names
}

func headerErr(format string, args ...any) error {
	return newError(TaxonHeaderError, -1, "", 0, nil, format, args...)
}

func ioErr(format string, args ...any) error {
	return newError(TaxonIO, -1, "", 0, nil, format, args...)
}

func malformedErr(cause error) error {
	return wrapGrabErr(cause, 0)
}

// wrapGrabErr classifies an error surfaced by a grab.CellGrabber into the
// matching Taxon (spec §7's MalformedQuoting/MalformedEscape).
func wrapGrabErr(cause error, row int64) error {
	taxon := TaxonIO
	switch {
	case errors.Is(cause, grab.ErrMalformedQuoting):
		taxon = TaxonMalformedQuoting
	case errors.Is(cause, grab.ErrMalformedEscape):
		taxon = TaxonMalformedEscape
	}
	return newError(taxon, -1, "", row, cause, "%v", cause)
}

func shortRowErr(row int64, reached int) error {
	return newError(TaxonShortRow, -1, "", row, nil, "row has only %d cells", reached)
}

func longRowErr(row int64, reached int) error {
	return newError(TaxonLongRow, -1, "", row, nil, "row has excess cells beyond column %d", reached)
}

// columnErr wraps a column-inference failure, lifting an *infer.LadderError's
// parser name, consumed-cell count, and offending cell into structured
// *Error fields (spec §7: "a parse that fails deep inside a chunk must
// include the parser's canonical name, the number of cells successfully
// processed, and either the offending cell or the column's first non-null
// cell").
func columnErr(index int, name string, cause error) error {
	e := &Error{
		Taxon:  TaxonParseFailure,
		Column: index,
		Name:   name,
		Cause:  cause,
	}
	var le *infer.LadderError
	if errors.As(cause, &le) {
		e.Parser = le.DataType.String()
		e.Consumed = le.Consumed
		if le.HasCell {
			e.Cell = le.Cell
		}
		e.Message = fmt.Sprintf("%s parser stopped after %d cells at cell %q", e.Parser, e.Consumed, e.Cell)
	} else {
		e.Message = fmt.Sprintf("inference failed: %v", cause)
	}
	return e
}
