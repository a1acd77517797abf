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

import (
	"fmt"
	"sync"
	"testing"
)

func TestRoundTripSmallCells(t *testing.T) {
	s := NewStream(0)
	w := NewWriter(s, 64, 8)
	want := []string{"a", "bb", "ccc", "", "dddd"}
	for _, v := range want {
		if err := w.Append([]byte(v)); err != nil {
			t.Fatalf("Append(%q): %v", v, err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	r := NewReader(s)
	var got []string
	for {
		c, ok, err := r.Next()
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, string(c.Data))
	}
	if len(got) != len(want) {
		t.Fatalf("got %d cells, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("cell %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLargeCellReference(t *testing.T) {
	s := NewStream(0)
	w := NewWriter(s, 64, 8)
	big := make([]byte, LargeThreshold+10)
	for i := range big {
		big[i] = byte('x')
	}
	if err := w.Append(big); err != nil {
		t.Fatal(err)
	}
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	r := NewReader(s)
	c, ok, err := r.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if !c.Large {
		t.Error("expected a large-cell reference")
	}
	if len(c.Data) != len(big) {
		t.Errorf("got %d bytes, want %d", len(c.Data), len(big))
	}
	_, ok, err = r.Next()
	if err != nil || ok {
		t.Errorf("expected EOF, got ok=%v err=%v", ok, err)
	}
}

func TestMultipleIndependentReaders(t *testing.T) {
	s := NewStream(0)
	w := NewWriter(s, 32, 4)
	for i := 0; i < 20; i++ {
		if err := w.Append([]byte(fmt.Sprintf("v%d", i))); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Finish(); err != nil {
		t.Fatal(err)
	}
	var wg sync.WaitGroup
	results := make([][]string, 3)
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			r := NewReader(s)
			for {
				c, ok, err := r.Next()
				if err != nil {
					t.Errorf("reader %d: %v", idx, err)
					return
				}
				if !ok {
					return
				}
				results[idx] = append(results[idx], string(c.Data))
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < 20; i++ {
		want := fmt.Sprintf("v%d", i)
		for r := range results {
			if results[r][i] != want {
				t.Errorf("reader %d cell %d = %q, want %q", r, i, results[r][i], want)
			}
		}
	}
}

func TestBackpressureBlocksWriterUntilRead(t *testing.T) {
	s := NewStream(1) // only one unobserved page allowed
	w := NewWriter(s, 8, 1)
	// Small packed page: each Append past the first forces a rotation.
	// The second Append's rotation takes the single permit, so the third
	// Append blocks until a reader crosses into the first published node.
	if err := w.Append([]byte("aaaa")); err != nil {
		t.Fatal(err)
	}
	if err := w.Append([]byte("bbbb")); err != nil {
		t.Fatal(err)
	}
	done := make(chan error, 1)
	go func() {
		done <- w.Append([]byte("cccc"))
	}()
	select {
	case err := <-done:
		t.Fatalf("third Append returned before any read (err=%v)", err)
	default:
	}
	r := NewReader(s)
	c, ok, err := r.Next()
	if err != nil || !ok {
		t.Fatalf("Next: ok=%v err=%v", ok, err)
	}
	if string(c.Data) != "aaaa" {
		t.Errorf("got %q, want aaaa", c.Data)
	}
	if err := <-done; err != nil {
		t.Fatalf("blocked Append returned error: %v", err)
	}
}

func TestCancelUnblocksReader(t *testing.T) {
	s := NewStream(0)
	r := NewReader(s)
	errc := make(chan error, 1)
	go func() {
		_, _, err := r.Next()
		errc <- err
	}()
	s.Cancel(nil)
	if err := <-errc; err != ErrCanceled {
		t.Errorf("got %v, want ErrCanceled", err)
	}
}
