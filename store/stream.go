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
	"errors"
	"sync"
)

// ErrCanceled is returned by Writer/Reader operations once a Stream has been
// canceled (spec §7's Canceled taxon).
var ErrCanceled = errors.New("store: stream canceled")

// queueNode is one link of a column's FIFO (spec §3's QueueNode). Every
// field but next and appendObserved is immutable once published; next
// transitions nil -> non-nil exactly once, guarded by the owning Stream's
// lock.
type queueNode struct {
	packed      []byte
	large       [][]byte
	next        *queueNode
	// appendObserved is set the first time any reader crosses from this
	// node into next; only that first crosser releases a backpressure
	// permit (spec §4.4).
	appendObserved bool
}

// Stream is the shared, multi-reader FIFO backing one column's DenseStorage
// (spec §4.4). One Writer publishes queueNodes; any number of Readers
// consume them independently, each with its own cursor.
type Stream struct {
	mu   sync.Mutex
	cond *sync.Cond

	root *queueNode // sentinel; root.next is the first published node
	tail *queueNode // last published node (== root before anything is published)

	finished bool // Finish was called and the tail carries the terminal node
	canceled bool
	cancelErr error

	permits chan struct{} // counting semaphore, spec §4.4/§9
	// concurrent controls whether backpressure blocks at all; single
	// threaded callers (spec §5, "non-concurrent mode") pass 0 here and
	// acquire/release become no-ops.
	concurrent bool
}

// NewStream creates a Stream with the given backpressure bound. A
// maxUnobservedPages of 0 disables backpressure entirely (the
// single-threaded/non-concurrent mode spec §5 describes).
func NewStream(maxUnobservedPages int) *Stream {
	s := &Stream{root: &queueNode{}}
	s.tail = s.root
	s.cond = sync.NewCond(&s.mu)
	if maxUnobservedPages > 0 {
		s.concurrent = true
		s.permits = make(chan struct{}, maxUnobservedPages)
		for i := 0; i < maxUnobservedPages; i++ {
			s.permits <- struct{}{}
		}
	}
	return s
}

// Cancel marks the stream canceled: blocked writers and readers unblock and
// return ErrCanceled (or the wrapped err, if non-nil). Safe to call more
// than once; only the first call's err is kept.
func (s *Stream) Cancel(err error) {
	s.mu.Lock()
	if !s.canceled {
		s.canceled = true
		if err != nil {
			s.cancelErr = err
		} else {
			s.cancelErr = ErrCanceled
		}
	}
	s.mu.Unlock()
	s.cond.Broadcast()
}

func (s *Stream) err() error {
	if s.canceled {
		return s.cancelErr
	}
	return nil
}

// acquire blocks until a backpressure permit is available or the stream is
// canceled.
func (s *Stream) acquire() error {
	if !s.concurrent {
		return nil
	}
	s.mu.Lock()
	canceled := s.canceled
	s.mu.Unlock()
	if canceled {
		return s.err()
	}
	select {
	case <-s.permits:
		return nil
	default:
	}
	// Slow path: wait on the condition variable so Cancel can wake us
	// without the writer spinning on the channel.
	for {
		select {
		case <-s.permits:
			return nil
		default:
		}
		s.mu.Lock()
		if s.canceled {
			err := s.err()
			s.mu.Unlock()
			return err
		}
		s.cond.Wait()
		s.mu.Unlock()
	}
}

// publish appends node to the tail and wakes any blocked readers.
func (s *Stream) publish(node *queueNode) {
	s.mu.Lock()
	s.tail.next = node
	s.tail = node
	s.mu.Unlock()
	s.cond.Broadcast()
}

// markFinished records that the tail node is terminal: no further nodes
// will ever be published.
func (s *Stream) markFinished() {
	s.mu.Lock()
	s.finished = true
	s.mu.Unlock()
	s.cond.Broadcast()
}

// waitNext blocks until node.next is non-nil, the stream is finished with no
// successor (EOF), or the stream is canceled. It returns the successor (or
// nil at EOF) and whether this call is the first to observe that
// particular transition.
func (s *Stream) waitNext(node *queueNode) (next *queueNode, firstObserver bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if node.next != nil {
			first := !node.appendObserved
			node.appendObserved = true
			return node.next, first, nil
		}
		if s.finished {
			return nil, false, nil
		}
		if s.canceled {
			return nil, false, s.err()
		}
		s.cond.Wait()
	}
}
