// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque_test

import (
	"testing"

	"code.hybscloud.com/wsdeque"
)

// =============================================================================
// Basic Operations
// =============================================================================

// TestEmptyPop verifies Pop on a freshly-built deque reports ErrEmpty.
func TestEmptyPop(t *testing.T) {
	owner, _ := wsdeque.NewDeque[int](4)

	if _, err := owner.Pop(); !wsdeque.IsEmpty(err) {
		t.Fatalf("Pop on empty: got %v, want ErrEmpty", err)
	}
}

// TestEmptySteal verifies Steal on a freshly-built deque reports ErrEmpty.
func TestEmptySteal(t *testing.T) {
	_, thief := wsdeque.NewDeque[int](4)

	if _, err := thief.Steal(); !wsdeque.IsEmpty(err) {
		t.Fatalf("Steal on empty: got %v, want ErrEmpty", err)
	}
}

// TestPopLIFOOrder verifies the owner observes its own pushes in LIFO
// order through Pop.
func TestPopLIFOOrder(t *testing.T) {
	owner, _ := wsdeque.NewDeque[int](4)

	for i := range 4 {
		owner.Push(i + 100)
	}

	for i := 3; i >= 0; i-- {
		v, err := owner.Pop()
		if err != nil {
			t.Fatalf("Pop(%d): %v", i, err)
		}
		if v != i+100 {
			t.Fatalf("Pop(%d): got %d, want %d", i, v, i+100)
		}
	}

	if _, err := owner.Pop(); !wsdeque.IsEmpty(err) {
		t.Fatalf("Pop on drained deque: got %v, want ErrEmpty", err)
	}
}

// TestStealFIFOOrder verifies a single thief observes pushes in FIFO
// order through Steal.
func TestStealFIFOOrder(t *testing.T) {
	owner, thief := wsdeque.NewDeque[int](4)

	for i := range 4 {
		owner.Push(i + 100)
	}

	for i := range 4 {
		v, err := thief.Steal()
		if err != nil {
			t.Fatalf("Steal(%d): %v", i, err)
		}
		if v != i+100 {
			t.Fatalf("Steal(%d): got %d, want %d", i, v, i+100)
		}
	}

	if _, err := thief.Steal(); !wsdeque.IsEmpty(err) {
		t.Fatalf("Steal on drained deque: got %v, want ErrEmpty", err)
	}
}

// TestPushStealRoundTrip verifies interleaved push/steal preserves
// FIFO order at the top end.
func TestPushStealRoundTrip(t *testing.T) {
	owner, thief := wsdeque.NewDeque[int](2)

	for i := range 3 {
		owner.Push(i)
		v, err := thief.Steal()
		if err != nil {
			t.Fatalf("Steal(%d): %v", i, err)
		}
		if v != i {
			t.Fatalf("Steal(%d): got %d, want %d", i, v, i)
		}
	}
}

// TestLastItemRace has the owner and a single thief race for the
// single remaining item: exactly one of Pop or Steal must succeed,
// never both.
func TestLastItemRace(t *testing.T) {
	for trial := range 1000 {
		owner, thief := wsdeque.NewDeque[int](2)
		owner.Push(trial)

		popOK := make(chan bool, 1)

		go func() {
			_, err := owner.Pop()
			popOK <- err == nil
		}()
		_, stealErr := thief.Steal()
		gotPop := <-popOK
		gotSteal := stealErr == nil

		if gotPop && gotSteal {
			t.Fatalf("trial %d: both Pop and Steal succeeded on the same item", trial)
		}
		if !gotPop && !gotSteal {
			t.Fatalf("trial %d: neither Pop nor Steal succeeded though one item was pushed", trial)
		}
	}
}

// TestCapRounding verifies capacity rounds up to the next power of two.
func TestCapRounding(t *testing.T) {
	owner, _ := wsdeque.NewDeque[int](5)
	if got := owner.Cap(); got != 8 {
		t.Fatalf("Cap: got %d, want 8", got)
	}
}

// TestCapacityPanicsBelowMinimum verifies New panics for capacity < 2,
// matching the algorithm's requirement for a non-degenerate initial
// buffer.
func TestCapacityPanicsBelowMinimum(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("New(1) did not panic")
		}
	}()
	wsdeque.New(1)
}

// TestBuilderInitialCapacityLog verifies the builder's explicit
// shrink-floor override takes effect as the initial buffer size.
func TestBuilderInitialCapacityLog(t *testing.T) {
	owner, _ := wsdeque.Build[int](wsdeque.New(1024).InitialCapacityLog(5))
	if got := owner.Cap(); got != 32 {
		t.Fatalf("Cap: got %d, want 32", got)
	}
}
