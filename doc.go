// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wsdeque provides a lock-free work-stealing deque.
//
// The deque implements the Chase-Lev algorithm as refined for weak memory
// models ("Correct and Efficient Work-Stealing for Weak Memory Models",
// Lê et al.). One owner goroutine pushes and pops at the bottom end; any
// number of thief goroutines steal from the top end concurrently, with no
// locks anywhere in the hot path.
//
// # Quick Start
//
//	owner, thief := wsdeque.NewDeque[Task](1024)
//
//	// Owner goroutine
//	owner.Push(task)
//	t, err := owner.Pop()
//
//	// Thief goroutines (clone the handle, one clone per thread)
//	go func(th *wsdeque.Thief[Task]) {
//	    t, err := th.Steal()
//	    if err == nil {
//	        t.Run()
//	    }
//	}(thief.Clone())
//
// Builder API mirrors the rest of the ecosystem's fluent queue constructors:
//
//	owner, thief := wsdeque.Build[Task](wsdeque.New(1024).InitialCapacityLog(5))
//
// # Growth and Shrinkage
//
// The deque grows by doubling capacity when push would overflow the
// current buffer, leaving one slot of margin to avoid a boundary
// ambiguity between empty and full. It shrinks by halving when usage
// drops to a third of capacity or below, provided the number of elements
// still exceeds the configured initial floor (by default the initial
// capacity). Callers
// never observe capacity directly; Push always succeeds (barring
// allocation failure) regardless of how many items have been pushed.
//
// # Error Handling
//
// Pop and Steal return [ErrEmpty] when there is nothing to return, which
// covers both a genuinely empty deque and a race lost against a
// concurrent steal or pop. The two cases are indistinguishable to the
// caller by design; callers retry at their own discretion.
//
//	owner, thief := wsdeque.NewDeque[int](64)
//	owner.Push(42)
//	v, err := owner.Pop()
//	if wsdeque.IsEmpty(err) {
//	    // nothing to do
//	}
//
// ErrEmpty is sourced from [code.hybscloud.com/iox] for ecosystem
// consistency with [code.hybscloud.com/lfq]'s ErrWouldBlock.
//
// # Thread Safety
//
//   - Exactly one goroutine may hold and use an *Owner[T] at a time.
//   - Any number of goroutines may each hold a cloned *Thief[T]; Steal
//     is safe to call concurrently from all of them.
//   - Violating single-owner usage (two goroutines pushing/popping the
//     same Owner concurrently) causes undefined behavior including data
//     corruption, exactly as a moved-from handle would in the source
//     algorithm's move-only C++ types.
//
// # Reclamation
//
// Resizing never frees the old buffer immediately: thieves may still be
// reading from it. Instead, the owner tracks which buffer each thief last
// touched (via a per-thief "was idle" flag and "id last used" counter)
// and only drops its reference to a superseded buffer once every
// currently-active thief has moved past it. In Go this means the buffer
// becomes eligible for garbage collection rather than being explicitly
// freed, but the protocol deciding *when* that is safe is identical to
// the source algorithm's explicit-free version.
//
// # Race Detection
//
// Go's race detector tracks synchronization through mutexes, channels,
// and WaitGroups, not through explicit-ordering atomics on separate
// variables. The seq-cst-fence coordination between pop_bottom and steal
// is exactly this kind of cross-variable happens-before relationship, so
// some concurrent tests are skipped under -race via [RaceEnabled],
// mirroring [code.hybscloud.com/lfq]'s own test skips.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit memory
// ordering, and [code.hybscloud.com/spin] for CPU pause instructions in
// its backoff helpers.
package wsdeque
