// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

import (
	"context"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/spin"
)

// Thief is the steal end of a work-stealing deque.
//
// Any number of Thief handles may exist at once: Clone a Thief once per
// thief goroutine before spawning it. Steal is safe to call concurrently
// from every clone.
type Thief[T any] struct {
	d    *deque[T]
	node *thiefNode
}

// Clone returns an independent Thief handle registered with its own
// thiefNode, intended for a new thief goroutine. The clone shares the
// underlying deque with the handle it was cloned from.
func (th *Thief[T]) Clone() *Thief[T] {
	return &Thief[T]{d: th.d, node: th.d.thieves.register()}
}

// Steal removes and returns the element at the top of the deque, or
// ErrEmpty if the deque is empty or the attempt lost a race against
// another Steal or the owner's Pop.
//
// Steal brackets the attempt with its own idle flag: the flag is false
// while the steal is in flight and the buffer id it may have observed is
// recorded immediately afterward, which is what lets the owner's
// reclamation pass know it is safe to drop older buffers once every
// thief has gone idle at least once since.
func (th *Thief[T]) Steal() (T, error) {
	th.node.wasIdle.StoreRelease(false)
	v, err := th.d.steal()
	th.node.wasIdle.StoreRelease(true)

	a := th.d.buf.Load()
	th.node.idLastUsed.StoreRelaxed(a.id)

	return v, err
}

// StealBackoff repeatedly calls Steal, backing off between attempts
// (a tight CPU-pause spin first, then an adaptive backoff) until it
// succeeds or ctx is done. It returns ctx.Err() if ctx is cancelled
// before an item is obtained.
//
// Steal itself never blocks; StealBackoff is a convenience for
// schedulers that want a retry loop rather than hand-rolling one, in the
// style of this ecosystem's backoff idiom (iox.Backoff).
func (th *Thief[T]) StealBackoff(ctx context.Context) (T, error) {
	sw := spin.Wait{}
	backoff := iox.Backoff{}
	spins := 0
	for {
		v, err := th.Steal()
		if err == nil {
			return v, nil
		}
		select {
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		default:
		}
		if spins < spinBudget {
			sw.Once()
			spins++
			continue
		}
		backoff.Wait()
	}
}

// spinBudget bounds how many tight CPU-pause spins StealBackoff attempts
// before falling back to iox.Backoff's adaptive wait.
const spinBudget = 64
