// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wsdeque

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// thiefNode is a per-thief record tracking which buffer a thief last
// observed and whether it is currently mid-steal. The owner walks the
// list (never modifying it) during reclamation to compute the oldest
// buffer generation any active thief could still be reading.
//
// Nodes are only ever appended, never unlinked or removed: doing so
// safely would need hazard pointers or epoch reclamation of its own,
// machinery that would dwarf the deque it's meant to serve. For
// realistic thread counts the cost of scanning dead entries is
// negligible.
type thiefNode struct {
	idLastUsed atomix.Int64
	wasIdle    atomix.Bool
	next       *thiefNode
}

// thiefRegistry is the lock-free append-only list of thiefNode records,
// headed by an atomic pointer so new thieves can register without
// coordinating with the owner's reclamation scan.
type thiefRegistry struct {
	head atomic.Pointer[thiefNode]
}

// register appends a fresh, idle thiefNode to the registry and returns it.
func (r *thiefRegistry) register() *thiefNode {
	n := &thiefNode{}
	n.wasIdle.StoreRelaxed(true)
	for {
		head := r.head.Load()
		n.next = head
		if r.head.CompareAndSwap(head, n) {
			return n
		}
	}
}

// minActiveID returns the smallest last-used buffer id recorded by a
// currently non-idle thief, or floor if no thief is active or none has
// recorded an id smaller than floor.
func (r *thiefRegistry) minActiveID(floor int64) int64 {
	minID := floor
	for n := r.head.Load(); n != nil; n = n.next {
		if !n.wasIdle.LoadAcquire() {
			if last := n.idLastUsed.LoadRelaxed(); last < minID {
				minID = last
			}
		}
	}
	return minID
}
