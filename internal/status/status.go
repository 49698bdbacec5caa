// Copyright 2020 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import "sync/atomic"

// atomicOr and atomicAnd provide the behavior of atomic.Uint64's Or/And
// methods (added in Go 1.23) on the Go 1.21 toolchain this module builds
// with. They return the value held before the operation, matching the
// stdlib semantics relied upon below.
func atomicOr(v *atomic.Uint64, mask uint64) uint64 {
	for {
		old := v.Load()
		if v.CompareAndSwap(old, old|mask) {
			return old
		}
	}
}

func atomicAnd(v *atomic.Uint64, mask uint64) uint64 {
	for {
		old := v.Load()
		if v.CompareAndSwap(old, old&mask) {
			return old
		}
	}
}

// bit layout, from the MSB down: 1 bit cancelled, 1 bit waiting,
// 31 bits ready count, 31 bits pending count.
const (
	cancelled uint64 = 1 << 63
	waiting   uint64 = 1 << 62

	oneReady    uint64 = 1 << 31
	maskReady   uint64 = 0x7FFFFFFF << 31
	onePending  uint64 = 1
	maskPending uint64 = 0x7FFFFFFF

	negOnePending uint64 = ^onePending + 1
)

// GroupStatus is the atomic status word of a task group. The zero value
// is the correct initial state: not cancelled, no waiter, nothing ready
// or pending.
type GroupStatus struct {
	v atomic.Uint64
}

// Snapshot is a point-in-time, non-atomic view of a GroupStatus value,
// returned by every method below so callers can reason about the
// post-state of their call without a second load.
type Snapshot uint64

func (s Snapshot) IsCancelled() bool { return uint64(s)&cancelled != 0 }
func (s Snapshot) IsWaiting() bool   { return uint64(s)&waiting != 0 }
func (s Snapshot) Ready() uint32     { return uint32((uint64(s) & maskReady) >> 31) }
func (s Snapshot) Pending() uint32   { return uint32(uint64(s) & maskPending) }

func (s Snapshot) withoutWaitingOneReadyOnePending() Snapshot {
	return Snapshot(uint64(s) - waiting - oneReady - onePending)
}

func (s Snapshot) withoutOneReadyOnePending() Snapshot {
	return Snapshot(uint64(s) - oneReady - onePending)
}

// Load reads the current status with a relaxed (plain) atomic load.
// Used by IsEmpty/IsCancelled, which don't need to synchronize with
// anything beyond observing the latest counters.
func (g *GroupStatus) Load() Snapshot {
	return Snapshot(g.v.Load())
}

// MarkCancelled sets the cancelled bit and returns the status as it was
// immediately before this call. The caller uses the previous value to
// tell whether it was the first to cancel the group.
func (g *GroupStatus) MarkCancelled() Snapshot {
	old := atomicOr(&g.v, cancelled)
	return Snapshot(old)
}

// MarkWaiting sets the waiting bit and returns the *post*-OR status,
// i.e. the state as the caller should assume it to be immediately after
// this call. Only the single permitted consumer may call this, right
// before it parks.
func (g *GroupStatus) MarkWaiting() Snapshot {
	old := atomicOr(&g.v, waiting)
	return Snapshot(old | waiting)
}

// ClearWaiting clears the waiting bit. Used when the consumer decides
// not to park after all (e.g. the group turned out to be empty).
func (g *GroupStatus) ClearWaiting() {
	atomicAnd(&g.v, ^waiting)
}

// AddPending adds one to the pending counter and returns the assumed
// post-add status. If the group has already been cancelled, the add is
// rolled back before returning, and ok is false: the caller must not
// schedule the child it was about to enroll.
func (g *GroupStatus) AddPending() (s Snapshot, ok bool) {
	old := g.v.Add(onePending)
	s = Snapshot(old)
	if s.IsCancelled() {
		// roll back: this add was meaningless, the group is tearing down.
		old = g.v.Add(negOnePending)
		return Snapshot(old), false
	}
	return s, true
}

// AddReady adds one to the ready counter and returns the assumed
// post-add status. Callers assert Ready() <= Pending() on the result.
func (g *GroupStatus) AddReady() Snapshot {
	old := g.v.Add(oneReady)
	return Snapshot(old)
}

// SubPending rolls back a pending slot added by a prior successful
// AddPending, for a spawn that was aborted after being counted but
// before the child ever ran. This is distinct from AddPending's own
// rollback, which only fires on cancellation.
func (g *GroupStatus) SubPending() Snapshot {
	old := g.v.Add(negOnePending)
	return Snapshot(old)
}

// CASCompleteReadyWaiting attempts to move the status from assumed to
// assumed-with-{waiting cleared, ready-1, pending-1} in one step. It's
// used when a producer hands a result directly to the parked consumer:
// the waiter bit, a ready slot, and a pending slot all retire atomically
// together, so no intermediate state is ever observable where, say,
// waiting has cleared but pending hasn't yet decremented.
//
// On failure (another producer raced ahead, or the consumer itself
// mutated the status), it returns the current value so the caller can
// retry with fresh assumptions.
func (g *GroupStatus) CASCompleteReadyWaiting(assumed Snapshot) (Snapshot, bool) {
	next := assumed.withoutWaitingOneReadyOnePending()
	if g.v.CompareAndSwap(uint64(assumed), uint64(next)) {
		return next, true
	}
	return Snapshot(g.v.Load()), false
}

// CASCompleteReady attempts to move the status from assumed to
// assumed-with-{ready-1, pending-1}. Used when the consumer picks up an
// already-queued ready item (no waiter handoff involved).
func (g *GroupStatus) CASCompleteReady(assumed Snapshot) (Snapshot, bool) {
	next := assumed.withoutOneReadyOnePending()
	if g.v.CompareAndSwap(uint64(assumed), uint64(next)) {
		return next, true
	}
	return Snapshot(g.v.Load()), false
}
