// Copyright 2024 Ahmad Sameh(asmsh)
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

package taskgroup

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/semaphore"

	"github.com/asmsh/taskgroup/internal/status"
	"github.com/asmsh/taskgroup/result"
)

// Group is a structured-concurrency task group: it multiplexes an
// arbitrary number of child goroutines spawned via Go, collects their
// results in completion order through Next, and releases unconsumed
// results on Destroy. Destroy does not check whether children are
// still running; that is left to the caller's scope discipline.
//
// The zero Group is not usable; construct one with New. A *Group[T] is
// safe for concurrent use by any number of goroutines calling Go or
// completing children, but at most one goroutine may call Next (or
// TryNext) at a time -- see the package doc.
type Group[T any] struct {
	status status.GroupStatus
	ready  readyQueue[T]
	waiter atomic.Pointer[chan *childTask[T]]

	cfg     groupConfig
	limiter *semaphore.Weighted

	ctx    context.Context
	cancel context.CancelCauseFunc
}

// New creates a Group whose children observe cancellation through a
// context.Context derived from parent. This is the Go rendering of
// spec.md §4.3's create: the group's status word starts zero, and it's
// immediately ready to have children spawned into it.
func New[T any](parent context.Context, opts ...Option) *Group[T] {
	cfg := defaultGroupConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	ctx, cancel := childContext(parent)
	g := &Group[T]{
		cfg:     cfg,
		limiter: cfg.buildLimiter(),
		ctx:     ctx,
		cancel:  cancel,
	}
	return g
}

// spawnPending performs spec.md's add-pending: it must be called before
// a child is actually scheduled. It returns false, having rolled the
// pending count back, if the group is already cancelled -- the caller
// must then not schedule the child.
func (g *Group[T]) spawnPending() bool {
	_, ok := g.status.AddPending()
	if !ok {
		debug(g, evSpawnPendingCancelled)
		return false
	}
	debug(g, evSpawnPending)
	return true
}

// attachChild is spec.md's attach-child. Cancellation traversal in this
// implementation runs through the shared context.Context every child
// receives (see childContext), not through a separate per-child
// registry, so there's no bookkeeping structure to update here; the
// call still exists, as the spec's operation does, as the point in the
// protocol, right after spawnPending succeeds, after which the child is
// considered fully enrolled and eligible to run.
func (g *Group[T]) attachChild() {}

// offer is spec.md's offer: called exactly once per spawned child, on
// whatever goroutine that child completes on.
func (g *Group[T]) offer(child *childTask[T]) {
	assumed := g.status.AddReady()
	if assumed.IsWaiting() {
		for {
			chPtr := g.waiter.Load()
			if chPtr == nil {
				if !g.status.Load().IsWaiting() {
					break // consumer already claimed this slot itself
				}
				runtime.Gosched()
				continue
			}
			if !g.waiter.CompareAndSwap(chPtr, nil) {
				continue // lost the handoff race; reload and retry
			}
			// won the handoff: retire the waiting bit, a ready slot, and
			// a pending slot atomically, before handing the result over,
			// per spec.md §4.3 offer step 3b. Nothing else can contend
			// for this particular transition once the waiter slot is
			// claimed, so this always succeeds in bounded retries.
			for {
				cur := g.status.Load()
				if _, ok := g.status.CASCompleteReadyWaiting(cur); ok {
					break
				}
			}
			*chPtr <- child
			debug(g, evOfferRendezvous)
			return
		}
	}

	child.retain() // ready-queue residency reference
	g.ready.enqueue(readyItem[T]{task: child})
	debug(g, evOfferQueued)
}

// Next is spec.md's next/wait_next: it returns the next completed
// child's outcome in offer order, blocking until one is available, the
// group empties out, or ctx is done. ok is false when the group is
// empty (drained) or ctx ended before a result arrived; callers can
// tell the two apart with ctx.Err().
//
// At most one goroutine may have a Next call outstanding on a Group at
// a time.
func (g *Group[T]) Next(ctx context.Context) (res result.Outcome[T], ok bool) {
	if ctx == nil {
		ctx = context.Background()
	}

	item, state := g.poll()
	switch state {
	case pollEmpty:
		debug(g, evNextEmpty)
		return result.Outcome[T]{}, false
	case pollReady:
		outcome := item.task.outcome
		item.task.release() // ready-queue residency reference
		item.task.release() // consumption reference
		debug(g, evNextFast)
		return outcome, true
	}

	// pollMustWait: commit to parking.
	ch := make(chan *childTask[T], 1)
	g.waiter.Store(&ch)
	assumed := g.status.MarkWaiting()
	debug(g, evNextPark)

	if assumed.Ready() >= 1 {
		if _, claimed := g.status.CASCompleteReadyWaiting(assumed); claimed {
			g.waiter.CompareAndSwap(&ch, nil)
			queued, found := g.ready.dequeue()
			for !found {
				runtime.Gosched()
				queued, found = g.ready.dequeue()
			}
			outcome := queued.task.outcome
			queued.task.release()
			queued.task.release()
			return outcome, true
		}
		// lost the claim to a concurrent rendezvous delivery into ch;
		// the pre-existing item stays queued for a future Next call.
	}

	select {
	case child := <-ch:
		outcome := child.outcome
		child.release()
		debug(g, evNextWake)
		return outcome, true
	case <-ctx.Done():
		if g.waiter.CompareAndSwap(&ch, nil) {
			g.status.ClearWaiting()
			return result.Outcome[T]{}, false
		}
		// a producer already committed to delivering to us.
		child := <-ch
		outcome := child.outcome
		child.release()
		debug(g, evNextWake)
		return outcome, true
	}
}

// TryNext is the non-blocking poll variant described in SPEC_FULL.md
// (grounded on the original source's poll(), which spec.md's next()
// folds into a single blocking operation). ok reports whether res is
// valid; when ok is false, empty reports whether the group is fully
// drained (true) or simply has nothing ready yet (false).
func (g *Group[T]) TryNext() (res result.Outcome[T], ok bool, empty bool) {
	item, state := g.poll()
	switch state {
	case pollEmpty:
		return result.Outcome[T]{}, false, true
	case pollMustWait:
		return result.Outcome[T]{}, false, false
	default:
		outcome := item.task.outcome
		item.task.release()
		item.task.release()
		return outcome, true, false
	}
}

// CancelAll is spec.md's cancel-all: the first call cancels the
// group's derived context (which every child observes via ctx.Done())
// and returns true; every later call is a no-op returning false.
func (g *Group[T]) CancelAll() bool {
	prev := g.status.MarkCancelled()
	if prev.IsCancelled() {
		debug(g, evCancelRepeat)
		return false
	}
	g.cancel(ErrGroupCancelled)
	debug(g, evCancelFirst)
	return true
}

// IsEmpty reports whether the group currently has no pending children.
func (g *Group[T]) IsEmpty() bool {
	return g.status.Load().Pending() == 0
}

// IsCancelled reports whether CancelAll has been called.
func (g *Group[T]) IsCancelled() bool {
	return g.status.Load().IsCancelled()
}

// Destroy releases every task still sitting in the ready queue,
// unconsumed by any call to Next. It is a programmer error to call
// Destroy while any child is still running; the caller's own scope
// discipline (typically draining via Next or Wait first) must
// guarantee that every spawned child has completed and offered its
// result before this call. Destroy does not check this itself.
func (g *Group[T]) Destroy() {
	for _, item := range g.ready.drain() {
		if g.cfg.uncaughtErrorHandler != nil && item.task.outcome.IsErr() {
			g.cfg.uncaughtErrorHandler(item.task.outcome.Err())
		}
		item.task.release()
		item.task.release()
		debug(g, evDestroy)
	}
}
