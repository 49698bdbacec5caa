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

// Package taskgroup provides a structured-concurrency task group: a
// runtime primitive that groups together a dynamic set of child
// goroutines spawned from a single parent, collects their results in
// completion order, and leaves it to the parent's own scope discipline
// not to tear the group down while any child is still running.
//
// A Group has, at any time, a pending count (children spawned whose
// result has not been consumed yet) and a ready count (children
// completed but not yet consumed via Next); a completed child stays
// counted as pending until its result is consumed. The group is empty
// once pending drops to zero;
// Next then returns ok=false instead of blocking.
//
// Concurrency model:-
//
// * Exactly one goroutine may call Next (or TryNext) on a Group at a
// time. The group does not defend against multiple concurrent callers;
// that is the caller's scoping responsibility.
//
// * Any number of goroutines may call Go concurrently to spawn
// children. Any number of children may complete and offer their result
// concurrently, from whatever goroutine they happen to run on.
//
// * Next delivers results in the order children completed (offer
// order), not the order they were spawned.
//
//
// Cancellation:-
//
// * CancelAll asks every currently-spawned child to observe
// cancellation, by canceling the context.Context every child function
// receives. It does not forcibly remove children from the group: they
// still run to completion (typically observing ctx.Done() and
// returning early with an error) and still offer their result.
//
// * CancelAll is idempotent: only the first call returns true.
//
// * Every call to Go made after a cancellation fails immediately,
// without ever starting the child goroutine.
//
//
// Lifecycle:-
//
// * Destroy releases every task still sitting in the ready queue,
// unread by any call to Next. It must be called only once every spawned
// child has completed and offered its result; the caller's own scope
// discipline (typically driving Next, or calling Wait, until the group
// is empty) is responsible for that, not Destroy itself.
package taskgroup
