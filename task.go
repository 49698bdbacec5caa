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
	"sync/atomic"

	"github.com/asmsh/taskgroup/result"
)

// childTask is the Go stand-in for spec.md's reference-counted Task: a
// completed child carries its result.Outcome, plus a reference count
// that every holder of this pointer (the ready queue, and whoever
// consumes the result: Next, TryNext or Destroy) must balance with
// exactly one release.
//
// Go is garbage collected, so refCount isn't load-bearing for memory
// safety the way it is in the source this was distilled from; it's
// load-bearing for the double-release testable property (spec.md §8
// property 7): release panics on an over-release in every build. A
// missing release is not detected.
type childTask[T any] struct {
	refCount atomic.Int32
	outcome  result.Outcome[T]
}

// newChildTask wraps a completed child's outcome with one reference:
// the one that must survive until a consumer reads the result (see
// retain). offer does not release it when it returns.
func newChildTask[T any](outcome result.Outcome[T]) *childTask[T] {
	t := &childTask[T]{outcome: outcome}
	t.refCount.Store(1)
	return t
}

// retain adds one reference. newChildTask already accounts for the
// reference that must survive until a consumer reads the result; offer
// calls retain exactly once more, only on the path where the result has
// to sit in the ready queue, for the reference that must survive until
// that queue entry is dequeued -- the "two-retain discipline" spec.md
// §9 describes, with the first of the two retains folded into
// construction instead of a second explicit call.
func (t *childTask[T]) retain() {
	t.refCount.Add(1)
}

// release drops one reference. It panics if called more times than
// the task was retained: that can only happen from a bug in the group
// coordinator itself, never from caller misuse, since childTask is
// never exposed outside this package.
func (t *childTask[T]) release() {
	n := t.refCount.Add(-1)
	if n < 0 {
		panic("taskgroup: internal: child task released more times than retained")
	}
}
