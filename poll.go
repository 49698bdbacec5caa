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

import "runtime"

// pollState is the non-blocking outcome of one pass through the group's
// state machine, the Go rendering of spec.md §3's PollResult: Empty,
// MustWait, or a claimed item. Unlike the source this was distilled
// from, Empty never carries storage or a retained task (spec.md §9's
// Open Question, resolved as directed: the source's single helper that
// treated Empty as "storage accessible" doesn't get a Go port).
type pollState int

const (
	pollEmpty pollState = iota
	pollMustWait
	pollReady
)

// poll runs one non-blocking pass of the shared fast-path logic used by
// both TryNext and the first iteration of Next: it never installs or
// touches the waiter slot, so it is safe to call without the caller
// committing to actually parking afterwards.
func (g *Group[T]) poll() (item readyItem[T], state pollState) {
	for {
		assumed := g.status.Load()
		if assumed.Pending() == 0 {
			return readyItem[T]{}, pollEmpty
		}
		if assumed.Ready() == 0 {
			return readyItem[T]{}, pollMustWait
		}
		if _, ok := g.status.CASCompleteReady(assumed); !ok {
			continue
		}
		dequeued, found := g.ready.dequeue()
		if !found {
			// a queueing offer is mid-flight: it already bumped ready
			// but hasn't enqueued yet. spin briefly; the window is
			// O(one offer call).
			for !found {
				runtime.Gosched()
				dequeued, found = g.ready.dequeue()
			}
		}
		return dequeued, pollReady
	}
}
