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
	"fmt"
	"sync"
	"testing"
	"time"
)

// TestGroup_ConcurrentInterleaving exercises spec.md §8's property 1-3
// under an arbitrary interleaving of many producers racing a single
// consumer: every spawned child's value must be observed by Next exactly
// once, with no loss and no duplication, and the group must end up fully
// drained.
func TestGroup_ConcurrentInterleaving(t *testing.T) {
	const n = 500

	for _, delay := range []time.Duration{0, time.Microsecond} {
		delay := delay
		t.Run(fmt.Sprintf("delay=%v", delay), func(t *testing.T) {
			g := New[int](context.Background())

			var wg sync.WaitGroup
			for i := 0; i < n; i++ {
				i := i
				wg.Add(1)
				ok := g.Go(func(context.Context) (int, error) {
					defer wg.Done()
					if delay > 0 {
						time.Sleep(delay)
					}
					return i, nil
				})
				if !ok {
					t.Fatalf("Go: unexpected failure spawning child %d", i)
				}
			}

			seen := make([]bool, n)
			for i := 0; i < n; i++ {
				res := mustNext(t, g)
				if res.IsErr() {
					t.Fatalf("unexpected error: %v", res.Err())
				}
				v := res.Val()
				if v < 0 || v >= n {
					t.Fatalf("value %d out of range", v)
				}
				if seen[v] {
					t.Fatalf("value %d delivered more than once", v)
				}
				seen[v] = true
			}

			if _, ok := g.Next(context.Background()); ok {
				t.Fatal("expected group to report empty after consuming every child")
			}
			if !g.IsEmpty() {
				t.Fatal("expected IsEmpty to be true once drained")
			}
			wg.Wait()
		})
	}
}

// TestGroup_ConcurrentCancelRace races many goroutines calling CancelAll
// against each other: spec.md §8 property 4 requires that at most one
// of them observes success.
func TestGroup_ConcurrentCancelRace(t *testing.T) {
	g := New[int](context.Background())

	const callers = 64
	var wg sync.WaitGroup
	results := make([]bool, callers)
	for i := 0; i < callers; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = g.CancelAll()
		}()
	}
	wg.Wait()

	trueCount := 0
	for _, r := range results {
		if r {
			trueCount++
		}
	}
	if trueCount != 1 {
		t.Fatalf("expected exactly one CancelAll to return true, got %d", trueCount)
	}
	if !g.IsCancelled() {
		t.Fatal("expected group to be cancelled")
	}
	if g.Go(func(context.Context) (int, error) { return 0, nil }) {
		t.Fatal("expected Go to fail after cancellation, per property 5")
	}
}

// TestGroup_ConcurrentMixedRendezvousAndQueue drives some children to
// complete before Next ever parks (queue path) and others to complete
// while Next is parked (rendezvous path) within the same run, checking
// that both paths interleave safely against each other.
func TestGroup_ConcurrentMixedRendezvousAndQueue(t *testing.T) {
	const n = 50
	g := New[int](context.Background())

	gate := make(chan struct{})
	for i := 0; i < n; i++ {
		i := i
		g.Go(func(context.Context) (int, error) {
			if i%2 == 0 {
				<-gate // half the children wait to race the parked consumer
			}
			return i, nil
		})
	}

	time.Sleep(5 * time.Millisecond) // let the odd-indexed half queue up
	close(gate)

	seen := make([]bool, n)
	for i := 0; i < n; i++ {
		res := mustNext(t, g)
		v := res.Val()
		if seen[v] {
			t.Fatalf("duplicate delivery of %d", v)
		}
		seen[v] = true
	}
	for i, s := range seen {
		if !s {
			t.Fatalf("value %d never delivered", i)
		}
	}
}
