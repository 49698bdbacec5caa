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
	"container/list"
	"sync"
)

// readyItem is one completed-but-not-yet-consumed child sitting in a
// group's ready queue. The task field carries one extra reference
// above the one newChildTask starts it with (see childTask.retain); the
// consumer that dequeues the item must release that reference once it
// has read the outcome. Success or error is read from the task's
// outcome, so the item has no separate status field.
type readyItem[T any] struct {
	task *childTask[T]
}

// readyQueue is the FIFO spec.md §4.2 describes: a queue of completed
// children awaiting a consumer. It's a plain mutex-guarded
// container/list, the same choice the teacher makes everywhere it
// needs a shared, mutable, ordered collection (groupCore.wg,
// reserveChan) rather than reaching for a hand-rolled lock-free
// structure -- spec.md explicitly permits either.
type readyQueue[T any] struct {
	mu   sync.Mutex
	list list.List
}

// enqueue appends item to the back of the queue. Always succeeds.
func (q *readyQueue[T]) enqueue(item readyItem[T]) {
	q.mu.Lock()
	q.list.PushBack(item)
	q.mu.Unlock()
}

// dequeue removes and returns the item at the front of the queue, if
// any.
func (q *readyQueue[T]) dequeue() (item readyItem[T], found bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	front := q.list.Front()
	if front == nil {
		return readyItem[T]{}, false
	}
	q.list.Remove(front)
	return front.Value.(readyItem[T]), true
}

// drain removes and returns every remaining item, in FIFO order. Used
// only by Destroy, to release every task a Next never got to consume.
func (q *readyQueue[T]) drain() []readyItem[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	items := make([]readyItem[T], 0, q.list.Len())
	for e := q.list.Front(); e != nil; e = e.Next() {
		items = append(items, e.Value.(readyItem[T]))
	}
	q.list.Init()
	return items
}
