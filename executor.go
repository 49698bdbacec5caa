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

// Executor is the Go stand-in for spec.md §6's Executor collaborator:
// something that can schedule a unit of work for (possibly concurrent)
// execution. Go calls Enqueue once per spawned child; an Enqueue that
// runs fn synchronously makes Go block until that child has finished
// and offered its result.
type Executor interface {
	Enqueue(fn func())
}

// goExecutor is the default Executor: every unit of work gets its own
// goroutine, mirroring the teacher's Group[T] always reserving and
// freeing a goroutine per constructor call (reserveGoroutine /
// freeGoroutine in asmsh-promise/group.go) rather than multiplexing
// work onto a fixed pool.
type goExecutor struct{}

func (goExecutor) Enqueue(fn func()) {
	go fn()
}
