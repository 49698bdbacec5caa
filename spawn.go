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

	"github.com/asmsh/taskgroup/result"
)

const nilTaskFuncPanicMsg = "taskgroup: the provided task function is nil"

// Go spawns fn as a new child of the group, in the teacher's Go/GoErr/
// GoRes constructor idiom. It composes spawn-pending, attach-child, and
// scheduling the child on the group's Executor, and arranges for the
// child's eventual result to be offered back once fn returns.
//
// Go returns false, without ever starting fn, if the group has already
// been cancelled via CancelAll.
func (g *Group[T]) Go(fn func(context.Context) (T, error)) bool {
	if fn == nil {
		panic(nilTaskFuncPanicMsg)
	}
	if !g.spawnPending() {
		return false
	}
	g.attachChild()

	g.cfg.executor.Enqueue(func() {
		if g.limiter != nil {
			if err := g.limiter.Acquire(g.ctx, 1); err != nil {
				// the group's context ended before a slot freed up: fn
				// never runs, and the child completes with that cause.
				g.offer(newChildTask(result.Err[T](context.Cause(g.ctx))))
				return
			}
		}
		g.runChild(fn)
	})
	return true
}

func (g *Group[T]) runChild(fn func(context.Context) (T, error)) {
	if g.limiter != nil {
		defer g.limiter.Release(1)
	}

	var (
		val T
		err error
	)
	func() {
		defer func() {
			if r := recover(); r != nil {
				if g.cfg.panicHandler != nil {
					g.cfg.panicHandler(r)
				}
				err = newUncaughtPanic(r)
			}
		}()
		val, err = fn(g.ctx)
	}()

	var outcome result.Outcome[T]
	if err != nil {
		outcome = result.Err[T](err)
	} else {
		outcome = result.Val(val)
	}
	g.offer(newChildTask(outcome))
}

// Wait drains Next until the group empties out, and returns the first
// error observed among all consumed results, if any. It layers
// errgroup-style all-or-nothing observation on top of Next's raw
// completion-order delivery, the role jaeyoung0509-seoul's
// Wait/getFirstErr pair plays over its own Next, without changing
// Next's own per-call contract: calling Wait still requires that no
// other goroutine is concurrently calling Next or TryNext.
func (g *Group[T]) Wait(ctx context.Context) error {
	var firstErr error
	for {
		res, ok := g.Next(ctx)
		if !ok {
			return firstErr
		}
		if firstErr == nil && res.IsErr() {
			firstErr = res.Err()
		}
	}
}
