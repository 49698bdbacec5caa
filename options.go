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

import "golang.org/x/sync/semaphore"

// Option configures a Group at construction time, in the functional-
// options shape jaeyoung0509-seoul's config/Option pair uses.
type Option func(*groupConfig)

type groupConfig struct {
	panicHandler         func(v any)
	uncaughtErrorHandler func(err error)
	executor             Executor
	concurrencyLimit     int64
	debugCB              func(debugEvent)
}

func defaultGroupConfig() groupConfig {
	return groupConfig{
		executor: goExecutor{},
	}
}

// WithPanicHandler registers a callback invoked whenever a child
// spawned via Go panics, in addition to the panic being surfaced as an
// *UncaughtPanic error through Next. Grounded on the teacher's
// GroupConfig.UncaughtPanicHandler.
func WithPanicHandler(cb func(v any)) Option {
	return func(c *groupConfig) {
		c.panicHandler = cb
	}
}

// WithUncaughtErrorHandler registers a callback invoked whenever a
// child spawned via Go completes with a non-nil error and the group is
// destroyed before any Next call observes it. Grounded on the
// teacher's GroupConfig.UncaughtErrorHandler.
func WithUncaughtErrorHandler(cb func(err error)) Option {
	return func(c *groupConfig) {
		c.uncaughtErrorHandler = cb
	}
}

// WithExecutor overrides the default one-goroutine-per-child Executor.
func WithExecutor(e Executor) Option {
	return func(c *groupConfig) {
		if e != nil {
			c.executor = e
		}
	}
}

// WithConcurrencyLimit bounds the number of children that may be
// in flight at once, the same role the teacher's GroupConfig.Size plays
// over its reserveChan. A limit <= 0 means unlimited (the default),
// and no semaphore is allocated at all.
//
// The limit is enforced with a golang.org/x/sync/semaphore.Weighted
// rather than the teacher's plain chan struct{} reservation, so a
// future extension giving children different weights has somewhere to
// go; when no limit is configured, no semaphore is allocated at all and
// Go never pays for one.
func WithConcurrencyLimit(n int) Option {
	return func(c *groupConfig) {
		c.concurrencyLimit = int64(n)
	}
}

func (c *groupConfig) buildLimiter() *semaphore.Weighted {
	if c.concurrencyLimit <= 0 {
		return nil
	}
	return semaphore.NewWeighted(c.concurrencyLimit)
}

// withDebugCB wires a debug event sink into a group's config. It has no
// exported Option counterpart, and no code or test in this package
// calls it; the sink only receives events in builds compiled with the
// enable_taskgroup_debug tag.
func withDebugCB(cb func(debugEvent)) Option {
	return func(c *groupConfig) {
		c.debugCB = cb
	}
}
