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
	"errors"
	"fmt"
)

// ErrGroupCancelled is the context.Cause set on every child's context
// the first time CancelAll runs; a child observing ctx.Done() can
// recover it with context.Cause(ctx).
var ErrGroupCancelled = errors.New("taskgroup: group cancelled via CancelAll")

// UncaughtPanic wraps a panic recovered from a child spawned via Go;
// that child's Outcome carries it as its error.
type UncaughtPanic struct {
	v any
}

func (e *UncaughtPanic) Error() string {
	return fmt.Sprintf("taskgroup: uncaught panic in a group child: %v", e.v)
}

// V returns the original value passed to panic.
func (e *UncaughtPanic) V() any {
	return e.v
}

func newUncaughtPanic(v any) *UncaughtPanic {
	return &UncaughtPanic{v: v}
}
