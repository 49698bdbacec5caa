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

import "context"

// childContext derives the context.Context a spawned child observes
// from the parent context the group was created with, the way the
// teacher derives each callback's context from its syncCtx: a plain
// context.WithCancelCause child, cancelled by this group's own
// CancelAll or when parent itself is cancelled, not by any per-child
// timeout.
func childContext(parent context.Context) (context.Context, context.CancelCauseFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithCancelCause(parent)
}
