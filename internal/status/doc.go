// Copyright 2020 Ahmad Sameh(asmsh)
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

// Package status implements the single 64-bit atomic word a task group
// multiplexes all of its cross-goroutine coordination through.
//
// The value is split into 4 sections, starting from the most significant
// bit:
//
//   - cancelled (1 bit): set once the group (and therefore every child
//     spawned into it) has been asked to cancel. It never clears.
//
//   - waiting (1 bit): set while the single allowed consumer is parked
//     inside Next, waiting for a child to complete. At most one goroutine
//     may observe this bit set at a time; that invariant is enforced by
//     the caller (the group), not by this package.
//
//   - ready (31 bits): the number of children that have completed but
//     whose result hasn't been consumed yet.
//
//   - pending (31 bits): the number of children that have been spawned
//     but whose result hasn't been consumed yet. ready is always <=
//     pending, since a completed-but-unconsumed child is still counted
//     as pending.
//
// Every setter here is a single atomic read-modify-write or a
// compare-and-swap, so callers never need a mutex to serialize calls into
// this package; the one thing they do need to serialize themselves is the
// queue/waiter-slot manipulation that happens alongside some of these
// calls (see the group package).
package status
