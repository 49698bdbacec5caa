// Copyright 2023 Ahmad Sameh(asmsh)
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

// Package result holds the generic container a task group's children
// hand back to it: the "future fragment" spec.md talks about, holding
// either a value of the group's element type or the error the child
// failed with, never both.
package result

// Outcome is the result of a single completed child task.
type Outcome[T any] struct {
	val T
	err error
}

// Val builds a successful Outcome.
func Val[T any](val T) Outcome[T] {
	return Outcome[T]{val: val}
}

// Err builds a failed Outcome. err must not be nil.
func Err[T any](err error) Outcome[T] {
	return Outcome[T]{err: err}
}

// Val returns the value this Outcome carries. It's the zero value of T
// if this Outcome holds an error instead.
func (o Outcome[T]) Val() T {
	return o.val
}

// Err returns the error this Outcome carries, or nil for a successful
// Outcome.
func (o Outcome[T]) Err() error {
	return o.err
}

// IsErr reports whether this Outcome holds an error.
func (o Outcome[T]) IsErr() bool {
	return o.err != nil
}
