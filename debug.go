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

// debugEvent names one of the state transitions in the group's state
// machine (spec.md §4.4). The zero value is never fired.
type debugEvent int

const (
	_ debugEvent = iota

	evSpawnPending
	evSpawnPendingCancelled

	evOfferRendezvous
	evOfferQueued

	evNextEmpty
	evNextFast
	evNextPark
	evNextWake

	evCancelFirst
	evCancelRepeat

	evDestroy
)

func (e debugEvent) String() string {
	switch e {
	case evSpawnPending:
		return "spawnPending"
	case evSpawnPendingCancelled:
		return "spawnPendingCancelled"
	case evOfferRendezvous:
		return "offerRendezvous"
	case evOfferQueued:
		return "offerQueued"
	case evNextEmpty:
		return "nextEmpty"
	case evNextFast:
		return "nextFast"
	case evNextPark:
		return "nextPark"
	case evNextWake:
		return "nextWake"
	case evCancelFirst:
		return "cancelFirst"
	case evCancelRepeat:
		return "cancelRepeat"
	case evDestroy:
		return "destroy"
	default:
		return "unknown"
	}
}
