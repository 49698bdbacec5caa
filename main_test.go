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
	"testing"

	"go.uber.org/goleak"
)

// TestMain verifies that no test in this package leaves a goroutine
// running past its own completion: every Group.Go child must either be
// consumed via Next/Wait or released by Destroy, and every parked Next
// call must either observe a result or have its context end.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
