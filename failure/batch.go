// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package failure

import (
	"fmt"
	"time"
)

// Timeout is returned when a submitted batch is still pending once the wait
// budget is exhausted.
type Timeout struct {
	Description Description
	BatchID     string
	Status      string
	Wait        time.Duration
}

func (t Timeout) Error() string {
	return fmt.Sprintf("batch %s still %s after %s: %s", t.BatchID, t.Status, t.Wait, t.Description)
}

func (t Timeout) Is(target error) bool { return target == ErrClient }

// Invalid is returned when the ledger reports a submitted batch as invalid.
type Invalid struct {
	Description Description
	BatchID     string
}

func (i Invalid) Error() string {
	return fmt.Sprintf("batch %s is invalid: %s", i.BatchID, i.Description)
}

func (i Invalid) Is(target error) bool { return target == ErrClient }

// InvalidPayload is returned when the fields of a code smell payload fail
// client-side validation.
type InvalidPayload struct {
	Description Description
	Field       string
}

func (i InvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload field %s: %s", i.Field, i.Description)
}

func (i InvalidPayload) Is(target error) bool { return target == ErrClient }
