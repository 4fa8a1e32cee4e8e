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
)

// Connection is returned when the REST API can not be reached.
type Connection struct {
	Description Description
	URL         string
}

func (c Connection) Error() string {
	return fmt.Sprintf("failed to connect to %s: %s", c.URL, c.Description)
}

func (c Connection) Is(target error) bool { return target == ErrClient }

// HTTP is returned when the REST API answers with a non-2xx status code.
type HTTP struct {
	Description Description
	Status      int
	Reason      string
}

func (h HTTP) Error() string {
	return fmt.Sprintf("error %d: %s: %s", h.Status, h.Reason, h.Description)
}

func (h HTTP) Is(target error) bool { return target == ErrClient }

// NotFound is returned when the REST API answers with a 404 status code.
type NotFound struct {
	Description Description
	URL         string
}

func (n NotFound) Error() string {
	return fmt.Sprintf("resource %s not found: %s", n.URL, n.Description)
}

func (n NotFound) Is(target error) bool { return target == ErrClient }

// ResponseParse is returned when a response body of the REST API does not have
// the expected structure.
type ResponseParse struct {
	Description Description
}

func (r ResponseParse) Error() string {
	return fmt.Sprintf("could not parse response: %s", r.Description)
}

func (r ResponseParse) Is(target error) bool { return target == ErrClient }
