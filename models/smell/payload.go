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

package smell

import (
	"fmt"
	"strings"
)

// Delimiter separates the fields of an encoded payload. Fields must not
// contain it.
const Delimiter = ","

const payloadFields = 3

// Payload is the content of a code smell transaction.
type Payload struct {
	Name   string
	Value  string
	Action string
}

// Encode returns the delimited UTF-8 encoding of the payload.
func (p Payload) Encode() []byte {
	return []byte(strings.Join([]string{p.Name, p.Value, p.Action}, Delimiter))
}

// DecodePayload splits an encoded payload back into its fields.
func DecodePayload(data []byte) (Payload, error) {
	fields := strings.Split(string(data), Delimiter)
	if len(fields) != payloadFields {
		return Payload{}, fmt.Errorf("invalid number of payload fields (have: %d, want: %d)", len(fields), payloadFields)
	}

	p := Payload{
		Name:   fields[0],
		Value:  fields[1],
		Action: fields[2],
	}

	return p, nil
}
