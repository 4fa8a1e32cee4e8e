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

package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/optakt/code-smell/models/smell"
)

// Field names reported with validation errors.
const (
	nameField   = "name"
	valueField  = "value"
	actionField = "action"
)

// Validation error tags.
const (
	nameEmpty      = "name is empty"
	nameDelimiter  = "name contains the payload delimiter"
	valueEmpty     = "value is empty"
	valueDelimiter = "value contains the payload delimiter"
	actionUnknown  = "action is unknown"
)

func payloadValidator(sl validator.StructLevel) {
	payload := sl.Current().Interface().(smell.Payload)

	if payload.Name == "" {
		sl.ReportError(payload.Name, nameField, "Name", nameEmpty, "")
	}
	if strings.Contains(payload.Name, smell.Delimiter) {
		sl.ReportError(payload.Name, nameField, "Name", nameDelimiter, "")
	}
	if payload.Value == "" {
		sl.ReportError(payload.Value, valueField, "Value", valueEmpty, "")
	}
	if strings.Contains(payload.Value, smell.Delimiter) {
		sl.ReportError(payload.Value, valueField, "Value", valueDelimiter, "")
	}
	if !known(payload.Action) {
		sl.ReportError(payload.Action, actionField, "Action", actionUnknown, "")
	}
}

func known(action string) bool {
	for _, candidate := range smell.Actions {
		if action == candidate {
			return true
		}
	}
	return false
}
