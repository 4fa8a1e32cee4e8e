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
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"

	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/models/smell"
)

// Validator checks code smell payloads before they are sent to the ledger.
type Validator struct {
	validate *validator.Validate
}

// New creates a new payload validator.
func New() *Validator {

	v := validator.New()

	// A single type is registered per validator, so the struct level can be
	// asserted to that type safely.
	v.RegisterStructValidation(payloadValidator, smell.Payload{})

	return &Validator{validate: v}
}

// Payload validates the given payload. All violations are returned together
// in a multi-error of InvalidPayload failures.
func (v *Validator) Payload(payload smell.Payload) error {

	err := v.validate.Struct(payload)
	if err == nil {
		return nil
	}

	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return fmt.Errorf("could not validate payload: %w", err)
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return fmt.Errorf("unexpected validation error: %w", err)
	}

	var result *multierror.Error
	for _, fieldErr := range errs {
		result = multierror.Append(result, failure.InvalidPayload{
			Field: fieldErr.Field(),
			Description: failure.NewDescription(fieldErr.Tag(),
				failure.WithString("value", fmt.Sprint(fieldErr.Value())),
			),
		})
	}
	result.ErrorFormat = oneLine

	return result
}

func oneLine(errs []error) string {
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}
