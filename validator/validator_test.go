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

package validator_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optakt/code-smell/failure"
	"github.com/optakt/code-smell/models/smell"
	"github.com/optakt/code-smell/testing/mocks"
	"github.com/optakt/code-smell/validator"
)

func TestValidator_Payload(t *testing.T) {
	validate := validator.New()

	t.Run("nominal case", func(t *testing.T) {
		t.Parallel()

		err := validate.Payload(mocks.GenericPayload)

		assert.NoError(t, err)
	})

	tests := []struct {
		desc    string
		payload smell.Payload
		fields  []string
	}{
		{
			desc:    "empty name",
			payload: smell.Payload{Name: "", Value: "1", Action: smell.ActionCreate},
			fields:  []string{"name"},
		},
		{
			desc:    "delimiter in name",
			payload: smell.Payload{Name: "a,b", Value: "1", Action: smell.ActionCreate},
			fields:  []string{"name"},
		},
		{
			desc:    "empty value",
			payload: smell.Payload{Name: "a", Value: "", Action: smell.ActionCreate},
			fields:  []string{"value"},
		},
		{
			desc:    "delimiter in value",
			payload: smell.Payload{Name: "a", Value: "1,5", Action: smell.ActionCreate},
			fields:  []string{"value"},
		},
		{
			desc:    "unknown action",
			payload: smell.Payload{Name: "a", Value: "1", Action: "delete"},
			fields:  []string{"action"},
		},
		{
			desc:    "multiple violations",
			payload: smell.Payload{Name: ",", Value: "", Action: ""},
			fields:  []string{"name", "value", "action"},
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.desc, func(t *testing.T) {
			t.Parallel()

			err := validate.Payload(test.payload)

			require.Error(t, err)
			assert.ErrorIs(t, err, failure.ErrClient)
			assert.ErrorAs(t, err, &failure.InvalidPayload{})

			merr, ok := err.(*multierror.Error)
			require.True(t, ok)
			require.Len(t, merr.Errors, len(test.fields))
			for i, field := range test.fields {
				var invalid failure.InvalidPayload
				require.ErrorAs(t, merr.Errors[i], &invalid)
				assert.Equal(t, field, invalid.Field)
			}
		})
	}
}
