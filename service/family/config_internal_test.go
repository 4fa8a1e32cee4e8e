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

package family

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
)

func TestFamily_WithPollInterval(t *testing.T) {
	c := Config{
		PollInterval: time.Second,
	}

	WithPollInterval(250 * time.Millisecond)(&c)
	assert.Equal(t, 250*time.Millisecond, c.PollInterval)
}

func TestFamily_WithClock(t *testing.T) {
	c := Config{
		Clock: nil,
	}
	clk := clock.NewMock()

	WithClock(clk)(&c)
	assert.Same(t, clk, c.Clock)
}

func TestFamily_WithValidation(t *testing.T) {
	c := Config{
		Validate: true,
	}

	WithValidation(false)(&c)
	assert.False(t, c.Validate)
}
