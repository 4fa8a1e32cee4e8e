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
	"strconv"
	"strings"
	"time"
)

// Description is the text of a failure along with the context it happened in.
type Description struct {
	Text   string
	Fields Fields
}

// NewDescription creates a description from a text and the context fields
// applied in order.
func NewDescription(text string, fields ...FieldFunc) Description {
	d := Description{
		Text: text,
	}
	for _, field := range fields {
		field(&d.Fields)
	}
	return d
}

func (d Description) String() string {
	if len(d.Fields) == 0 {
		return d.Text
	}
	return d.Text + " (" + d.Fields.String() + ")"
}

// Field is one piece of context of a failure, already formatted.
type Field struct {
	Key   string
	Value string
}

type Fields []Field

func (f Fields) String() string {
	var b strings.Builder
	for i, field := range f {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %s", field.Key, field.Value)
	}
	return b.String()
}

type FieldFunc func(*Fields)

func with(key string, value string) FieldFunc {
	return func(f *Fields) {
		*f = append(*f, Field{Key: key, Value: value})
	}
}

func WithErr(err error) FieldFunc {
	return with("error", err.Error())
}

func WithInt(key string, val int) FieldFunc {
	return with(key, strconv.Itoa(val))
}

func WithString(key string, val string) FieldFunc {
	return with(key, val)
}

// WithDuration records a duration rounded to milliseconds.
func WithDuration(key string, val time.Duration) FieldFunc {
	return with(key, val.Round(time.Millisecond).String())
}
