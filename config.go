// Copyright 2026 The tagmechanic Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package tagmechanic

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseCriterionYAML decodes and validates a criterion from YAML, like:
//
//	action: modify
//	tag: span
//	attribute:
//	  name: class
//	  value: "^(bold|strong)$"
//	  method: regex
//	new_tag: b
//	new_attributes: ""
//	copy_attributes: false
//
// Unknown keys are rejected.
func ParseCriterionYAML(data []byte) (*Criterion, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	c := new(Criterion)
	if err := dec.Decode(c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse criterion: empty document")
		}
		return nil, fmt.Errorf("parse criterion: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadCriterionFile reads a YAML criterion file.
// See [ParseCriterionYAML] for the format.
func LoadCriterionFile(path string) (*Criterion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load criterion: %w", err)
	}
	c, err := ParseCriterionYAML(data)
	if err != nil {
		return nil, fmt.Errorf("load criterion %s: %w", path, err)
	}
	return c, nil
}
