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

// Package testcases provides a table of rewrite scenarios
// shared by the tests of several packages.
package testcases

import (
	_ "embed"
	"encoding/json"
)

// Case is a single rewrite scenario.
type Case struct {
	Name  string `json:"name"`
	Input string `json:"input"`
	// Criterion is the JSON encoding of the criterion to apply.
	Criterion   json.RawMessage `json:"criterion"`
	Output      string          `json:"output"`
	Occurrences int             `json:"occurrences"`
	Warnings    int             `json:"warnings"`
}

//go:embed rewrite.json
var rewriteData []byte

// Load returns the rewrite scenarios.
func Load() ([]Case, error) {
	var cases []Case
	if err := json.Unmarshal(rewriteData, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
