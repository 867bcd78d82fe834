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
	"fmt"
	"regexp"
)

// MatchAttribute reports whether an attribute value satisfies search.
// With [Literal], the value must equal search exactly.
// With [Regex], search is a regular expression
// that must match a prefix of the value
// (it is anchored at the start but not at the end).
// An invalid regular expression is returned as an error.
func MatchAttribute(value string, method SearchMethod, search string) (bool, error) {
	m, err := newAttrMatcher(method, search)
	if err != nil {
		return false, err
	}
	return m.match(value), nil
}

// attrMatcher is a precompiled search.
// re is nil for literal searches.
type attrMatcher struct {
	search string
	re     *regexp.Regexp
}

func newAttrMatcher(method SearchMethod, search string) (*attrMatcher, error) {
	switch method {
	case Literal:
		return &attrMatcher{search: search}, nil
	case Regex:
		// Compile the bare pattern first so that wrapping it
		// cannot turn an unbalanced pattern into a valid one.
		if _, err := regexp.Compile(search); err != nil {
			return nil, fmt.Errorf("compile search pattern %q: %w", search, err)
		}
		re, err := regexp.Compile(`\A(?:` + search + `)`)
		if err != nil {
			return nil, fmt.Errorf("compile search pattern %q: %w", search, err)
		}
		return &attrMatcher{search: search, re: re}, nil
	default:
		return nil, fmt.Errorf("unknown search method %v", method)
	}
}

func (m *attrMatcher) match(value string) bool {
	if m.re == nil {
		return value == m.search
	}
	return m.re.MatchString(value)
}
