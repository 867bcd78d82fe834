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
	"errors"
	"fmt"
)

// ErrInvalidCriterion is reported (via [errors.Is])
// by every [*CriterionError].
var ErrInvalidCriterion = errors.New("invalid criterion")

// A ParseError reports markup that could not be scanned,
// such as a tag without a closing '>' or an unterminated attribute quote.
// Offset is the byte offset into the document (or the parsed string)
// where the problem was detected.
type ParseError struct {
	Offset int
	Msg    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse markup: offset %d: %s", e.Offset, e.Msg)
}

// A CriterionError reports a criterion that cannot be applied.
// It is returned before any scanning takes place.
type CriterionError struct {
	// Field is the name of the offending criterion field.
	Field string
	Msg   string
	// Err is the underlying error, if any
	// (for example, a regular expression compilation failure).
	Err error
}

func (e *CriterionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("criterion %s: %s: %v", e.Field, e.Msg, e.Err)
	}
	return fmt.Sprintf("criterion %s: %s", e.Field, e.Msg)
}

func (e *CriterionError) Unwrap() error {
	return e.Err
}

func (e *CriterionError) Is(target error) bool {
	return target == ErrInvalidCriterion
}

// offsetError shifts a ParseError produced while parsing a single tag
// so that its offset is relative to the whole document.
func offsetError(err error, base int) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		return &ParseError{Offset: base + pe.Offset, Msg: pe.Msg}
	}
	return err
}
