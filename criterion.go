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

//go:generate stringer -type=Action,SearchMethod -linecomment -output=criterion_string.go

package tagmechanic

import (
	"fmt"
	"strings"
)

// Action is the kind of rewrite applied to a matched element.
type Action uint8

const (
	// Modify renames and/or re-attributes the matched element.
	Modify Action = 1 + iota // modify
	// Delete removes the matched element and everything inside it.
	Delete // delete
)

// MarshalText returns the lower-case name of the action.
func (a Action) MarshalText() ([]byte, error) {
	switch a {
	case Modify, Delete:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("marshal action: unknown value %d", uint8(a))
	}
}

// UnmarshalText parses "modify" or "delete" (case-insensitive).
func (a *Action) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "modify":
		*a = Modify
	case "delete":
		*a = Delete
	default:
		return fmt.Errorf("unmarshal action: unknown action %q", text)
	}
	return nil
}

// SearchMethod determines how an attribute value is compared
// to a criterion's search value.
type SearchMethod uint8

const (
	// Literal requires the attribute value to equal the search value.
	Literal SearchMethod = 1 + iota // literal
	// Regex treats the search value as a regular expression
	// matched at the start of the attribute value.
	Regex // regex
)

// MarshalText returns the lower-case name of the search method.
func (m SearchMethod) MarshalText() ([]byte, error) {
	switch m {
	case Literal, Regex:
		return []byte(m.String()), nil
	default:
		return nil, fmt.Errorf("marshal search method: unknown value %d", uint8(m))
	}
}

// UnmarshalText parses "literal" or "regex" (case-insensitive).
// "normal" is accepted as a synonym for "literal".
func (m *SearchMethod) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "literal", "normal":
		*m = Literal
	case "regex", "regexp":
		*m = Regex
	default:
		return fmt.Errorf("unmarshal search method: unknown method %q", text)
	}
	return nil
}

// A Criterion is a single match-and-rewrite rule.
// A rewrite applies exactly one criterion.
type Criterion struct {
	Action Action `yaml:"action" json:"action"`
	// Tag is the name of the tag to match.
	// It is compared case-insensitively.
	Tag string `yaml:"tag" json:"tag"`
	// Attr selects matching tags by one of their attributes.
	// If Attr is nil, only tags with no attributes at all match.
	Attr *AttrMatch `yaml:"attribute,omitempty" json:"attribute,omitempty"`

	// NewTag is the replacement tag name for Modify.
	// If empty, the original name is kept.
	NewTag string `yaml:"new_tag,omitempty" json:"new_tag,omitempty"`
	// NewAttrs is the replacement attribute string for Modify,
	// like `class="note" id="x"`.
	// It is ignored if CopyAttrs is true.
	NewAttrs string `yaml:"new_attributes,omitempty" json:"new_attributes,omitempty"`
	// If CopyAttrs is true, Modify keeps the tag's original attributes.
	CopyAttrs bool `yaml:"copy_attributes,omitempty" json:"copy_attributes,omitempty"`
}

// AttrMatch is the attribute part of a [Criterion].
type AttrMatch struct {
	// Name is the attribute name to test.
	Name string `yaml:"name" json:"name"`
	// Value is the search value: a literal string or a regular expression.
	Value string `yaml:"value" json:"value"`
	// Method defaults to Literal.
	Method SearchMethod `yaml:"method,omitempty" json:"method,omitempty"`
}

// compiledCriterion is a validated Criterion
// with its search pattern and replacement attributes parsed.
type compiledCriterion struct {
	action    Action
	tag       string
	attrName  string
	matcher   *attrMatcher // nil if no attribute is tested
	newTag    string
	newAttrs  Attributes
	copyAttrs bool
}

// Validate reports whether the criterion can be applied.
// The returned error is a [*CriterionError].
func (c *Criterion) Validate() error {
	_, err := c.compile()
	return err
}

func (c *Criterion) compile() (*compiledCriterion, error) {
	if c == nil {
		return nil, &CriterionError{Field: "criterion", Msg: "missing"}
	}
	cc := &compiledCriterion{
		action:    c.Action,
		tag:       strings.ToLower(strings.TrimSpace(c.Tag)),
		newTag:    strings.TrimSpace(c.NewTag),
		copyAttrs: c.CopyAttrs,
	}
	switch c.Action {
	case Modify, Delete:
	default:
		return nil, &CriterionError{Field: "action", Msg: fmt.Sprintf("unknown action %d", uint8(c.Action))}
	}
	if cc.tag == "" {
		return nil, &CriterionError{Field: "tag", Msg: "empty tag name"}
	}
	if strings.ContainsAny(cc.tag, " \t\r\n<>/\"'=") {
		return nil, &CriterionError{Field: "tag", Msg: fmt.Sprintf("%q is not a tag name", c.Tag)}
	}

	if c.Attr != nil {
		cc.attrName = foldAttributeName(strings.TrimSpace(c.Attr.Name))
		if cc.attrName == "" {
			return nil, &CriterionError{Field: "attribute", Msg: "search value given without an attribute name"}
		}
		method := c.Attr.Method
		if method == 0 {
			method = Literal
		}
		m, err := newAttrMatcher(method, c.Attr.Value)
		if err != nil {
			return nil, &CriterionError{Field: "attribute.value", Msg: "bad search value", Err: err}
		}
		cc.matcher = m
	}

	if c.Action == Modify && !c.CopyAttrs && strings.TrimSpace(c.NewAttrs) != "" {
		attrs, err := ParseAttributes(c.NewAttrs)
		if err != nil {
			return nil, &CriterionError{Field: "new_attributes", Msg: "cannot parse replacement attributes", Err: err}
		}
		cc.newAttrs = attrs
	}
	if cc.newTag != "" && strings.ContainsAny(cc.newTag, " \t\r\n<>/\"'=") {
		return nil, &CriterionError{Field: "new_tag", Msg: fmt.Sprintf("%q is not a tag name", c.NewTag)}
	}
	return cc, nil
}

// matches reports whether a begin or self-closing tag satisfies the criterion.
func (cc *compiledCriterion) matches(t *Tag) bool {
	switch t.Kind {
	case BeginTag, SingleTag, SingleExtendedTag:
	default:
		return false
	}
	if t.Name != cc.tag {
		return false
	}
	if cc.matcher == nil {
		return len(t.Attrs) == 0
	}
	v, ok := t.Attrs.Get(cc.attrName)
	return ok && cc.matcher.match(v)
}

// rewriteName returns the name a matched Modify tag is written with.
func (cc *compiledCriterion) rewriteName(original string) string {
	if cc.newTag == "" {
		return original
	}
	return cc.newTag
}

// rewriteAttrs returns the attributes a matched Modify tag is written with.
func (cc *compiledCriterion) rewriteAttrs(original Attributes) Attributes {
	if cc.copyAttrs {
		return original
	}
	return cc.newAttrs.Clone()
}
