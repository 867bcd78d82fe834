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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseAttributes(t *testing.T) {
	tests := []struct {
		s    string
		want Attributes
	}{
		{"", nil},
		{"   ", nil},
		{`class="note"`, Attributes{{Key: "class", Value: "note"}}},
		{`CLASS="note" Id=x`, Attributes{{Key: "class", Value: "note"}, {Key: "id", Value: "x"}}},
		{`title=""`, Attributes{{Key: "title", Value: ""}}},
		{`alt="a > b"`, Attributes{{Key: "alt", Value: "a > b"}}},
		{`viewBox="0 0 5 5" preserveAspectRatio="none"`, Attributes{
			{Key: "viewBox", Value: "0 0 5 5"},
			{Key: "preserveAspectRatio", Value: "none"},
		}},
		{`VIEWBOX="0 0 5 5"`, Attributes{{Key: "viewbox", Value: "0 0 5 5"}}},
		{"hidden", Attributes{{Key: "hidden", Bare: true}}},
		{"hidden hidden", Attributes{{Key: "hidden", Bare: true}}},
		{"a\tb=1\nc", Attributes{
			{Key: "a", Bare: true},
			{Key: "b", Value: "1"},
			{Key: "c", Bare: true},
		}},
		{"x=1 x=2", Attributes{{Key: "x", Value: "2"}}},
		{"href=x/", Attributes{{Key: "href", Value: "x/"}}},
		{"href=/a/b/ rel=next", Attributes{{Key: "href", Value: "/a/b/"}, {Key: "rel", Value: "next"}}},
	}
	for _, test := range tests {
		got, err := ParseAttributes(test.s)
		if err != nil {
			t.Errorf("ParseAttributes(%q): %v", test.s, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseAttributes(%q) (-want +got):\n%s", test.s, diff)
		}
	}
}

func TestParseAttributesErrors(t *testing.T) {
	tests := []string{
		`="x"`,
		`a="x" ="y"`,
		`title="unterminated`,
	}
	for _, s := range tests {
		_, err := ParseAttributes(s)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseAttributes(%q) error = %v; want *ParseError", s, err)
		}
	}
}

func TestAttributesSet(t *testing.T) {
	var attrs Attributes
	attrs.Set("a", "1")
	attrs.Set("b", "2")
	attrs.Set("a", "3")
	attrs.setBare("c")
	attrs.setBare("a")
	want := Attributes{
		{Key: "a", Value: "3"},
		{Key: "b", Value: "2"},
		{Key: "c", Bare: true},
	}
	if diff := cmp.Diff(want, attrs); diff != "" {
		t.Errorf("attributes (-want +got):\n%s", diff)
	}
	if got := attrs.Len(); got != 3 {
		t.Errorf("Len() = %d; want 3", got)
	}
	if v, ok := attrs.Get("b"); !ok || v != "2" {
		t.Errorf(`Get("b") = %q, %t; want "2", true`, v, ok)
	}
	if v, ok := attrs.Get("z"); ok {
		t.Errorf(`Get("z") = %q, true; want "", false`, v)
	}

	clone := attrs.Clone()
	clone.Set("a", "changed")
	if v, _ := attrs.Get("a"); v != "3" {
		t.Errorf("modifying Clone() changed original: a = %q", v)
	}
	if got := Attributes(nil).Clone(); got != nil {
		t.Errorf("Attributes(nil).Clone() = %v; want nil", got)
	}
}
