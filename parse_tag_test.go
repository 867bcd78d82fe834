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

func TestParseTag(t *testing.T) {
	tests := []struct {
		raw  string
		want *Tag
	}{
		{"<p>", &Tag{Kind: BeginTag, Name: "p"}},
		{"<P >", &Tag{Kind: BeginTag, Name: "p"}},
		{"</p>", &Tag{Kind: EndTag, Name: "p"}},
		{"</ DIV >", &Tag{Kind: EndTag, Name: "div"}},
		{"<br/>", &Tag{Kind: SingleTag, Name: "br"}},
		{"<br />", &Tag{Kind: SingleExtendedTag, Name: "br"}},
		{"<br\t/>", &Tag{Kind: SingleExtendedTag, Name: "br"}},
		{
			`<a href="x" title="y">`,
			&Tag{Kind: BeginTag, Name: "a", Attrs: Attributes{
				{Key: "href", Value: "x"},
				{Key: "title", Value: "y"},
			}},
		},
		{
			`<img src="a.png"/>`,
			&Tag{Kind: SingleTag, Name: "img", Attrs: Attributes{{Key: "src", Value: "a.png"}}},
		},
		{
			`<img src="a.png" />`,
			&Tag{Kind: SingleExtendedTag, Name: "img", Attrs: Attributes{{Key: "src", Value: "a.png"}}},
		},
		{
			"<a href=/x/y/>",
			&Tag{Kind: SingleTag, Name: "a", Attrs: Attributes{{Key: "href", Value: "/x/y"}}},
		},
		{
			"<a href=/x/y>",
			&Tag{Kind: BeginTag, Name: "a", Attrs: Attributes{{Key: "href", Value: "/x/y"}}},
		},
		{
			"<input disabled type=text checked>",
			&Tag{Kind: BeginTag, Name: "input", Attrs: Attributes{
				{Key: "disabled", Bare: true},
				{Key: "type", Value: "text"},
				{Key: "checked", Bare: true},
			}},
		},
		{
			`<svg viewBox="0 0 1 1" XMLNS="http://www.w3.org/2000/svg">`,
			&Tag{Kind: BeginTag, Name: "svg", Attrs: Attributes{
				{Key: "viewBox", Value: "0 0 1 1"},
				{Key: "xmlns", Value: "http://www.w3.org/2000/svg"},
			}},
		},
		{
			`<linearGradient gradientUnits="userSpaceOnUse">`,
			&Tag{Kind: BeginTag, Name: "lineargradient", Attrs: Attributes{
				{Key: "gradientUnits", Value: "userSpaceOnUse"},
			}},
		},
		{
			`<p class = "a b">`,
			&Tag{Kind: BeginTag, Name: "p", Attrs: Attributes{{Key: "class", Value: "a b"}}},
		},
		{
			`<p class="a" class="b">`,
			&Tag{Kind: BeginTag, Name: "p", Attrs: Attributes{{Key: "class", Value: "b"}}},
		},
		{"<!-- note -->", newPassthrough(CommentName, " note ")},
		{"<!---->", newPassthrough(CommentName, "")},
		{"<!doctype html>", newPassthrough(DoctypeName, " html")},
		{"<![CDATA[a > b]]>", newPassthrough(CDATAName, "a > b]]")},
		{`<?xml version="1.0"?>`, newPassthrough("?xml", ` version="1.0"`)},
		{"<?php echo 1 ?>", newPassthrough("?php", " echo 1 ")},
		{"<!ENTITY x \"y\">", newPassthrough("!ENTITY", ` x "y"`)},
	}
	for _, test := range tests {
		got, err := ParseTag(test.raw)
		if err != nil {
			t.Errorf("ParseTag(%q): %v", test.raw, err)
			continue
		}
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("ParseTag(%q) (-want +got):\n%s", test.raw, diff)
		}
	}
}

func TestParseTagErrors(t *testing.T) {
	tests := []struct {
		raw        string
		wantOffset int
	}{
		{"p>", 0},
		{"<p", 0},
		{"<>", 1},
		{"</ >", 3},
		{`<a href="x>`, 8},
		{`<a ="x">`, 3},
		{"<!-- x>", 1},
	}
	for _, test := range tests {
		_, err := ParseTag(test.raw)
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("ParseTag(%q) error = %v; want *ParseError", test.raw, err)
			continue
		}
		if pe.Offset != test.wantOffset {
			t.Errorf("ParseTag(%q) error offset = %d; want %d", test.raw, pe.Offset, test.wantOffset)
		}
	}
}

func TestTagInfo(t *testing.T) {
	tag, err := ParseTag("<!-- x -->")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tag.Info(), " x "; got != want {
		t.Errorf("Info() = %q; want %q", got, want)
	}
	if tag.IsProcessingInstruction() {
		t.Error("comment IsProcessingInstruction() = true")
	}

	p := &Tag{Kind: BeginTag, Name: "p", Attrs: Attributes{{Key: "info", Value: "x"}}}
	if got := p.Info(); got != "" {
		t.Errorf("(<p info=\"x\">).Info() = %q; want \"\"", got)
	}
	var nilTag *Tag
	if got := nilTag.Info(); got != "" {
		t.Errorf("(*Tag)(nil).Info() = %q; want \"\"", got)
	}
}

func BenchmarkParseTag(b *testing.B) {
	const raw = `<a href="https://example.com/" class="link external" target=_blank rel="noopener">`
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseTag(raw); err != nil {
			b.Fatal(err)
		}
	}
}
