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

package tagmechanic_test

import (
	"fmt"
	"io"

	tagmechanic "github.com/Acidburn0zzz/tagmechanic-sigil-plugin"
)

func Example() {
	// Replace every <span class="b"> with <strong>.
	result, err := tagmechanic.Rewrite(`<p><span class="b">Hi</span> there</p>`, &tagmechanic.Criterion{
		Action: tagmechanic.Modify,
		Tag:    "span",
		Attr:   &tagmechanic.AttrMatch{Name: "class", Value: "b"},
		NewTag: "strong",
	})
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Output)
	fmt.Println("occurrences:", result.Occurrences)
	// Output:
	// <p><strong>Hi</strong> there</p>
	// occurrences: 1
}

func ExampleRewrite_delete() {
	// Delete links to external sites along with their text.
	result, err := tagmechanic.Rewrite(`<a href="/home">Home</a> <a href="https://example.com/">Out</a>`, &tagmechanic.Criterion{
		Action: tagmechanic.Delete,
		Tag:    "a",
		Attr: &tagmechanic.AttrMatch{
			Name:   "href",
			Value:  "https?://",
			Method: tagmechanic.Regex,
		},
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", result.Output)
	// Output:
	// "<a href=\"/home\">Home</a> "
}

func ExampleParseCriterionYAML() {
	c, err := tagmechanic.ParseCriterionYAML([]byte(
		"action: modify\n" +
			"tag: img\n" +
			"attribute:\n" +
			"  name: src\n" +
			"  value: cover\n" +
			"  method: regex\n" +
			"new_attributes: 'src=\"cover.png\" alt=\"Cover\"'\n",
	))
	if err != nil {
		panic(err)
	}
	result, err := tagmechanic.Rewrite(`<IMG SRC="cover.jpg"/>`, c)
	if err != nil {
		panic(err)
	}
	fmt.Println(result.Output)
	// Output:
	// <img src="cover.png" alt="Cover"/>
}

func ExampleTokenizer() {
	z := tagmechanic.NewTokenizer(`<p>1 &lt; 2<!-- <b> --></p>`)
	for {
		tok, err := z.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			// Not expecting an error from a well-formed document.
			panic(err)
		}
		if tok.Kind != tagmechanic.TagToken {
			fmt.Printf("%d: text %q\n", tok.Offset, tok.Data)
			continue
		}
		tag, err := tagmechanic.ParseTag(tok.Data)
		if err != nil {
			panic(err)
		}
		fmt.Printf("%d: %v %s\n", tok.Offset, tag.Kind, tag.Name)
	}
	// Output:
	// 0: BeginTag p
	// 3: text "1 &lt; 2"
	// 11: PassthroughTag !--
	// 23: EndTag p
}

func ExampleFind() {
	matches, err := tagmechanic.Find(`<div><p>a</p></div><p>b</p>`, &tagmechanic.Criterion{
		Action: tagmechanic.Delete,
		Tag:    "p",
	})
	if err != nil {
		panic(err)
	}
	for _, m := range matches {
		fmt.Println(m.Offset, m.Path)
	}
	// Output:
	// 5 [div]
	// 19 []
}
