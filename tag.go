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

//go:generate stringer -type=TagKind -output=tag_string.go

package tagmechanic

// TagKind is an enumeration of the shapes a tag can take.
type TagKind uint8

const (
	// BeginTag is an opening tag, like <p>.
	BeginTag TagKind = 1 + iota
	// EndTag is a closing tag, like </p>.
	EndTag
	// SingleTag is a self-closing tag without a space before the slash, like <br/>.
	SingleTag
	// SingleExtendedTag is a self-closing tag with a space before the slash, like <br />.
	SingleExtendedTag
	// PassthroughTag is an opaque span that is copied through:
	// a comment, document type declaration, CDATA section,
	// or processing instruction.
	PassthroughTag
)

// Names of passthrough tags.
// Processing instructions use their target prefixed with '?' (like "?xml").
const (
	CommentName = "!--"
	DoctypeName = "!DOCTYPE"
	CDATAName   = "![CDATA["
)

// infoKey is the synthetic attribute that holds a passthrough tag's content.
const infoKey = "info"

// A Tag is the parsed form of a single tag.
type Tag struct {
	Kind TagKind
	// Name is the tag name.
	// Element names are lower-cased.
	// Passthrough tags use one of CommentName, DoctypeName, CDATAName
	// or a processing instruction target.
	Name string
	// Attrs is nil for tags without attributes.
	// End tags never have attributes.
	// Passthrough tags have a single "info" attribute
	// holding their verbatim content.
	Attrs Attributes
}

// Info returns the verbatim content of a passthrough tag.
func (t *Tag) Info() string {
	if t == nil || t.Kind != PassthroughTag {
		return ""
	}
	v, _ := t.Attrs.Get(infoKey)
	return v
}

// IsProcessingInstruction reports whether t is a processing instruction like <?xml ...?>.
func (t *Tag) IsProcessingInstruction() bool {
	return t != nil && t.Kind == PassthroughTag && len(t.Name) > 0 && t.Name[0] == '?'
}

func newPassthrough(name, info string) *Tag {
	return &Tag{
		Kind:  PassthroughTag,
		Name:  name,
		Attrs: Attributes{{Key: infoKey, Value: info}},
	}
}
