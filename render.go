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

// AppendTag appends the markup for t to dst
// and returns the resulting byte slice.
// Attribute values are written inside double quotes as-is:
// they are not escaped.
func AppendTag(dst []byte, t *Tag) []byte {
	switch t.Kind {
	case EndTag:
		dst = append(dst, "</"...)
		dst = append(dst, t.Name...)
		dst = append(dst, '>')
		return dst
	case PassthroughTag:
		return appendPassthrough(dst, t)
	}

	dst = append(dst, '<')
	dst = append(dst, t.Name...)
	for _, attr := range t.Attrs {
		dst = append(dst, ' ')
		dst = append(dst, attr.Key...)
		if attr.Bare {
			continue
		}
		dst = append(dst, `="`...)
		dst = append(dst, attr.Value...)
		dst = append(dst, '"')
	}
	switch t.Kind {
	case SingleTag:
		dst = append(dst, "/>"...)
	case SingleExtendedTag:
		dst = append(dst, " />"...)
	default:
		dst = append(dst, '>')
	}
	return dst
}

func appendPassthrough(dst []byte, t *Tag) []byte {
	info := t.Info()
	switch {
	case t.Name == CommentName:
		dst = append(dst, "<!--"...)
		dst = append(dst, info...)
		dst = append(dst, "-->"...)
	case t.IsProcessingInstruction():
		dst = append(dst, '<')
		dst = append(dst, t.Name...)
		dst = append(dst, info...)
		dst = append(dst, "?>"...)
	default:
		// Document types, CDATA sections, and other declarations
		// keep everything up to the closing '>' in info.
		dst = append(dst, '<')
		dst = append(dst, t.Name...)
		dst = append(dst, info...)
		dst = append(dst, '>')
	}
	return dst
}

// String returns the markup for t.
func (t *Tag) String() string {
	return string(AppendTag(nil, t))
}
