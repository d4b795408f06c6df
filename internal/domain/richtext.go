package domain

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// RichTextNode is one node of a structured rich-text document. A node is either a text
// leaf (Text set, no children) or a container whose Children are nested nodes.
type RichTextNode struct {
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Text     string         `json:"text,omitempty" yaml:"text,omitempty"`
	Children []RichTextNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// IsLeaf reports whether n is a text leaf.
func (n RichTextNode) IsLeaf() bool {
	return len(n.Children) == 0 && (n.Type == "text" || n.Text != "")
}

// RichText is a structured document with a single root container. The zero value is an
// empty document. Malformed stored documents decode to the zero value instead of failing.
type RichText struct {
	Root *RichTextNode
}

// PlainText wraps each of paragraphs in its own paragraph node.
func PlainText(paragraphs ...string) RichText {
	root := &RichTextNode{Type: "root"}
	for _, p := range paragraphs {
		root.Children = append(root.Children, RichTextNode{
			Type:     "paragraph",
			Children: []RichTextNode{{Type: "text", Text: p}},
		})
	}
	return RichText{Root: root}
}

// IsEmpty reports whether the document has no content nodes.
func (rt RichText) IsEmpty() bool {
	return rt.Root == nil || len(rt.Root.Children) == 0
}

type richTextDocument struct {
	Root *RichTextNode `json:"root" yaml:"root"`
}

// UnmarshalJSON accepts {"root": {...}}, a plain JSON string (one paragraph) or null.
// Any other shape yields an empty document.
func (rt *RichText) UnmarshalJSON(data []byte) error {
	*rt = RichText{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err == nil && s != "" {
			*rt = PlainText(s)
		}
	case '{':
		var doc richTextDocument
		if err := json.Unmarshal(data, &doc); err == nil && doc.Root != nil {
			rt.Root = doc.Root
		}
	}
	return nil
}

// MarshalJSON writes the document in its {"root": ...} form, or null when empty.
func (rt RichText) MarshalJSON() ([]byte, error) {
	if rt.Root == nil {
		return []byte("null"), nil
	}
	return json.Marshal(richTextDocument{Root: rt.Root})
}

// UnmarshalYAML accepts a plain string (blank lines separate paragraphs) or a {root: ...}
// mapping.
func (rt *RichText) UnmarshalYAML(node *yaml.Node) error {
	*rt = RichText{}
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return nil
		}
		var paragraphs []string
		for _, p := range bytes.Split([]byte(node.Value), []byte("\n\n")) {
			if s := string(bytes.TrimSpace(p)); s != "" {
				paragraphs = append(paragraphs, s)
			}
		}
		*rt = PlainText(paragraphs...)
		return nil
	case yaml.MappingNode:
		var doc richTextDocument
		if err := node.Decode(&doc); err != nil {
			return err
		}
		rt.Root = doc.Root
		return nil
	}
	return nil
}
