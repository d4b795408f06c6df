package viewmodel

import (
	"strings"

	"conandweb/internal/domain"
)

// Separators for PlainText.
const (
	// ParagraphSeparator keeps paragraphs apart in multi-paragraph contexts (about text).
	ParagraphSeparator = "\n\n"
	// InlineSeparator collapses a document onto one line (cards, event hero).
	InlineSeparator = " "
)

var blockTypes = map[string]bool{
	"paragraph": true,
	"heading":   true,
	"quote":     true,
	"list":      true,
	"listitem":  true,
}

// PlainText flattens rt into plain text. Each top-level node and each nested block
// becomes one group; groups are joined with sep and the result is trimmed. Inline text
// inside a group is concatenated as-is. An empty document yields "".
func PlainText(rt domain.RichText, sep string) string {
	if rt.Root == nil {
		return ""
	}
	f := &flattener{sep: sep}
	for _, n := range rt.Root.Children {
		f.walk(n)
		f.flush()
	}
	return strings.TrimSpace(strings.Join(f.parts, sep))
}

type flattener struct {
	sep   string
	parts []string
	cur   strings.Builder
}

func (f *flattener) walk(n domain.RichTextNode) {
	switch {
	case n.Type == "linebreak":
		if f.sep == ParagraphSeparator {
			f.cur.WriteString("\n")
		} else {
			f.cur.WriteString(" ")
		}
	case n.IsLeaf():
		f.cur.WriteString(n.Text)
	case blockTypes[n.Type]:
		f.flush()
		for _, c := range n.Children {
			f.walk(c)
		}
		f.flush()
	default:
		for _, c := range n.Children {
			f.walk(c)
		}
	}
}

func (f *flattener) flush() {
	if s := strings.TrimSpace(f.cur.String()); s != "" {
		f.parts = append(f.parts, s)
	}
	f.cur.Reset()
}

// Paragraphs splits flattened text on line breaks, dropping blank lines.
func Paragraphs(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
