package pbtext

import (
	"strings"
	"sync"
)

// Document is the immutable result of indexing one input text.
// Every View derived from a Document borrows its text and descriptor arrays.
type Document struct {
	text     string
	messages []messageDesc
	attrs    []attrDesc

	linesOnce sync.Once
	lines     []LineInfo
}

// Parse indexes text in a single linear pass and returns the result.
func Parse(text string) *Document {
	doc := &Document{text: text}
	doc.index()
	return doc
}

// ParseBytes is like Parse but takes the input as bytes.
// The content is copied once into the document's text.
func ParseBytes(content []byte) *Document {
	return Parse(string(content))
}

// Root returns a View of the implicit container holding all top-level
// blocks and attributes.
func (d *Document) Root() View {
	return View{doc: d, msg: rootIndex}
}

// Text returns the original input.
func (d *Document) Text() string {
	return d.text
}

// MessageCount returns the number of blocks in the document, excluding the root.
func (d *Document) MessageCount() int {
	return len(d.messages) - 1
}

// AttributeCount returns the number of attributes at every nesting level.
func (d *Document) AttributeCount() int {
	return len(d.attrs)
}

// index performs the single pass. Delimiters are only significant outside a
// value; a value runs from its colon to the end of the line, so once a colon
// is seen the scan jumps straight to the next newline.
func (d *Document) index() {
	text := d.text

	d.messages = make([]messageDesc, 1, 1+len(text)/64)
	d.messages[rootIndex].openBrace = -1
	d.attrs = make([]attrDesc, 0, len(text)/16)

	stack := make([]int, 1, 16)
	stack[0] = rootIndex

	for idx := 0; idx < len(text); idx++ {
		switch text[idx] {
		case ':':
			top := stack[len(stack)-1]
			d.attrs = append(d.attrs, attrDesc{colon: idx})
			d.messages[top].attrs = append(d.messages[top].attrs, len(d.attrs)-1)

			newline := strings.IndexByte(text[idx+1:], '\n')
			if newline < 0 {
				return
			}
			idx += newline + 1

		case '{':
			top := stack[len(stack)-1]
			d.messages = append(d.messages, messageDesc{openBrace: idx})
			child := len(d.messages) - 1
			d.messages[top].children = append(d.messages[top].children, child)
			stack = append(stack, child)

		case '}':
			// A stray '}' never closes the root.
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		}
	}
}

func (d *Document) messageName(msg int) string {
	m := &d.messages[msg]
	if m.openBrace < 0 {
		return ""
	}
	return m.name.get(func() string {
		return extractName(d.text, m.openBrace)
	})
}

func (d *Document) attributeName(attr int) string {
	a := &d.attrs[attr]
	return a.name.get(func() string {
		return extractName(d.text, a.colon)
	})
}

func (d *Document) attributeValue(attr int) string {
	a := &d.attrs[attr]
	return a.value.get(func() string {
		return extractValue(d.text, a.colon)
	})
}
