package pbtext

import "slices"

// View is a read handle positioned on one block of a Document.
// It is a small value type; copying it is cheap and never copies the
// underlying text or descriptor arrays. The zero View is empty: every
// lookup on it reports absence.
type View struct {
	doc *Document
	msg int
}

// Field is one attribute occurrence as a name/value pair.
type Field struct {
	Name  string
	Value string
}

// IsValid reports whether the view is attached to a document.
func (v View) IsValid() bool {
	return v.doc != nil
}

// IsRoot reports whether the view is the document's implicit root container.
func (v View) IsRoot() bool {
	return v.doc != nil && v.msg == rootIndex
}

// Document returns the document the view reads from.
func (v View) Document() *Document {
	return v.doc
}

// Name returns the block name, or "" for the root container.
func (v View) Name() string {
	if v.doc == nil {
		return ""
	}
	return v.doc.messageName(v.msg)
}

// Position returns the 1-based location of the block's opening brace.
// The root container has no position.
func (v View) Position() Position {
	if v.doc == nil || v.msg == rootIndex {
		return Position{}
	}
	return v.doc.PositionAt(v.doc.messages[v.msg].openBrace)
}

func (v View) message() *messageDesc {
	return &v.doc.messages[v.msg]
}

// Element returns the first direct child block named name.
func (v View) Element(name string) (View, bool) {
	if v.doc == nil {
		return View{}, false
	}
	text := v.doc.text
	for _, child := range v.message().children {
		if matchName(text, v.doc.messages[child].openBrace, name) {
			return View{doc: v.doc, msg: child}, true
		}
	}
	return View{}, false
}

// Elements returns every direct child block named name, in document order.
// The result is empty, not nil, when nothing matches.
func (v View) Elements(name string) []View {
	res := []View{}
	if v.doc == nil {
		return res
	}
	text := v.doc.text
	for _, child := range v.message().children {
		if matchName(text, v.doc.messages[child].openBrace, name) {
			res = append(res, View{doc: v.doc, msg: child})
		}
	}
	return res
}

// Children returns every direct child block, in document order.
func (v View) Children() []View {
	if v.doc == nil {
		return []View{}
	}
	children := v.message().children
	res := make([]View, len(children))
	for i, child := range children {
		res[i] = View{doc: v.doc, msg: child}
	}
	return res
}

// Attribute returns the value of the first direct attribute named name.
// The boolean distinguishes an absent attribute from an empty value.
func (v View) Attribute(name string) (string, bool) {
	if v.doc == nil {
		return "", false
	}
	text := v.doc.text
	for _, attr := range v.message().attrs {
		if matchName(text, v.doc.attrs[attr].colon, name) {
			return v.doc.attributeValue(attr), true
		}
	}
	return "", false
}

// Attributes returns the values of every direct attribute named name, in
// document order. The result is empty, not nil, when nothing matches.
func (v View) Attributes(name string) []string {
	res := []string{}
	if v.doc == nil {
		return res
	}
	text := v.doc.text
	for _, attr := range v.message().attrs {
		if matchName(text, v.doc.attrs[attr].colon, name) {
			res = append(res, v.doc.attributeValue(attr))
		}
	}
	return res
}

// AttributeNames returns the names of the direct attributes, in document
// order, with repeats preserved.
func (v View) AttributeNames() []string {
	if v.doc == nil {
		return []string{}
	}
	attrs := v.message().attrs
	res := make([]string, len(attrs))
	for i, attr := range attrs {
		res[i] = v.doc.attributeName(attr)
	}
	return res
}

// Fields returns the direct attributes as name/value pairs, in document order.
func (v View) Fields() []Field {
	if v.doc == nil {
		return []Field{}
	}
	attrs := v.message().attrs
	res := make([]Field, len(attrs))
	for i, attr := range attrs {
		res[i] = Field{
			Name:  v.doc.attributeName(attr),
			Value: v.doc.attributeValue(attr),
		}
	}
	return res
}

// HasKey reports whether at least one direct child block is named name.
// Attributes are not keys.
func (v View) HasKey(name string) bool {
	_, ok := v.Element(name)
	return ok
}

// Keys returns the names of the direct child blocks in document order,
// repeats preserved. Descendants of children are not included; see AllKeys.
// The list is computed once per block and the caller receives a copy.
func (v View) Keys() []string {
	if v.doc == nil {
		return []string{}
	}
	m := v.message()
	if cached := m.keys.Load(); cached != nil {
		return slices.Clone(*cached)
	}

	keys := make([]string, len(m.children))
	for i, child := range m.children {
		keys[i] = v.doc.messageName(child)
	}
	m.keys.Store(&keys)
	return slices.Clone(keys)
}
