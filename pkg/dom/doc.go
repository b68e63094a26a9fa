// Package dom provides the element tree that el renders to HTML.
//
// The tree is plain data: an Element has a name, a Kind, a map of
// attributes, and an ordered list of Content children. Content is the
// tagged union of everything an element can contain - raw passthrough
// text, escapable text, a comment, or a nested element.
//
// # Building Trees
//
// Elements are created with variadic constructors that accept attributes,
// children, and strings in any order:
//
//	dom.New("div", dom.KindNormal,
//	    dom.Attr{Key: "class", Value: "card"},
//	    dom.Text("Hello"),
//	)
//
// The typed tag catalogs in pkg/html, pkg/svg, and pkg/mathml are the
// usual way to construct elements; dom.New is the escape hatch for
// custom tags.
//
// # Kinds
//
// Kind is fixed at construction and decides the element's content model:
// void elements reject children, raw text elements accept only text, and
// foreign elements keep their given casing and self-close when empty.
// The rendering rules live in pkg/render.
//
// Trees are built once and handed to the renderer, which treats them as
// read-only. The same tree may be rendered concurrently from multiple
// goroutines.
package dom
