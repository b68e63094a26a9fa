// Package html provides constructors for all non-deprecated HTML
// elements and helpers for common attributes.
//
// Element constructors take attributes, children, and strings in any
// order:
//
//	html.Div(html.Class("card"),
//	    html.H1("Title"),
//	    html.P("Hello ", html.Em("world"), "!"),
//	)
//
// Each constructor fixes the element's kind (void, raw text, and so on)
// so the renderer can enforce the right content model. Attribute helpers
// whose natural name clashes with an element constructor carry an Attr
// suffix (TitleAttr, StyleAttr, CiteAttr, DataAttr, FormAttr).
package html
