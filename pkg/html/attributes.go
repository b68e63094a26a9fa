package html

// Helpers for common element attributes.
// https://developer.mozilla.org/en-US/docs/Web/HTML/Attributes

import (
	"strconv"
	"strings"

	"github.com/el-go/el/pkg/dom"
)

// attr creates an Attr with the given key and value.
func attr(key, value string) dom.Attr {
	return dom.Attr{Key: key, Value: value}
}

// Attr creates an arbitrary attribute; the typed helpers below cover
// the common ones.
func Attr(key, value string) dom.Attr { return attr(key, value) }

// Identity attributes

// ID sets the id attribute.
func ID(id string) dom.Attr { return attr("id", id) }

// Class sets the class attribute, joining multiple classes with spaces.
func Class(classes ...string) dom.Attr { return attr("class", strings.Join(classes, " ")) }

// StyleAttr sets the style attribute (named to avoid conflict with the
// Style element).
func StyleAttr(style string) dom.Attr { return attr("style", style) }

// Slot and part

// SlotAttr sets the slot attribute (named to avoid conflict with the
// Slot element).
func SlotAttr(name string) dom.Attr { return attr("slot", name) }

// Data attributes

// DataAttr creates a data-* attribute (named to avoid conflict with the
// Data element). Example: DataAttr("id", "123") renders data-id="123".
func DataAttr(key, value string) dom.Attr { return attr("data-"+key, value) }

// Document attributes

// Lang sets the lang attribute.
func Lang(lang string) dom.Attr { return attr("lang", lang) }

// Dir sets the dir attribute.
func Dir(dir string) dom.Attr { return attr("dir", dir) }

// Charset sets the charset attribute.
func Charset(charset string) dom.Attr { return attr("charset", charset) }

// Name sets the name attribute.
func Name(name string) dom.Attr { return attr("name", name) }

// Content sets the content attribute (for meta elements).
func Content(content string) dom.Attr { return attr("content", content) }

// HTTPEquiv sets the http-equiv attribute.
func HTTPEquiv(value string) dom.Attr { return attr("http-equiv", value) }

// Link attributes

// Href sets the href attribute.
func Href(url string) dom.Attr { return attr("href", url) }

// Rel sets the rel attribute.
func Rel(rel string) dom.Attr { return attr("rel", rel) }

// Target sets the target attribute.
func Target(target string) dom.Attr { return attr("target", target) }

// Download sets the download attribute.
func Download(filename string) dom.Attr { return attr("download", filename) }

// Media attributes

// Src sets the src attribute.
func Src(url string) dom.Attr { return attr("src", url) }

// Alt sets the alt attribute.
func Alt(text string) dom.Attr { return attr("alt", text) }

// Width sets the width attribute.
func Width(w int) dom.Attr { return attr("width", strconv.Itoa(w)) }

// Height sets the height attribute.
func Height(h int) dom.Attr { return attr("height", strconv.Itoa(h)) }

// Loading sets the loading attribute ("lazy" or "eager").
func Loading(mode string) dom.Attr { return attr("loading", mode) }

// Form attributes

// Type sets the type attribute.
func Type(t string) dom.Attr { return attr("type", t) }

// Value sets the value attribute.
func Value(v string) dom.Attr { return attr("value", v) }

// Placeholder sets the placeholder attribute.
func Placeholder(text string) dom.Attr { return attr("placeholder", text) }

// Min sets the min attribute.
func Min(v string) dom.Attr { return attr("min", v) }

// Max sets the max attribute.
func Max(v string) dom.Attr { return attr("max", v) }

// Step sets the step attribute.
func Step(v string) dom.Attr { return attr("step", v) }

// For sets the for attribute.
func For(id string) dom.Attr { return attr("for", id) }

// Action sets the action attribute.
func Action(url string) dom.Attr { return attr("action", url) }

// Method sets the method attribute.
func Method(m string) dom.Attr { return attr("method", m) }

// Autocomplete sets the autocomplete attribute.
func Autocomplete(mode string) dom.Attr { return attr("autocomplete", mode) }

// Rows sets the rows attribute.
func Rows(n int) dom.Attr { return attr("rows", strconv.Itoa(n)) }

// Cols sets the cols attribute.
func Cols(n int) dom.Attr { return attr("cols", strconv.Itoa(n)) }

// FormAttr sets the form attribute on a form-associated element (named
// to avoid conflict with the Form element).
func FormAttr(id string) dom.Attr { return attr("form", id) }

// Table attributes

// Colspan sets the colspan attribute.
func Colspan(n int) dom.Attr { return attr("colspan", strconv.Itoa(n)) }

// Rowspan sets the rowspan attribute.
func Rowspan(n int) dom.Attr { return attr("rowspan", strconv.Itoa(n)) }

// Misc attributes

// TitleAttr sets the title attribute (named to avoid conflict with the
// Title element).
func TitleAttr(text string) dom.Attr { return attr("title", text) }

// CiteAttr sets the cite attribute (named to avoid conflict with the
// Cite element).
func CiteAttr(url string) dom.Attr { return attr("cite", url) }

// Role sets the role attribute.
func Role(role string) dom.Attr { return attr("role", role) }

// TabIndex sets the tabindex attribute.
func TabIndex(index int) dom.Attr { return attr("tabindex", strconv.Itoa(index)) }

// AriaLabel sets the aria-label attribute.
func AriaLabel(label string) dom.Attr { return attr("aria-label", label) }

// AriaHidden sets the aria-hidden attribute.
func AriaHidden(hidden bool) dom.Attr { return attr("aria-hidden", strconv.FormatBool(hidden)) }

// Boolean attributes render as the bare name.

// Checked sets the checked attribute.
func Checked() dom.Attr { return dom.Yes("checked") }

// Disabled sets the disabled attribute.
func Disabled() dom.Attr { return dom.Yes("disabled") }

// Required sets the required attribute.
func Required() dom.Attr { return dom.Yes("required") }

// Readonly sets the readonly attribute.
func Readonly() dom.Attr { return dom.Yes("readonly") }

// Multiple sets the multiple attribute.
func Multiple() dom.Attr { return dom.Yes("multiple") }

// Selected sets the selected attribute.
func Selected() dom.Attr { return dom.Yes("selected") }

// Autofocus sets the autofocus attribute.
func Autofocus() dom.Attr { return dom.Yes("autofocus") }

// Hidden sets the hidden attribute.
func Hidden() dom.Attr { return dom.Yes("hidden") }

// Open sets the open attribute.
func Open() dom.Attr { return dom.Yes("open") }

// Defer sets the defer attribute.
func Defer() dom.Attr { return dom.Yes("defer") }

// Async sets the async attribute.
func Async() dom.Attr { return dom.Yes("async") }

// Loop sets the loop attribute.
func Loop() dom.Attr { return dom.Yes("loop") }

// Controls sets the controls attribute.
func Controls() dom.Attr { return dom.Yes("controls") }

// Autoplay sets the autoplay attribute.
func Autoplay() dom.Attr { return dom.Yes("autoplay") }

// Muted sets the muted attribute.
func Muted() dom.Attr { return dom.Yes("muted") }

// Novalidate sets the novalidate attribute.
func Novalidate() dom.Attr { return dom.Yes("novalidate") }
