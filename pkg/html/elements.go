package html

// Constructors for all non-deprecated HTML elements.
// https://developer.mozilla.org/en-US/docs/Web/HTML/Element

import "github.com/el-go/el/pkg/dom"

// Main root

func Html(args ...any) *dom.Element { return dom.Normal("html", args...) }

// Document metadata

func Base(args ...any) *dom.Element  { return dom.New("base", dom.KindVoid, args...) }
func Head(args ...any) *dom.Element  { return dom.Normal("head", args...) }
func Link(args ...any) *dom.Element  { return dom.New("link", dom.KindVoid, args...) }
func Meta(args ...any) *dom.Element  { return dom.New("meta", dom.KindVoid, args...) }
func Style(args ...any) *dom.Element { return dom.New("style", dom.KindRawText, args...) }
func Title(args ...any) *dom.Element { return dom.New("title", dom.KindEscapableRawText, args...) }

// Sectioning root

func Body(args ...any) *dom.Element { return dom.Normal("body", args...) }

// Content sectioning

func Address(args ...any) *dom.Element { return dom.Normal("address", args...) }
func Article(args ...any) *dom.Element { return dom.Normal("article", args...) }
func Aside(args ...any) *dom.Element   { return dom.Normal("aside", args...) }
func Footer(args ...any) *dom.Element  { return dom.Normal("footer", args...) }
func Header(args ...any) *dom.Element  { return dom.Normal("header", args...) }
func H1(args ...any) *dom.Element      { return dom.Normal("h1", args...) }
func H2(args ...any) *dom.Element      { return dom.Normal("h2", args...) }
func H3(args ...any) *dom.Element      { return dom.Normal("h3", args...) }
func H4(args ...any) *dom.Element      { return dom.Normal("h4", args...) }
func H5(args ...any) *dom.Element      { return dom.Normal("h5", args...) }
func H6(args ...any) *dom.Element      { return dom.Normal("h6", args...) }
func Hgroup(args ...any) *dom.Element  { return dom.Normal("hgroup", args...) }
func Main(args ...any) *dom.Element    { return dom.Normal("main", args...) }
func Nav(args ...any) *dom.Element     { return dom.Normal("nav", args...) }
func Section(args ...any) *dom.Element { return dom.Normal("section", args...) }
func Search(args ...any) *dom.Element  { return dom.Normal("search", args...) }

// Text content

func Blockquote(args ...any) *dom.Element { return dom.Normal("blockquote", args...) }
func Dd(args ...any) *dom.Element         { return dom.Normal("dd", args...) }
func Div(args ...any) *dom.Element        { return dom.Normal("div", args...) }
func Dl(args ...any) *dom.Element         { return dom.Normal("dl", args...) }
func Dt(args ...any) *dom.Element         { return dom.Normal("dt", args...) }
func Figcaption(args ...any) *dom.Element { return dom.Normal("figcaption", args...) }
func Figure(args ...any) *dom.Element     { return dom.Normal("figure", args...) }
func Hr(args ...any) *dom.Element         { return dom.New("hr", dom.KindVoid, args...) }
func Li(args ...any) *dom.Element         { return dom.Normal("li", args...) }
func Menu(args ...any) *dom.Element       { return dom.Normal("menu", args...) }
func Ol(args ...any) *dom.Element         { return dom.Normal("ol", args...) }
func P(args ...any) *dom.Element          { return dom.Normal("p", args...) }
func Pre(args ...any) *dom.Element        { return dom.Normal("pre", args...) }
func Ul(args ...any) *dom.Element         { return dom.Normal("ul", args...) }

// Inline text semantics

func A(args ...any) *dom.Element      { return dom.Normal("a", args...) }
func Abbr(args ...any) *dom.Element   { return dom.Normal("abbr", args...) }
func B(args ...any) *dom.Element      { return dom.Normal("b", args...) }
func Bdi(args ...any) *dom.Element    { return dom.Normal("bdi", args...) }
func Bdo(args ...any) *dom.Element    { return dom.Normal("bdo", args...) }
func Br(args ...any) *dom.Element     { return dom.New("br", dom.KindVoid, args...) }
func Cite(args ...any) *dom.Element   { return dom.Normal("cite", args...) }
func Code(args ...any) *dom.Element   { return dom.Normal("code", args...) }
func Data(args ...any) *dom.Element   { return dom.Normal("data", args...) }
func Dfn(args ...any) *dom.Element    { return dom.Normal("dfn", args...) }
func Em(args ...any) *dom.Element     { return dom.Normal("em", args...) }
func I(args ...any) *dom.Element      { return dom.Normal("i", args...) }
func Kbd(args ...any) *dom.Element    { return dom.Normal("kbd", args...) }
func Mark(args ...any) *dom.Element   { return dom.Normal("mark", args...) }
func Q(args ...any) *dom.Element      { return dom.Normal("q", args...) }
func Rp(args ...any) *dom.Element     { return dom.Normal("rp", args...) }
func Rt(args ...any) *dom.Element     { return dom.Normal("rt", args...) }
func Ruby(args ...any) *dom.Element   { return dom.Normal("ruby", args...) }
func S(args ...any) *dom.Element      { return dom.Normal("s", args...) }
func Samp(args ...any) *dom.Element   { return dom.Normal("samp", args...) }
func Small(args ...any) *dom.Element  { return dom.Normal("small", args...) }
func Span(args ...any) *dom.Element   { return dom.Normal("span", args...) }
func Strong(args ...any) *dom.Element { return dom.Normal("strong", args...) }
func Sub(args ...any) *dom.Element    { return dom.Normal("sub", args...) }
func Sup(args ...any) *dom.Element    { return dom.Normal("sup", args...) }
func Time(args ...any) *dom.Element   { return dom.Normal("time", args...) }
func U(args ...any) *dom.Element      { return dom.Normal("u", args...) }
func Var(args ...any) *dom.Element    { return dom.Normal("var", args...) }
func Wbr(args ...any) *dom.Element    { return dom.New("wbr", dom.KindVoid, args...) }

// Image and multimedia

func Area(args ...any) *dom.Element  { return dom.New("area", dom.KindVoid, args...) }
func Audio(args ...any) *dom.Element { return dom.Normal("audio", args...) }
func Img(args ...any) *dom.Element   { return dom.New("img", dom.KindVoid, args...) }
func Map(args ...any) *dom.Element   { return dom.Normal("map", args...) }
func Track(args ...any) *dom.Element { return dom.New("track", dom.KindVoid, args...) }
func Video(args ...any) *dom.Element { return dom.Normal("video", args...) }

// Embedded content

func Embed(args ...any) *dom.Element       { return dom.New("embed", dom.KindVoid, args...) }
func Fencedframe(args ...any) *dom.Element { return dom.Normal("fencedframe", args...) }
func Iframe(args ...any) *dom.Element      { return dom.Normal("iframe", args...) }
func Object(args ...any) *dom.Element      { return dom.Normal("object", args...) }
func Picture(args ...any) *dom.Element     { return dom.Normal("picture", args...) }
func Portal(args ...any) *dom.Element      { return dom.Normal("portal", args...) }
func Source(args ...any) *dom.Element      { return dom.New("source", dom.KindVoid, args...) }

// SVG and MathML roots; the full foreign catalogs live in pkg/svg and
// pkg/mathml.

func Svg(args ...any) *dom.Element  { return dom.New("svg", dom.KindForeign, args...) }
func Math(args ...any) *dom.Element { return dom.New("math", dom.KindForeign, args...) }

// Scripting

func Canvas(args ...any) *dom.Element   { return dom.Normal("canvas", args...) }
func Noscript(args ...any) *dom.Element { return dom.Normal("noscript", args...) }
func Script(args ...any) *dom.Element   { return dom.New("script", dom.KindRawText, args...) }

// Demarcating edits

func Del(args ...any) *dom.Element { return dom.Normal("del", args...) }
func Ins(args ...any) *dom.Element { return dom.Normal("ins", args...) }

// Table content

func Caption(args ...any) *dom.Element  { return dom.Normal("caption", args...) }
func Col(args ...any) *dom.Element      { return dom.New("col", dom.KindVoid, args...) }
func Colgroup(args ...any) *dom.Element { return dom.Normal("colgroup", args...) }
func Table(args ...any) *dom.Element    { return dom.Normal("table", args...) }
func Tbody(args ...any) *dom.Element    { return dom.Normal("tbody", args...) }
func Td(args ...any) *dom.Element       { return dom.Normal("td", args...) }
func Tfoot(args ...any) *dom.Element    { return dom.Normal("tfoot", args...) }
func Th(args ...any) *dom.Element       { return dom.Normal("th", args...) }
func Thead(args ...any) *dom.Element    { return dom.Normal("thead", args...) }
func Tr(args ...any) *dom.Element       { return dom.Normal("tr", args...) }

// Forms

func Button(args ...any) *dom.Element   { return dom.Normal("button", args...) }
func Datalist(args ...any) *dom.Element { return dom.Normal("datalist", args...) }
func Fieldset(args ...any) *dom.Element { return dom.Normal("fieldset", args...) }
func Form(args ...any) *dom.Element     { return dom.Normal("form", args...) }
func Input(args ...any) *dom.Element    { return dom.New("input", dom.KindVoid, args...) }
func Label(args ...any) *dom.Element    { return dom.Normal("label", args...) }
func Legend(args ...any) *dom.Element   { return dom.Normal("legend", args...) }
func Meter(args ...any) *dom.Element    { return dom.Normal("meter", args...) }
func Optgroup(args ...any) *dom.Element { return dom.Normal("optgroup", args...) }
func Option(args ...any) *dom.Element   { return dom.Normal("option", args...) }
func Output(args ...any) *dom.Element   { return dom.Normal("output", args...) }
func Progress(args ...any) *dom.Element { return dom.Normal("progress", args...) }
func Select(args ...any) *dom.Element   { return dom.Normal("select", args...) }
func Textarea(args ...any) *dom.Element {
	return dom.New("textarea", dom.KindEscapableRawText, args...)
}

// Interactive elements

func Details(args ...any) *dom.Element { return dom.Normal("details", args...) }
func Dialog(args ...any) *dom.Element  { return dom.Normal("dialog", args...) }
func Summary(args ...any) *dom.Element { return dom.Normal("summary", args...) }

// Web Components

func Slot(args ...any) *dom.Element     { return dom.Normal("slot", args...) }
func Template(args ...any) *dom.Element { return dom.New("template", dom.KindTemplate, args...) }

// Obsolete and deprecated elements are intentionally excluded.
