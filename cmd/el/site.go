package main

import (
	"github.com/el-go/el/pkg/dom"
	"github.com/el-go/el/pkg/html"
	"github.com/el-go/el/pkg/mathml"
	"github.com/el-go/el/pkg/publish"
	"github.com/el-go/el/pkg/svg"
)

// showcaseSite builds the demo site served by `el serve` and written by
// `el build`.
func showcaseSite() *publish.Site {
	return publish.NewSite().
		Add("/", indexPage()).
		Add("/escaping", escapingPage()).
		Add("/graphics", graphicsPage())
}

func page(title string, body ...any) *dom.Document {
	return html.Html(
		html.Lang("en"),
		html.Head(
			html.Meta(html.Charset("utf-8")),
			html.Meta(html.Name("viewport"), html.Content("width=device-width, initial-scale=1")),
			html.Title(title),
			html.Style("body{font-family:sans-serif;max-width:40rem;margin:2rem auto}"),
		),
		html.Body(
			html.Header(
				html.Nav(
					html.A(html.Href("/"), "Home"), " | ",
					html.A(html.Href("/escaping"), "Escaping"), " | ",
					html.A(html.Href("/graphics"), "Graphics"),
				),
			),
			html.Main(body...),
		),
	).Document()
}

func indexPage() *dom.Document {
	return page("el showcase",
		html.H1("el"),
		html.P("HTML documents as plain Go values."),
		dom.Raw("<!--"),
		dom.Comment(" built with the el showcase generator -- no templates involved "),
		dom.Raw("-->"),
		html.Ul(
			html.Li(html.Code("dom"), " holds the element tree."),
			html.Li(html.Code("render"), " serializes it with strict name checks."),
			html.Li(html.Code("html"), ", ", html.Code("svg"), " and ", html.Code("mathml"), " are the tag catalogs."),
		),
		html.Form(
			html.Action("/signup"), html.Method("post"),
			html.Label(html.For("email"), "Email"),
			html.Input(html.ID("email"), html.Type("email"), html.Name("email"), html.Required()),
			html.Button(html.Type("submit"), "Sign up"),
		),
	)
}

func escapingPage() *dom.Document {
	return page("Escaping",
		html.H1("Escaping"),
		html.P("Text children are escaped: <script> stays inert & harmless."),
		html.P(html.TitleAttr(`quotes "inside" an attribute`), "Attribute values escape double quotes only."),
		html.Pre(html.Code("a < b && b > c")),
		dom.Raw(`<p>Raw content is trusted and emitted <em>verbatim</em>.</p>`),
	)
}

func graphicsPage() *dom.Document {
	return page("Graphics",
		html.H1("SVG and MathML"),
		svg.Svg(
			dom.Attr{Key: "viewBox", Value: "0 0 100 100"},
			html.Width(120), html.Height(120),
			svg.Circle(
				dom.Attr{Key: "cx", Value: "50"},
				dom.Attr{Key: "cy", Value: "50"},
				dom.Attr{Key: "r", Value: "40"},
				dom.Attr{Key: "fill", Value: "rebeccapurple"},
			),
			svg.Text(
				dom.Attr{Key: "x", Value: "50"},
				dom.Attr{Key: "y", Value: "55"},
				dom.Attr{Key: "text-anchor", Value: "middle"},
				dom.Attr{Key: "fill", Value: "white"},
				"el",
			),
		),
		html.P("The quadratic formula:"),
		mathml.Math(
			mathml.Mrow(
				mathml.Mi("x"),
				mathml.Mo("="),
				mathml.Mfrac(
					mathml.Mrow(
						mathml.Mo("-"), mathml.Mi("b"),
						mathml.Mo("±"),
						mathml.Msqrt(
							mathml.Mrow(
								mathml.Msup(mathml.Mi("b"), mathml.Mn("2")),
								mathml.Mo("-"),
								mathml.Mn("4"), mathml.Mi("a"), mathml.Mi("c"),
							),
						),
					),
					mathml.Mrow(mathml.Mn("2"), mathml.Mi("a")),
				),
			),
		),
	)
}
