// Package views renders repository state into HTML. Every renderer is a pure
// projection: it receives the state it needs and returns a component tree,
// never touching the store itself.
package views

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// FormatPrice renders a price the way the storefront displays money
// everywhere: dollar sign, two decimals.
func FormatPrice(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// Layout wraps a page fragment in the shared shell: navigation with the cart
// badge, and the main content area.
func Layout(title string, cartCount int, body g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Link(Rel("stylesheet"), Href("/assets/styles.css")),
			),
			Body(
				Nav(Class("nav"),
					A(Class("brand"), Href("/"), g.Text("LegoLand")),
					A(Href("/products"), g.Text("Shop")),
					A(Href("/cart"),
						g.Text("Cart "),
						Span(Class("badge"), g.Attr("data-cart-count", ""), g.Textf("%d", cartCount)),
					),
					A(Href("/profile"), g.Text("Profile")),
					A(Href("/admin"), g.Text("Admin")),
				),
				Main(Class("container"), body),
			),
		),
	)
}

// Notice is the standard fragment for empty and not-found states.
func Notice(message string) g.Node {
	return P(Class("notice"), g.Text(message))
}
