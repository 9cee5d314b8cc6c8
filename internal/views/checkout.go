package views

import (
	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/shop"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// CheckoutSummary lists the cart line names with quantities plus the total.
func CheckoutSummary(lines []models.CartLine) g.Node {
	return Div(Class("card"), g.Attr("data-checkout-summary", ""),
		H3(g.Text("Order Summary")),
		Ul(
			g.Map(lines, func(line models.CartLine) g.Node {
				return Li(g.Textf("%s x %d", line.Name, line.Quantity))
			}),
		),
		P(Class("price"), g.Text(FormatPrice(shop.Total(lines)))),
	)
}

// CheckoutPage renders the summary next to the shipping form. A non-empty
// notice is shown above the form; the empty-cart rejection uses it.
func CheckoutPage(lines []models.CartLine, notice string) g.Node {
	return Div(Class("split"),
		CheckoutSummary(lines),
		Div(Class("card"),
			H3(g.Text("Shipping Details")),
			g.If(notice != "", Notice(notice)),
			Form(g.Attr("data-checkout-form", ""), Action("/checkout"), Method("post"),
				Label(For("fullName"), g.Text("Full Name")),
				Input(ID("fullName"), Type("text"), Name("fullName"), Required()),
				Label(For("email"), g.Text("Email")),
				Input(ID("email"), Type("email"), Name("email"), Required()),
				Label(For("address"), g.Text("Address")),
				Input(ID("address"), Type("text"), Name("address")),
				Label(For("city"), g.Text("City")),
				Input(ID("city"), Type("text"), Name("city")),
				Label(For("postcode"), g.Text("Postcode")),
				Input(ID("postcode"), Type("text"), Name("postcode")),
				Button(Type("submit"), Class("button"), g.Text("Place Order")),
			),
		),
	)
}
