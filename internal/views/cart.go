package views

import (
	"strconv"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/shop"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// CartView renders the cart page fragment: an empty notice when there are no
// lines, otherwise one row per line and a computed total footer.
func CartView(lines []models.CartLine) g.Node {
	if len(lines) == 0 {
		return Div(g.Attr("data-cart-items", ""),
			Notice("Your cart is empty. Time to add some fun!"),
			cartTotal(0),
		)
	}
	return Div(g.Attr("data-cart-items", ""),
		g.Map(lines, cartRow),
		cartTotal(shop.Total(lines)),
	)
}

func cartTotal(total float64) g.Node {
	return P(Class("price"), g.Attr("data-cart-total", ""), g.Text(FormatPrice(total)))
}

func cartRow(line models.CartLine) g.Node {
	return Div(Class("card"),
		Div(Class("split"),
			Div(
				H4(g.Text(line.Name)),
				P(g.Text(FormatPrice(line.Price)+" each")),
			),
			Form(Class("inline"), Action("/cart/quantity"), Method("post"),
				Input(Type("hidden"), Name("lineId"), Value(line.ID)),
				Label(g.Text("Qty")),
				Input(Type("number"), g.Attr("min", "1"), Name("quantity"),
					Value(strconv.Itoa(line.Quantity)), g.Attr("data-qty", line.ID)),
				Button(Type("submit"), Class("button secondary"), g.Text("Update")),
			),
			Form(Class("inline"), Action("/cart/remove"), Method("post"),
				Input(Type("hidden"), Name("lineId"), Value(line.ID)),
				Button(Type("submit"), Class("button secondary"), g.Attr("data-remove", line.ID), g.Text("Remove")),
			),
		),
	)
}
