package views

import (
	"github.com/legoland/storefront/internal/models"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// OrderConfirmation renders the confirmation card for the most recent order.
// A nil order is the valid "no orders yet" state.
func OrderConfirmation(order *models.Order) g.Node {
	if order == nil {
		return Notice("No recent orders. Start building your cart!")
	}
	return Div(Class("card"), g.Attr("data-order-success", ""),
		H2(g.Textf("Order #%d confirmed!", order.ID)),
		P(g.Textf("We are preparing %d items for delivery.", len(order.Items))),
		P(g.Text("Status: "), Strong(g.Text(string(order.Status)))),
		P(g.Text("Total: "), Strong(g.Text(FormatPrice(order.Total)))),
	)
}
