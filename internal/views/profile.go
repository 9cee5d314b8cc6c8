package views

import (
	"github.com/legoland/storefront/internal/models"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// recentOrderLimit caps how many of the user's orders the profile shows.
const recentOrderLimit = 3

// ProfileView renders the signed-in user's info plus their most recent orders,
// kept in storage order. A nil user is the signed-out state.
func ProfileView(user *models.User, orders []models.Order) g.Node {
	if user == nil {
		return Notice("Please sign in to see your profile.")
	}

	var mine []models.Order
	for _, order := range orders {
		if order.UserEmail == user.Email {
			mine = append(mine, order)
		}
	}
	if len(mine) > recentOrderLimit {
		mine = mine[len(mine)-recentOrderLimit:]
	}

	return Div(g.Attr("data-profile", ""),
		Div(Class("card"),
			H2(g.Textf("Welcome back, %s!", user.Name)),
			P(g.Text("Email: "+user.Email)),
			P(g.Text("Role: "+user.Role)),
		),
		Div(Class("card"),
			H3(g.Text("Your Recent Orders")),
			Ul(
				g.If(len(mine) == 0, Li(g.Text("No orders yet."))),
				g.Map(mine, func(order models.Order) g.Node {
					return Li(g.Textf("#%d • %d items • %s", order.ID, len(order.Items), FormatPrice(order.Total)))
				}),
			),
		),
	)
}
