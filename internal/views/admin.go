package views

import (
	"strconv"

	"github.com/legoland/storefront/internal/models"
	"github.com/legoland/storefront/internal/shop"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// AdminDashboard renders the full dashboard: analytics, the order table with a
// status selector per row, the product table, and the product creation form.
func AdminDashboard(orders []models.Order, products []models.Product, stats shop.Stats) g.Node {
	return Div(
		adminAnalytics(stats),
		Div(Class("card"),
			H3(g.Text("Orders")),
			Table(
				THead(Tr(Th(g.Text("Order")), Th(g.Text("Customer")), Th(g.Text("Total")), Th(g.Text("Status")))),
				TBody(g.Attr("data-admin-orders", ""), g.Map(orders, adminOrderRow)),
			),
		),
		Div(Class("card"),
			H3(g.Text("Products")),
			Table(
				THead(Tr(Th(g.Text("Name")), Th(g.Text("Category")), Th(g.Text("Price")), Th(g.Text("Stock")))),
				TBody(g.Attr("data-admin-products", ""), g.Map(products, adminProductRow)),
			),
		),
		adminProductForm(),
	)
}

func adminAnalytics(stats shop.Stats) g.Node {
	return Div(Class("card"), g.Attr("data-admin-analytics", ""),
		H3(g.Text("Store Performance")),
		P(g.Textf("Total Orders: %d", stats.Orders)),
		P(g.Text("Total Revenue: "+FormatPrice(stats.Revenue))),
		P(g.Text("Average Basket: "+FormatPrice(stats.AverageBasket))),
	)
}

func adminOrderRow(order models.Order) g.Node {
	return Tr(
		Td(g.Textf("#%d", order.ID)),
		Td(g.Text(order.UserEmail)),
		Td(g.Text(FormatPrice(order.Total))),
		Td(
			Form(Class("inline"), Action("/admin/orders/status"), Method("post"),
				Input(Type("hidden"), Name("orderId"), Value(strconv.FormatInt(order.ID, 10))),
				Select(Name("status"), g.Attr("data-order-status", strconv.FormatInt(order.ID, 10)),
					g.Attr("onchange", "this.form.submit()"),
					g.Map(models.OrderStatuses(), func(status models.OrderStatus) g.Node {
						return Option(Value(string(status)),
							g.If(status == order.Status, Selected()),
							g.Text(string(status)),
						)
					}),
				),
				NoScript(Button(Type("submit"), Class("button secondary"), g.Text("Update"))),
			),
		),
	)
}

func adminProductRow(p models.Product) g.Node {
	return Tr(
		Td(g.Text(p.Name)),
		Td(g.Text(p.Category)),
		Td(g.Text(FormatPrice(p.Price))),
		Td(g.Textf("%d", p.Stock)),
	)
}

func adminProductForm() g.Node {
	return Div(Class("card"),
		H3(g.Text("Add Product")),
		Form(g.Attr("data-admin-form", ""), Action("/admin/products"), Method("post"),
			Label(For("name"), g.Text("Name")),
			Input(ID("name"), Type("text"), Name("name"), Required()),
			Label(For("category"), g.Text("Category")),
			Input(ID("category"), Type("text"), Name("category"), Required()),
			Label(For("price"), g.Text("Price")),
			Input(ID("price"), Type("number"), g.Attr("step", "0.01"), g.Attr("min", "0"), Name("price"), Required()),
			Label(For("age"), g.Text("Age")),
			Input(ID("age"), Type("text"), Name("age")),
			Label(For("stock"), g.Text("Stock")),
			Input(ID("stock"), Type("number"), g.Attr("min", "0"), Name("stock"), Required()),
			Label(For("description"), g.Text("Description")),
			Textarea(ID("description"), Name("description"), g.Attr("rows", "3")),
			Button(Type("submit"), Class("button"), g.Text("Create Product")),
		),
	)
}
