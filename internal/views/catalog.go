package views

import (
	"net/url"

	"github.com/legoland/storefront/internal/models"
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// ProductGrid renders one card per catalog product, in storage order.
func ProductGrid(products []models.Product) g.Node {
	return Section(Class("grid"), g.Attr("data-product-grid", ""),
		g.Map(products, productCard),
	)
}

func productCard(p models.Product) g.Node {
	return Article(Class("card"),
		Img(Src(p.Image), Alt(p.Name)),
		Span(Class("tag"), g.Text(p.Category)),
		H3(g.Text(p.Name)),
		P(g.Text(p.Description)),
		Div(Class("price"), g.Text(FormatPrice(p.Price))),
		Div(Class("split"),
			addToCartForm(p.ID, "Add to cart"),
			A(Class("button secondary"), Href("/product?id="+url.QueryEscape(p.ID)), g.Text("View")),
		),
	)
}

// ProductDetail renders the detail card for one product. A nil product is the
// valid "not found" state, not an error.
func ProductDetail(p *models.Product) g.Node {
	if p == nil {
		return Notice("Product not found. Please explore our catalog.")
	}
	return Div(Class("card"), g.Attr("data-product-detail", ""),
		Div(Class("split"),
			Img(Src(p.Image), Alt(p.Name)),
			Div(
				Span(Class("tag"), g.Text(p.Category)),
				H2(g.Text(p.Name)),
				P(g.Text(p.Description)),
				P(Strong(g.Text("Recommended Age: ")), g.Text(p.Age)),
				P(Strong(g.Text("In Stock: ")), g.Textf("%d", p.Stock)),
				Div(Class("price"), g.Text(FormatPrice(p.Price))),
				addToCartForm(p.ID, "Add to cart"),
			),
		),
	)
}

// addToCartForm posts one product id to the cart. Each card carries its own
// small form; the original bound a shared click handler instead.
func addToCartForm(productID, label string) g.Node {
	return Form(Class("inline"), Action("/cart/add"), Method("post"),
		Input(Type("hidden"), Name("productId"), Value(productID)),
		Button(Type("submit"), Class("button"), g.Attr("data-add", productID), g.Text(label)),
	)
}
