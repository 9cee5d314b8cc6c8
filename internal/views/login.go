package views

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"
)

// LoginPage renders the sign-in form. Whatever is submitted becomes the
// session user; there is no password.
func LoginPage() g.Node {
	return Div(Class("card"),
		H2(g.Text("Sign In")),
		Form(g.Attr("data-login-form", ""), Action("/login"), Method("post"),
			Label(For("name"), g.Text("Name")),
			Input(ID("name"), Type("text"), Name("name"), Required()),
			Label(For("email"), g.Text("Email")),
			Input(ID("email"), Type("email"), Name("email"), Required()),
			Label(For("role"), g.Text("Role")),
			Select(ID("role"), Name("role"),
				Option(Value("shopper"), g.Text("Shopper")),
				Option(Value("admin"), g.Text("Admin")),
			),
			Button(Type("submit"), Class("button"), g.Text("Sign In")),
		),
	)
}
