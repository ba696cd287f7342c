package templates

import (
	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"inkwell/constants"
	"inkwell/database"
)

type PageProps struct {
	Title       string
	CurrentUser *database.User
	IsAdmin     bool
	Flash       string
}

func NavbarComponent(props PageProps) g.Node {
	return Nav(Class("nav"),
		Div(Class("nav-left"),
			Div(Class("brand"), A(Href("/"), g.Text(constants.APP_NAME))),
			A(Href("/about"), g.Text("About")),
			A(Href("/contact"), g.Text("Contact")),
			g.If(props.IsAdmin,
				A(Href("/new-post"), g.Text("New Post")),
			),
		),
		Div(Class("nav-links nav-right"),
			g.If(props.CurrentUser == nil,
				Div(
					A(Href("/login"), g.Text("Login")),
					A(Href("/register"), g.Text("Register")),
				),
			),
			g.If(props.CurrentUser != nil,
				Div(Class("row"),
					Div(Class("col"), g.Textf("Logged in as %s", userName(props.CurrentUser))),
					Div(Class("col"), A(Href("/logout"), g.Text("Logout"))),
				)),
		),
	)
}

func userName(user *database.User) string {
	if user == nil {
		return ""
	}
	return user.Name
}

func FlashComponent(message string) g.Node {
	return g.If(message != "",
		Div(Class("flash-notice"), g.Text(message)),
	)
}

func FooterComponent() g.Node {
	return Footer(Class("footer"),
		P(Small(g.Textf("%s — a quiet place for words.", constants.APP_NAME))),
	)
}

func Layout(props PageProps, children ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				Link(Rel("stylesheet"), Href("/assets/css/main.css")),
				TitleEl(g.Text(props.Title)),
			),
			Body(
				Div(Class("container"),
					NavbarComponent(props),
					FlashComponent(props.Flash),
					Main(
						g.Group(children),
					),
				),
				FooterComponent(),
			),
		),
	)
}
