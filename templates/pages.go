package templates

import (
	"fmt"

	g "github.com/maragudk/gomponents"
	. "github.com/maragudk/gomponents/html"

	"inkwell/database"
	"inkwell/gravatar"
)

func fieldError(message string) g.Node {
	return g.If(message != "", P(Class("field-error"), g.Text(message)))
}

func textField(label, name, inputType string, values, errors map[string]string) g.Node {
	return Div(Class("form-group"),
		Label(For(name), g.Text(label)),
		Input(Type(inputType), Name(name), ID(name), Value(values[name])),
		fieldError(errors[name]),
	)
}

func textAreaField(label, name string, values, errors map[string]string) g.Node {
	return Div(Class("form-group"),
		Label(For(name), g.Text(label)),
		Textarea(Name(name), ID(name), g.Attr("rows", "8"), g.Text(values[name])),
		fieldError(errors[name]),
	)
}

func Index(props PageProps, posts []database.BlogPost) g.Node {
	items := make([]g.Node, 0, len(posts))
	for _, post := range posts {
		items = append(items, Div(Class("post-preview"),
			A(Href(fmt.Sprintf("/post/%d", post.ID)),
				H2(g.Text(post.Title)),
				H3(Class("subtitle"), g.Text(post.Subtitle)),
			),
			P(Class("post-meta"), g.Text(post.Date)),
		))
	}

	return Layout(props,
		H1(g.Text(props.Title)),
		g.Group(items),
	)
}

func Post(props PageProps, post *database.BlogPost, comments []database.CommentWithAuthor, values, errors map[string]string) g.Node {
	commentNodes := make([]g.Node, 0, len(comments))
	for _, comment := range comments {
		commentNodes = append(commentNodes, Div(Class("comment"),
			Img(Class("avatar"), Src(gravatar.URL(comment.Email)), Alt(comment.Name)),
			Span(Class("commenter"), g.Text(comment.Name)),
			// comment bodies are rich-content markup, rendered as-is
			Div(Class("comment-text"), g.Raw(comment.Text)),
		))
	}

	var commentForm g.Node
	if props.CurrentUser != nil {
		commentForm = Form(Action(fmt.Sprintf("/post/%d", post.ID)), Method("post"),
			textAreaField("Comment", "body", values, errors),
			Button(Type("submit"), g.Text("Submit Comment")),
		)
	} else {
		commentForm = P(A(Href("/login"), g.Text("Log in to comment")))
	}

	return Layout(props,
		H1(g.Text(post.Title)),
		H3(Class("subtitle"), g.Text(post.Subtitle)),
		P(Class("post-meta"), g.Text(post.Date)),
		Img(Class("post-image"), Src(post.ImgURL), Alt(post.Title)),
		// post bodies come from a rich-text editor and are stored as markup
		Div(Class("post-body"), g.Raw(post.Body)),
		g.If(props.IsAdmin,
			Div(Class("admin-actions"),
				A(Href(fmt.Sprintf("/edit-post/%d", post.ID)), g.Text("Edit")),
				A(Href(fmt.Sprintf("/delete/%d", post.ID)), g.Text("Delete")),
			),
		),
		Hr(),
		H3(g.Text("Comments")),
		g.Group(commentNodes),
		commentForm,
	)
}

func Register(props PageProps, values, errors map[string]string) g.Node {
	return Layout(props,
		H1(g.Text("Register")),
		Form(Action("/register"), Method("post"),
			textField("Email", "email", "text", values, errors),
			textField("Password", "password", "password", values, errors),
			textField("Name", "name", "text", values, errors),
			Button(Type("submit"), g.Text("Register")),
		),
	)
}

func Login(props PageProps, values, errors map[string]string) g.Node {
	return Layout(props,
		H1(g.Text("Login")),
		Form(Action("/login"), Method("post"),
			textField("Email", "email", "text", values, errors),
			textField("Password", "password", "password", values, errors),
			Button(Type("submit"), g.Text("Login")),
		),
	)
}

func About(props PageProps) g.Node {
	return Layout(props,
		H1(g.Text("About Me")),
		P(g.Text("A personal blog about code, coffee, and everything in between.")),
	)
}

func Contact(props PageProps, greeting string) g.Node {
	return Layout(props,
		H1(g.Text(greeting)),
		Form(Action("/contact"), Method("post"),
			textField("Name", "name", "text", nil, nil),
			textField("Email", "email", "text", nil, nil),
			textField("Phone", "phone", "text", nil, nil),
			textAreaField("Message", "message", nil, nil),
			Button(Type("submit"), g.Text("Send")),
		),
	)
}

// MakePost renders both the create and the edit form; editing additionally
// exposes the author id so ownership can be reassigned.
func MakePost(props PageProps, heading, action string, editing bool, values, errors map[string]string) g.Node {
	return Layout(props,
		H1(g.Text(heading)),
		Form(Action(action), Method("post"),
			textField("Blog Post Title", "title", "text", values, errors),
			textField("Subtitle", "subtitle", "text", values, errors),
			textField("Blog Image URL", "img_url", "text", values, errors),
			g.If(editing,
				textField("Author ID", "author_id", "text", values, errors),
			),
			textAreaField("Blog Content", "body", values, errors),
			Button(Type("submit"), g.Text("Submit Post")),
		),
	)
}
